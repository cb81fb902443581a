// mkicons renders the IDSnap Android launcher icons into the app's mipmap
// resource folders. It takes no arguments; run it from the repository root:
//
//	go run ./cmd/mkicons
package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/idsnap/mkicons/internal/batch"
	"github.com/idsnap/mkicons/internal/res"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Banner lines are decoration; keep piped output to the progress lines.
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	if tty {
		fmt.Printf("mkicons %s (%s) - generating IDSnap app icons\n", version, buildDate)
		fmt.Println(strings.Repeat("=", 40))
	}

	if err := batch.Run(res.DefaultRoot, res.Densities(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if tty {
		fmt.Println(strings.Repeat("=", 40))
	}
	fmt.Println("all icons generated; ready for the APK build")
}
