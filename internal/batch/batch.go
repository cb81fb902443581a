// Package batch drives the full icon generation run: one render per variant
// per density, written into the Android resource tree.
package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/idsnap/mkicons/internal/icon"
	"github.com/idsnap/mkicons/internal/res"
)

// Run generates the standard and round launcher icons for every density,
// creating the mipmap directories under root as needed. Existing files are
// overwritten. Progress is reported as one line per written file on out.
// The first failure aborts the run; files already written stay in place.
func Run(root string, densities []res.Density, out io.Writer) error {
	for _, d := range densities {
		dir := filepath.Join(root, d.Folder)
		if err := os.MkdirAll(dir, res.DirPerm); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
		for _, name := range []string{res.IconName, res.RoundIconName} {
			p := res.IconPath(root, d.Folder, name)
			if err := icon.WriteFile(p, d.Size); err != nil {
				return err
			}
			fmt.Fprintf(out, "created %s (%dx%d)\n", p, d.Size, d.Size)
		}
	}
	return nil
}
