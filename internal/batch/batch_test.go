package batch

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idsnap/mkicons/internal/res"
)

func TestRunCreatesAllIcons(t *testing.T) {
	root := t.TempDir()
	var out bytes.Buffer

	if err := Run(root, res.Densities(), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, d := range res.Densities() {
		for _, name := range []string{res.IconName, res.RoundIconName} {
			p := filepath.Join(root, d.Folder, name)
			f, err := os.Open(p)
			if err != nil {
				t.Errorf("missing %s: %v", p, err)
				continue
			}
			cfg, err := png.DecodeConfig(f)
			f.Close()
			if err != nil {
				t.Errorf("decode %s: %v", p, err)
				continue
			}
			if cfg.Width != d.Size || cfg.Height != d.Size {
				t.Errorf("%s: %dx%d, want %dx%d", p, cfg.Width, cfg.Height, d.Size, d.Size)
			}
		}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 5 {
		t.Errorf("got %d directories under root, want 5", len(entries))
	}
}

func TestRunProgressLines(t *testing.T) {
	root := t.TempDir()
	var out bytes.Buffer

	if err := Run(root, res.Densities(), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d progress lines, want 10:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "mipmap-mdpi") || !strings.Contains(lines[0], "(48x48)") {
		t.Errorf("unexpected first progress line: %q", lines[0])
	}
	if !strings.Contains(lines[9], "mipmap-xxxhdpi") || !strings.Contains(lines[9], "(192x192)") {
		t.Errorf("unexpected last progress line: %q", lines[9])
	}
}

func TestRunTwiceOverwrites(t *testing.T) {
	root := t.TempDir()
	var out bytes.Buffer

	if err := Run(root, res.Densities(), &out); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := Run(root, res.Densities(), &out); err != nil {
		t.Fatalf("second run: %v", err)
	}
}

func TestRunUnwritableRoot(t *testing.T) {
	// A regular file in place of the root makes MkdirAll fail.
	root := filepath.Join(t.TempDir(), "res")
	if err := os.WriteFile(root, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := Run(root, res.Densities(), &out); err == nil {
		t.Error("expected error when root is a regular file")
	}
}

func TestRunSingleDensity(t *testing.T) {
	root := t.TempDir()
	var out bytes.Buffer

	one := []res.Density{{Folder: "mipmap-hdpi", Size: 72}}
	if err := Run(root, one, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, name := range []string{res.IconName, res.RoundIconName} {
		if _, err := os.Stat(filepath.Join(root, "mipmap-hdpi", name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}
