// Package fontset resolves the bold face used for the icon lettering.
//
// Lookup walks an ordered list of font sources and takes the first one that
// loads: preferred system fonts, then faces compiled into the binary. The
// final source has no failure mode, so Resolve always returns a usable face.
package fontset

import (
	"fmt"
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
)

// Source is one font candidate. Load returns a face scaled to the given
// pixel size, or an error if the candidate is unavailable.
type Source struct {
	Name string
	Load func(pixels float64) (font.Face, error)
}

// Sources returns the lookup chain. The last entry is a fixed-size bitmap
// face that cannot fail to load.
func Sources() []Source {
	return []Source{
		fileSource("/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"),
		fileSource("/System/Library/Fonts/Arial.ttf"),
		{
			Name: "builtin gobold",
			Load: func(pixels float64) (font.Face, error) {
				f, err := builtin()
				if err != nil {
					return nil, err
				}
				return newFace(f, pixels), nil
			},
		},
		{
			Name: "basicfont",
			Load: func(float64) (font.Face, error) {
				return basicfont.Face7x13, nil
			},
		},
	}
}

// Resolve returns the first face in the chain that loads at the given pixel
// size. It never returns nil.
func Resolve(pixels float64) font.Face {
	return resolve(Sources(), pixels)
}

func resolve(sources []Source, pixels float64) font.Face {
	for _, s := range sources {
		face, err := s.Load(pixels)
		if err == nil {
			return face
		}
	}
	// Unreachable with the standard chain: the last source cannot fail.
	return basicfont.Face7x13
}

// fileSource loads a TrueType font from a path on disk.
func fileSource(path string) Source {
	return Source{
		Name: path,
		Load: func(pixels float64) (font.Face, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			f, err := truetype.Parse(data)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
			return newFace(f, pixels), nil
		},
	}
}

func newFace(f *truetype.Font, pixels float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    pixels,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

var (
	builtinOnce sync.Once
	builtinFont *truetype.Font
	builtinErr  error
)

// builtin parses the embedded bold gofont once and caches the result.
func builtin() (*truetype.Font, error) {
	builtinOnce.Do(func() {
		builtinFont, builtinErr = truetype.Parse(gobold.TTF)
	})
	return builtinFont, builtinErr
}
