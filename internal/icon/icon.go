// Package icon renders the IDSnap launcher icon: a blue circular badge
// shaded toward the bottom, the letters "ID" in white over a drop shadow,
// and a small amber camera mark below the text.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/idsnap/mkicons/internal/fontset"
)

var (
	badgeBlue   = color.NRGBA{R: 33, G: 150, B: 243, A: 255} // Material blue
	textWhite   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	cameraAmber = color.NRGBA{R: 255, G: 193, B: 7, A: 255}
	shadowBlack = color.NRGBA{A: 100}
	lensBlack   = color.NRGBA{A: 150}
)

// gradientMaxAlpha caps the darkening ramp over the badge's lower half.
const gradientMaxAlpha = 30

const label = "ID"

// Draw renders one launcher icon at the given pixel size onto a transparent
// canvas. Every element's geometry is an integer function of size, so the
// output for a given size is deterministic.
func Draw(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	margin := size / 20
	center := float64(size) / 2
	radius := float64(size-2*margin) / 2
	fillCircle(img, center, center, radius, badgeBlue)
	shadeLowerHalf(img, size, center, radius)

	face := fontset.Resolve(float64(fontPixels(size)))
	bounds, _ := font.BoundString(face, label)
	textW := (bounds.Max.X - bounds.Min.X).Ceil()
	textH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	// Top-left corner of the glyph box: centered, lifted to leave room for
	// the camera mark below.
	textX := (size - textW) / 2
	textY := (size-textH)/2 - size/12

	// The drawing dot is on the baseline; bounds.Min places the box corner.
	dotX := textX - bounds.Min.X.Floor()
	dotY := textY - bounds.Min.Y.Floor()

	offset := max(1, size/100)
	drawString(img, face, label, dotX+offset, dotY+offset, shadowBlack)
	drawString(img, face, label, dotX, dotY, textWhite)

	// Camera body with a lens centered in it.
	camSize := size / 6
	camX := (size - camSize) / 2
	camY := textY + textH + size/20
	camH := camSize / 2
	fillRect(img, camX, camY, camSize, camH, cameraAmber)

	lensSize := camSize / 3
	lensX := camX + (camSize-lensSize)/2
	lensY := camY + (camH-lensSize)/2
	lensR := float64(lensSize) / 2
	fillCircle(img, float64(lensX)+lensR, float64(lensY)+lensR, lensR, lensBlack)

	return img
}

// WriteFile renders the icon at the given size and writes it as a PNG.
// The parent directory must already exist.
func WriteFile(path string, size int) error {
	img := Draw(size)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// fontPixels returns the label font size in pixels: an eighth of the
// canvas, but never below a readable floor.
func fontPixels(size int) int {
	return max(size/8, 12)
}

// shadeLowerHalf composites a vertical darkening ramp over the part of the
// badge disc in the lower half of the canvas: black at alpha 0 at the middle
// row rising linearly to gradientMaxAlpha at the bottom row.
func shadeLowerHalf(img *image.NRGBA, size int, center, radius float64) {
	half := size / 2
	if half == 0 {
		return
	}
	for y := half; y < size; y++ {
		a := gradientMaxAlpha * (y - half) / half
		if a == 0 {
			continue
		}
		overlay := color.NRGBA{A: uint8(a)}
		dy := float64(y) + 0.5 - center
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - center
			if dx*dx+dy*dy <= radius*radius {
				blendOver(img, x, y, overlay)
			}
		}
	}
}

func drawString(img *image.NRGBA, face font.Face, s string, x, y int, c color.NRGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func fillRect(img *image.NRGBA, x, y, w, h int, c color.NRGBA) {
	draw.Draw(img, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Over)
}

// fillCircle draws an anti-aliased filled circle, composited over the
// existing canvas content.
func fillCircle(img *image.NRGBA, cx, cy, r float64, c color.NRGBA) {
	if r <= 0 {
		return
	}
	b := img.Bounds()
	ras := vector.NewRasterizer(b.Dx(), b.Dy())
	appendCircle(ras, cx, cy, r)
	ras.Draw(img, b, image.NewUniform(c), image.Point{})
}

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier.
const kappa = 0.5522847498307936

func appendCircle(ras *vector.Rasterizer, cx, cy, r float64) {
	k := kappa * r
	ras.MoveTo(float32(cx+r), float32(cy))
	ras.CubeTo(float32(cx+r), float32(cy+k), float32(cx+k), float32(cy+r), float32(cx), float32(cy+r))
	ras.CubeTo(float32(cx-k), float32(cy+r), float32(cx-r), float32(cy+k), float32(cx-r), float32(cy))
	ras.CubeTo(float32(cx-r), float32(cy-k), float32(cx-k), float32(cy-r), float32(cx), float32(cy-r))
	ras.CubeTo(float32(cx+k), float32(cy-r), float32(cx+r), float32(cy-k), float32(cx+r), float32(cy))
	ras.ClosePath()
}

// blendOver composites src (straight alpha) over the pixel at (x, y).
func blendOver(img *image.NRGBA, x, y int, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	dst := img.NRGBAAt(x, y)
	sa := float64(c.A) / 255
	da := float64(dst.A) / 255
	oa := sa + da*(1-sa)
	if oa == 0 {
		return
	}
	img.SetNRGBA(x, y, color.NRGBA{
		R: uint8(math.Round((float64(c.R)*sa + float64(dst.R)*da*(1-sa)) / oa)),
		G: uint8(math.Round((float64(c.G)*sa + float64(dst.G)*da*(1-sa)) / oa)),
		B: uint8(math.Round((float64(c.B)*sa + float64(dst.B)*da*(1-sa)) / oa)),
		A: uint8(math.Round(oa * 255)),
	})
}
