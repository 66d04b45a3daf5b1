// Package texture builds and uploads the textures used to visualise
// surface parametrizations.
package texture

import (
	"image"
	"image/color"
)

// Checker returns a size×size checkerboard with cells×cells squares. A
// red and a green stripe mark the u=0 and v=0 edges so the UV seam is
// visible on closed surfaces.
func Checker(size, cells int, light, dark color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if size <= 0 || cells <= 0 {
		return img
	}

	cell := max(size/cells, 1)
	stripe := max(cell/8, 1)

	for y := range size {
		for x := range size {
			c := light
			if (x/cell+y/cell)%2 == 1 {
				c = dark
			}
			switch {
			case x < stripe:
				c = color.RGBA{R: 220, G: 40, B: 40, A: 255}
			case y < stripe:
				c = color.RGBA{R: 40, G: 200, B: 60, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// DefaultChecker is the 256px, 8×8 grey checkerboard used by the viewer.
func DefaultChecker() *image.RGBA {
	return Checker(256, 8,
		color.RGBA{R: 235, G: 235, B: 235, A: 255},
		color.RGBA{R: 90, G: 90, B: 110, A: 255},
	)
}
