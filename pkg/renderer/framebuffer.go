package renderer

import (
	"image"
	"image/color"

	"github.com/spectra/go-raytracer/pkg/core"
)

// Framebuffer is a width×height grid of display-ready colors, row-major
// with the origin at the top-left. Each pixel is written exactly once,
// by the single worker that owns its tile.
type Framebuffer struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewFramebuffer creates a zeroed framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the framebuffer width in pixels
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the framebuffer height in pixels
func (fb *Framebuffer) Height() int { return fb.height }

// At returns the color stored at pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.pixels[y*fb.width+x]
}

// Set stores the color for pixel (x, y). Colors are expected to already be
// gamma-corrected and clamped to [0, 1].
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.pixels[y*fb.width+x] = c
}

// Equals reports whether two framebuffers hold identical pixels
func (fb *Framebuffer) Equals(other *Framebuffer) bool {
	if fb.width != other.width || fb.height != other.height {
		return false
	}
	for i := range fb.pixels {
		if !fb.pixels[i].Equals(other.pixels[i]) {
			return false
		}
	}
	return true
}

// ToRGBA converts the framebuffer to an 8-bit RGBA image
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}
	return img
}
