// Package imageutil provides the decoded pixel buffer and image
// decoding collaborators for the ASCII conversion pipeline.
package imageutil

import (
	"image"
	"image/color"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to color.RGBA for use with the standard library.
func (rgb RGB) ToColor() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// RGBFromColor converts a color.Color to RGB. Any alpha channel is
// discarded.
func RGBFromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// PixelBuffer is a row-major buffer of RGB pixels decoded from a source
// image. It is created once by the decoder and read-only for the rest of
// a conversion run.
type PixelBuffer struct {
	width  int
	height int
	pix    []RGB
}

// NewPixelBuffer creates a zeroed PixelBuffer with the given dimensions.
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		width:  width,
		height: height,
		pix:    make([]RGB, width*height),
	}
}

// FromImage converts any image.Image to a PixelBuffer, stripping alpha
// and translating the bounds so the buffer origin is (0, 0).
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	buf := NewPixelBuffer(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			buf.Set(x-bounds.Min.X, y-bounds.Min.Y, RGBFromColor(img.At(x, y)))
		}
	}
	return buf
}

// Width returns the buffer width in pixels.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *PixelBuffer) Height() int {
	return b.height
}

// At returns the pixel at (x, y). Coordinates must be within
// [0, Width) x [0, Height).
func (b *PixelBuffer) At(x, y int) RGB {
	return b.pix[x+y*b.width]
}

// Set sets the pixel at (x, y).
func (b *PixelBuffer) Set(x, y int, c RGB) {
	b.pix[x+y*b.width] = c
}

// ToRGBA converts the buffer back to an image.RGBA, e.g. for rescaling.
func (b *PixelBuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			img.SetRGBA(x, y, b.At(x, y).ToColor())
		}
	}
	return img
}

// Clone creates a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	clone := NewPixelBuffer(b.width, b.height)
	copy(clone.pix, b.pix)
	return clone
}
