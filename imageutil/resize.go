package imageutil

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom, the best general choice for
	// downscaling before sampling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

func scalerFor(interp Interpolation) draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resizes a PixelBuffer to the specified dimensions using the
// given interpolation method. Both dimensions are clamped to at least one
// pixel.
func Resize(buf *PixelBuffer, width, height int, interp Interpolation) *PixelBuffer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == buf.Width() && height == buf.Height() {
		return buf.Clone()
	}

	src := buf.ToRGBA()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	scalerFor(interp).Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return FromImage(dst)
}

// Scale resizes a PixelBuffer by a uniform factor, preserving aspect
// ratio. Factors that would shrink an axis below one pixel are clamped
// by Resize.
func Scale(buf *PixelBuffer, factor float64, interp Interpolation) *PixelBuffer {
	width := int(math.Round(float64(buf.Width()) * factor))
	height := int(math.Round(float64(buf.Height()) * factor))
	return Resize(buf, width, height, interp)
}
