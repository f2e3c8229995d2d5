package img2ascii

import (
	"math"

	"github.com/edibarra/img2ascii/imageutil"
)

// Region is a rectangular sampling area in pixel space with real-valued,
// half-open bounds [X0, X1) x [Y0, Y1).
type Region struct {
	X0, Y0 float64
	X1, Y1 float64
}

// PixelBounds returns the half-open integer coordinate range of the
// pixels whose coordinates fall within the region. An integer x lies in
// [X0, X1) exactly when ceil(X0) <= x < ceil(X1), which is what makes
// adjacent regions partition the pixel set without double counting.
func (r Region) PixelBounds() (x0, y0, x1, y1 int) {
	x0 = int(math.Ceil(r.X0))
	y0 = int(math.Ceil(r.Y0))
	x1 = int(math.Ceil(r.X1))
	y1 = int(math.Ceil(r.Y1))
	return x0, y0, x1, y1
}

// Sampler partitions a pixel buffer into a grid of sampling regions and
// aggregates per-region luminance. Cell extents are real-valued, so
// regions may be ragged at the pixel level while still covering the
// image exactly.
type Sampler struct {
	buf   *imageutil.PixelBuffer
	grid  Grid
	cellW float64
	cellH float64
}

// NewSampler creates a Sampler for the given buffer and resolved grid.
func NewSampler(buf *imageutil.PixelBuffer, grid Grid) *Sampler {
	return &Sampler{
		buf:   buf,
		grid:  grid,
		cellW: float64(buf.Width()) / float64(grid.Columns),
		cellH: float64(buf.Height()) / float64(grid.Rows),
	}
}

// Grid returns the sampler's output grid.
func (s *Sampler) Grid() Grid {
	return s.grid
}

// Region returns the sampling region for grid cell (col, row), clipped
// to the image boundary.
func (s *Sampler) Region(col, row int) Region {
	r := Region{
		X0: float64(col) * s.cellW,
		Y0: float64(row) * s.cellH,
		X1: float64(col+1) * s.cellW,
		Y1: float64(row+1) * s.cellH,
	}
	r.X1 = math.Min(r.X1, float64(s.buf.Width()))
	r.Y1 = math.Min(r.Y1, float64(s.buf.Height()))
	return r
}

// Average returns the arithmetic mean of the model's luminance over
// every pixel in the region at (col, row). A region containing no whole
// pixel yields 0 by convention.
func (s *Sampler) Average(col, row int, model Model) float64 {
	x0, y0, x1, y1 := s.Region(col, row).PixelBounds()

	var sum float64
	var count int
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			sum += model.Luminance(s.buf.At(x, y))
			count++
		}
	}

	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
