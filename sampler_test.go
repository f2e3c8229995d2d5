package img2ascii

import (
	"math"
	"testing"

	"github.com/edibarra/img2ascii/imageutil"
)

func TestGridCoverage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		w, h int
		cols, rows int
	}{
		{10, 7, 3, 2},
		{5, 5, 2, 3},
		{100, 50, 7, 9},
		{8, 8, 8, 4},
		{1, 1, 1, 1},
		{640, 480, 80, 24},
		// Degenerate: more cells than pixels on an axis.
		{3, 3, 5, 5},
	}

	for _, tt := range tests {
		buf := imageutil.NewPixelBuffer(tt.w, tt.h)
		s := NewSampler(buf, Grid{Columns: tt.cols, Rows: tt.rows})

		counts := make([]int, tt.w*tt.h)
		for row := 0; row < tt.rows; row++ {
			for col := 0; col < tt.cols; col++ {
				x0, y0, x1, y1 := s.Region(col, row).PixelBounds()
				if x0 < 0 || y0 < 0 || x1 > tt.w || y1 > tt.h {
					t.Fatalf("%dx%d grid %dx%d: cell (%d,%d) bounds [%d,%d)x[%d,%d) outside image",
						tt.w, tt.h, tt.cols, tt.rows, col, row, x0, x1, y0, y1)
				}
				for y := y0; y < y1; y++ {
					for x := x0; x < x1; x++ {
						counts[x+y*tt.w]++
					}
				}
			}
		}

		for i, n := range counts {
			if n != 1 {
				t.Fatalf("%dx%d grid %dx%d: pixel (%d,%d) covered %d times",
					tt.w, tt.h, tt.cols, tt.rows, i%tt.w, i/tt.w, n)
			}
		}
	}
}

func TestAverageUniform(t *testing.T) {
	t.Parallel()

	buf := imageutil.CreateSolidBuffer(13, 9, imageutil.RGB{R: 100, G: 100, B: 100})
	s := NewSampler(buf, Grid{Columns: 4, Rows: 3})
	want := 100.0 / 255

	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			got := s.Average(col, row, ModelStandard)
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("cell (%d,%d): average = %g, want %g", col, row, got, want)
			}
		}
	}
}

func TestAverageGradientMonotonic(t *testing.T) {
	t.Parallel()

	buf := imageutil.CreateGradientBuffer(64, 8)
	s := NewSampler(buf, Grid{Columns: 8, Rows: 2})

	prev := -1.0
	for col := 0; col < 8; col++ {
		got := s.Average(col, 0, ModelStandard)
		if got < prev {
			t.Fatalf("column %d average %g dropped below previous %g", col, got, prev)
		}
		prev = got
	}
}

func TestEmptyRegionYieldsZero(t *testing.T) {
	t.Parallel()

	// With 5 columns across 3 pixels some cells contain no whole pixel.
	buf := imageutil.CreateSolidBuffer(3, 3, imageutil.RGB{R: 255, G: 255, B: 255})
	s := NewSampler(buf, Grid{Columns: 5, Rows: 3})

	foundEmpty := false
	for col := 0; col < 5; col++ {
		x0, _, x1, _ := s.Region(col, 0).PixelBounds()
		if x0 >= x1 {
			foundEmpty = true
			if got := s.Average(col, 0, ModelStandard); got != 0 {
				t.Errorf("empty cell (%d,0) average = %g, want 0", col, got)
			}
		}
	}
	if !foundEmpty {
		t.Fatal("expected at least one empty region in a 5-column grid over 3 pixels")
	}
}

func TestAverageVisitsEveryPixelOnce(t *testing.T) {
	t.Parallel()

	// The sum of (average * pixel count) over all regions must equal the
	// sum of per-pixel luminance over the whole image.
	buf := imageutil.CreateCheckerboardBuffer(17, 11, 3)
	grid := Grid{Columns: 5, Rows: 4}
	s := NewSampler(buf, grid)

	var regionTotal float64
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Columns; col++ {
			x0, y0, x1, y1 := s.Region(col, row).PixelBounds()
			n := (x1 - x0) * (y1 - y0)
			regionTotal += s.Average(col, row, ModelStandard) * float64(n)
		}
	}

	var pixelTotal float64
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			pixelTotal += ModelStandard.Luminance(buf.At(x, y))
		}
	}

	if math.Abs(regionTotal-pixelTotal) > 1e-6 {
		t.Errorf("region-weighted total %g != per-pixel total %g", regionTotal, pixelTotal)
	}
}
