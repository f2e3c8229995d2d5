package img2ascii

import (
	"math"
	"strconv"
	"strings"
)

// DefaultFontRatio is the default character cell width to height ratio.
// Terminal cells are typically twice as tall as they are wide.
const DefaultFontRatio = 0.5

// Grid is the resolved output dimensions in characters.
type Grid struct {
	Columns int
	Rows    int
}

// GridSpec is a partial output dimension request. A zero Columns or Rows
// means "derive from the other axis"; a zero FontRatio means
// DefaultFontRatio.
type GridSpec struct {
	Columns   int
	Rows      int
	FontRatio float64
}

// ResolveGrid computes the concrete output grid for an image of the
// given pixel dimensions. When only one axis is requested the other is
// derived to preserve the on-screen aspect ratio, corrected for the font
// shape and rounded up so the image is fully covered. When neither axis
// is requested the grid is one character per pixel. Both axes resolve to
// at least 1.
func ResolveGrid(width, height int, spec GridSpec) Grid {
	ratio := spec.FontRatio
	if ratio <= 0 {
		ratio = DefaultFontRatio
	}

	columns, rows := spec.Columns, spec.Rows
	switch {
	case columns > 0 && rows > 0:
		// Both given: no aspect correction.
	case columns > 0:
		rows = int(math.Ceil(float64(columns) * float64(height) / float64(width) * ratio))
	case rows > 0:
		columns = int(math.Ceil(float64(rows) * float64(width) / float64(height) / ratio))
	default:
		columns, rows = width, height
	}

	if columns < 1 {
		columns = 1
	}
	if rows < 1 {
		rows = 1
	}
	return Grid{Columns: columns, Rows: rows}
}

// ParseFontRatio parses a font ratio given either as "W:H" or as a bare
// decimal width/height value. Malformed or non-positive input falls back
// to DefaultFontRatio rather than failing the run.
func ParseFontRatio(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultFontRatio
	}

	if num, den, found := strings.Cut(s, ":"); found {
		w, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil || w <= 0 {
			return DefaultFontRatio
		}
		h, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil || h <= 0 {
			return DefaultFontRatio
		}
		return w / h
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return DefaultFontRatio
	}
	return v
}
