package img2ascii

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/edibarra/img2ascii/imageutil"
)

// Converter encapsulates the resolved configuration for one conversion
// run: the luminance model, brightness sense, ramp padding, and the
// requested output dimensions. A Converter is immutable once built and
// safe to reuse across images.
type Converter struct {
	Model     Model
	Invert    bool
	Padding   int
	Columns   int
	Rows      int
	FontRatio float64
}

// ConverterOption is a functional option for configuring a Converter.
type ConverterOption func(*Converter)

// NewConverter creates a Converter with the given options. Defaults:
// ModelStandard, Invert=false, Padding=9, dimensions derived from the
// image, FontRatio=0.5.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		Model:     ModelStandard,
		Padding:   DefaultPadding,
		FontRatio: DefaultFontRatio,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Padding < 0 {
		c.Padding = 0
	}
	return c
}

// WithModel sets the luminance model.
func WithModel(m Model) ConverterOption {
	return func(c *Converter) { c.Model = m }
}

// WithInvert sets the brightness inversion flag.
func WithInvert(invert bool) ConverterOption {
	return func(c *Converter) { c.Invert = invert }
}

// WithPadding sets the number of blank slots past the light end of the
// density ramp. Negative values clamp to zero.
func WithPadding(padding int) ConverterOption {
	return func(c *Converter) { c.Padding = padding }
}

// WithColumns requests an output width in characters. Zero derives the
// width from the rows, or uses the image width when rows are also unset.
func WithColumns(columns int) ConverterOption {
	return func(c *Converter) { c.Columns = columns }
}

// WithRows requests an output height in characters. Zero derives the
// height from the columns, or uses the image height when columns are
// also unset.
func WithRows(rows int) ConverterOption {
	return func(c *Converter) { c.Rows = rows }
}

// WithFontRatio sets the character cell width to height ratio used when
// deriving one axis from the other.
func WithFontRatio(ratio float64) ConverterOption {
	return func(c *Converter) { c.FontRatio = ratio }
}

// Convert renders the pixel buffer as ASCII art to the writer, one
// character per sampling region, row-major, with a newline after each
// row. The writer sees exactly Grid.Rows lines of Grid.Columns
// characters; a write failure aborts the run and invalidates any partial
// output.
func (c *Converter) Convert(buf *imageutil.PixelBuffer, w io.Writer) error {
	if buf.Width() == 0 || buf.Height() == 0 {
		return fmt.Errorf("cannot convert empty %dx%d image", buf.Width(), buf.Height())
	}

	grid := ResolveGrid(buf.Width(), buf.Height(), GridSpec{
		Columns:   c.Columns,
		Rows:      c.Rows,
		FontRatio: c.FontRatio,
	})
	sampler := NewSampler(buf, grid)
	mapper := Mapper{Padding: c.Padding, Invert: c.Invert}

	line := make([]byte, grid.Columns+1)
	line[grid.Columns] = '\n'

	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Columns; col++ {
			line[col] = mapper.Char(sampler.Average(col, row, c.Model))
		}
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("failed to write output row %d: %w", row, err)
		}
	}
	return nil
}

// ConvertImage decodes any image.Image into a pixel buffer and converts
// it. Alpha is stripped during conversion.
func (c *Converter) ConvertImage(img image.Image, w io.Writer) error {
	return c.Convert(imageutil.FromImage(img), w)
}

// ConvertToString converts the pixel buffer and returns the full output
// as a string.
func (c *Converter) ConvertToString(buf *imageutil.PixelBuffer) (string, error) {
	grid := ResolveGrid(buf.Width(), buf.Height(), GridSpec{
		Columns:   c.Columns,
		Rows:      c.Rows,
		FontRatio: c.FontRatio,
	})

	var sb strings.Builder
	sb.Grow((grid.Columns + 1) * grid.Rows)
	if err := c.Convert(buf, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
