package img2ascii

import "math"

// DensityRamp is the fixed character ramp used to represent luminance
// levels, ordered from visually densest to sparsest.
const DensityRamp = "@QB#NgWM8RDHdOKq9$6khEPXwmeZaoS2yjufF]}{tx1zv7lciL/\\|?*>=+r^;:_\"~,'.-`"

// RampLength is the number of characters in DensityRamp.
const RampLength = len(DensityRamp)

// DefaultPadding is the default number of blank slots appended past the
// light end of the ramp.
const DefaultPadding = 9

// Mapper maps an aggregated region luminance onto the density ramp.
// Padding widens the range of luminance values that render as a space;
// it never shrinks the ramp itself. When Invert is false, the luminance
// is flipped first so that dark image regions render as dense characters.
type Mapper struct {
	Padding int
	Invert  bool
}

// Char returns the output character for a luminance value in [0, 1].
// The index formula is floor((RampLength + Padding - 1) * L); indices at
// or past the end of the ramp fall into the padding region and emit a
// space.
func (m Mapper) Char(l float64) byte {
	if !m.Invert {
		l = 1 - l
	}

	index := int(math.Floor(float64(RampLength+m.Padding-1) * l))
	if index >= RampLength {
		return ' '
	}
	if index < 0 {
		index = 0
	}
	return DensityRamp[index]
}
