// Package img2ascii converts raster images to plain-text ASCII art by
// averaging the luminance of rectangular sampling regions and mapping
// each average onto a fixed character density ramp.
package img2ascii

import (
	"fmt"
	"math"
	"strings"

	"github.com/edibarra/img2ascii/imageutil"
)

// Channel weights for the supported luminance models. The standard
// weights are the Rec. 709 luma coefficients; the perceived weights are
// the Rec. 601 coefficients.
const (
	stdRedWeight   = 0.2126
	stdGreenWeight = 0.7152
	stdBlueWeight  = 0.0722

	percRedWeight   = 0.299
	percGreenWeight = 0.587
	percBlueWeight  = 0.114

	lumaMax = 255.0
)

// Model selects the luminance weighting scheme applied uniformly to
// every pixel of a conversion run.
type Model int

const (
	// ModelStandard is the perceptual-weighted linear model (Rec. 709).
	ModelStandard Model = iota

	// ModelPerceived is the weighted root-sum-square model.
	ModelPerceived

	// ModelPerceivedFast is the linear model with Rec. 601 weights, a
	// cheaper approximation of ModelPerceived.
	ModelPerceivedFast
)

// ModelFromFlags maps the historical pair of boolean flags to a Model.
// The fast flag wins when both are set.
func ModelFromFlags(fast, perceived bool) Model {
	switch {
	case fast:
		return ModelPerceivedFast
	case perceived:
		return ModelPerceived
	default:
		return ModelStandard
	}
}

// ParseModel parses a model name: "standard", "perceived", or
// "perceived-fast".
func ParseModel(name string) (Model, error) {
	switch strings.ToLower(name) {
	case "standard":
		return ModelStandard, nil
	case "perceived":
		return ModelPerceived, nil
	case "perceived-fast", "fast":
		return ModelPerceivedFast, nil
	default:
		return ModelStandard, fmt.Errorf("unknown luminance model %q", name)
	}
}

func (m Model) String() string {
	switch m {
	case ModelPerceived:
		return "perceived"
	case ModelPerceivedFast:
		return "perceived-fast"
	default:
		return "standard"
	}
}

// Luminance returns the luminance of a pixel in [0, 1] under the model.
func (m Model) Luminance(c imageutil.RGB) float64 {
	r := float64(c.R)
	g := float64(c.G)
	b := float64(c.B)

	switch m {
	case ModelPerceived:
		return math.Sqrt(percRedWeight*r*r+percGreenWeight*g*g+percBlueWeight*b*b) / lumaMax
	case ModelPerceivedFast:
		return (percRedWeight*r + percGreenWeight*g + percBlueWeight*b) / lumaMax
	default:
		return (stdRedWeight*r + stdGreenWeight*g + stdBlueWeight*b) / lumaMax
	}
}
