package parameters

import (
	"math"

	"github.com/AnkushinDaniil/fermat/entity/format"
	"github.com/AnkushinDaniil/fermat/entity/mode"
)

type Parameters struct {
	Mode       mode.Mode
	Format     format.Format
	Refraction Refraction
	Variation  Variation
}

type Refraction struct {
	N1      float64 // refractive index of medium 1
	N2      float64 // refractive index of medium 2
	D       float64 // x of the interface
	XTarget float64
	YTarget float64
	Samples int // number of scanned split points
}

type Variation struct {
	XStart      float64
	XEnd        float64
	EpsilonMax  float64
	EpsilonHalf int       // the sweep has 2*EpsilonHalf+1 samples
	Showcase    []float64 // perturbations drawn next to the straight path
	PlotPoints  int
}

func Default() *Parameters {
	return &Parameters{
		Mode:   mode.Refraction,
		Format: format.PDF,
		Refraction: Refraction{
			N1:      1.0,
			N2:      1.5,
			D:       3.0,
			XTarget: 6.0,
			YTarget: 4.0,
			Samples: 500,
		},
		Variation: Variation{
			XStart:      0,
			XEnd:        math.Pi,
			EpsilonMax:  1.0,
			EpsilonHalf: 25,
			Showcase:    []float64{-0.5, 0.5, 1.0},
			PlotPoints:  200,
		},
	}
}
