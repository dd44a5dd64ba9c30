// Package arclength demonstrates that the straight line is the shortest path
// between two points: every admissible variation of it has a longer arc.
package arclength

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/AnkushinDaniil/fermat/quadrature"
)

// Perturbation is a path y = Eta(x) together with its derivative.
type Perturbation struct {
	Eta  func(float64) float64
	DEta func(float64) float64
}

var (
	// Straight is the candidate optimum, y = 0.
	Straight = Perturbation{
		Eta:  func(float64) float64 { return 0 },
		DEta: func(float64) float64 { return 0 },
	}
	// Sine vanishes at 0 and π, so it keeps both end points fixed.
	Sine = Perturbation{Eta: math.Sin, DEta: math.Cos}
)

// Varied returns base + eps·p.
func Varied(base, p Perturbation, eps float64) Perturbation {
	return Perturbation{
		Eta:  func(x float64) float64 { return base.Eta(x) + eps*p.Eta(x) },
		DEta: func(x float64) float64 { return base.DEta(x) + eps*p.DEta(x) },
	}
}

// CurveLength integrates sqrt(1 + y'(x)²) over [xStart, xEnd].
func CurveLength(dy func(float64) float64, xStart, xEnd float64) (float64, error) {
	integrand := func(x float64) float64 {
		d := dy(x)
		return math.Sqrt(1 + d*d)
	}
	res, err := quadrature.Adaptive(integrand, xStart, xEnd, nil)
	if err != nil {
		return res.Value, fmt.Errorf("failed to integrate arc length: %w", err)
	}
	return res.Value, nil
}

// Symmetric returns 2·half+1 values k·limit/half for k = -half..half. Zero and
// both signs of every magnitude are represented exactly.
func Symmetric(limit float64, half int) []float64 {
	if half <= 0 {
		return []float64{0}
	}
	out := make([]float64, 2*half+1)
	for k := 1; k <= half; k++ {
		v := float64(k) * limit / float64(half)
		out[half+k] = v
		out[half-k] = -v
	}
	return out
}

// Sweep computes the arc length of Straight + ε·Sine over [xStart, xEnd] for
// every ε in eps.
func Sweep(ctx context.Context, eps []float64, xStart, xEnd float64) ([]float64, error) {
	lengths := make([]float64, len(eps))
	for i, e := range eps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		l, err := CurveLength(Varied(Straight, Sine, e).DEta, xStart, xEnd)
		if err != nil {
			return nil, fmt.Errorf("epsilon %g: %w", e, err)
		}
		lengths[i] = l
	}
	return lengths, nil
}

// MinIdx returns the index of the shortest length, the first one on ties.
func MinIdx(lengths []float64) int {
	return floats.MinIdx(lengths)
}

// Sample evaluates the path at xs.
func Sample(p Perturbation, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = p.Eta(x)
	}
	return ys
}
