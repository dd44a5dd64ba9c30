// Package quadrature provides adaptive numerical integration on top of the
// fixed Gauss-Legendre rule from gonum.
package quadrature

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

var ErrMaxDepth = errors.New("maximum subdivision depth reached")

const (
	DefaultNodes        = 10
	DefaultAbsTol       = 1.49e-8
	DefaultRelTol       = 1.49e-8
	DefaultMaxDepth     = 30
	DefaultMaxIntervals = 2000
)

type Settings struct {
	// Nodes is the number of Gauss-Legendre nodes per interval.
	Nodes        int
	AbsTol       float64
	RelTol       float64
	MaxDepth     int
	MaxIntervals int // bisections over the whole range
}

type Result struct {
	Value float64
	// AbsErr is the accumulated estimate of the absolute error.
	AbsErr    float64
	Intervals int
}

func (s *Settings) withDefaults() Settings {
	out := Settings{
		Nodes:        DefaultNodes,
		AbsTol:       DefaultAbsTol,
		RelTol:       DefaultRelTol,
		MaxDepth:     DefaultMaxDepth,
		MaxIntervals: DefaultMaxIntervals,
	}
	if s == nil {
		return out
	}
	if s.Nodes > 0 {
		out.Nodes = s.Nodes
	}
	if s.AbsTol > 0 {
		out.AbsTol = s.AbsTol
	}
	if s.RelTol > 0 {
		out.RelTol = s.RelTol
	}
	if s.MaxDepth > 0 {
		out.MaxDepth = s.MaxDepth
	}
	if s.MaxIntervals > 0 {
		out.MaxIntervals = s.MaxIntervals
	}
	return out
}

type integrator struct {
	f        func(float64) float64
	s        Settings
	tol      float64
	exceeded bool
	splits   int
	res      Result
}

// Adaptive integrates f over [a, b]. Intervals are bisected until the
// difference between the rule on the interval and the sum over its halves is
// within the tolerance share of that interval.
//
// If some interval still misses its tolerance at the maximum depth, the
// bisection budget runs out or the integrand is not finite, the best estimate
// is returned with an error wrapping ErrMaxDepth.
func Adaptive(f func(float64) float64, a, b float64, settings *Settings) (Result, error) {
	if a == b {
		return Result{}, nil
	}
	if a > b {
		res, err := Adaptive(f, b, a, settings)
		res.Value = -res.Value
		return res, err
	}

	in := &integrator{f: f, s: settings.withDefaults()}
	whole := in.fixed(a, b)
	in.tol = in.s.AbsTol
	if r := in.s.RelTol * math.Abs(whole); r > in.tol {
		in.tol = r
	}
	in.step(a, b, whole, in.tol, 0)

	if in.exceeded {
		return in.res, fmt.Errorf("%w: depth %d, %d intervals", ErrMaxDepth, in.s.MaxDepth, in.res.Intervals)
	}
	return in.res, nil
}

func (in *integrator) fixed(a, b float64) float64 {
	return quad.Fixed(in.f, a, b, in.s.Nodes, quad.Legendre{}, 0)
}

func (in *integrator) step(a, b, whole, tol float64, depth int) {
	m := 0.5 * (a + b)
	left := in.fixed(a, m)
	right := in.fixed(m, b)
	diff := math.Abs(left + right - whole)
	in.splits++

	// NaN and Inf never satisfy diff <= tol; further bisection cannot help.
	finite := !math.IsNaN(diff) && !math.IsInf(diff, 0)
	if diff <= tol || !finite || depth >= in.s.MaxDepth || in.splits >= in.s.MaxIntervals || m <= a || m >= b {
		if !(diff <= tol) {
			in.exceeded = true
		}
		in.res.Value += left + right
		in.res.AbsErr += diff
		in.res.Intervals += 2
		return
	}
	in.step(a, m, left, tol/2, depth+1)
	in.step(m, b, right, tol/2, depth+1)
}
