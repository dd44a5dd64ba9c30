// Package minimize implements bounded one-dimensional minimization.
package minimize

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidBounds  = errors.New("invalid bounds")
	ErrMaxEvaluations = errors.New("maximum number of function evaluations exceeded")
)

const (
	DefaultXTol           = 1e-5
	DefaultMaxEvaluations = 500
)

var (
	goldenMean = 0.5 * (3 - math.Sqrt(5))
	sqrtEps    = math.Sqrt(2.2e-16)
)

type Settings struct {
	// XTol is the absolute tolerance on the abscissa of the minimum.
	XTol           float64
	MaxEvaluations int
}

type Result struct {
	X           float64
	F           float64
	Evaluations int
}

func (s *Settings) withDefaults() Settings {
	out := Settings{XTol: DefaultXTol, MaxEvaluations: DefaultMaxEvaluations}
	if s == nil {
		return out
	}
	if s.XTol > 0 {
		out.XTol = s.XTol
	}
	if s.MaxEvaluations > 0 {
		out.MaxEvaluations = s.MaxEvaluations
	}
	return out
}

// Bounded finds a local minimum of f on [lo, hi] with Brent's method:
// golden-section steps, switching to parabolic interpolation whenever the
// parabola through the three best points lands inside the bracket.
//
// When the evaluation budget runs out the best point found so far is returned
// together with an error wrapping ErrMaxEvaluations.
func Bounded(f func(float64) float64, lo, hi float64, settings *Settings) (Result, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return Result{}, fmt.Errorf("%w: [%g, %g]", ErrInvalidBounds, lo, hi)
	}
	if lo > hi {
		return Result{}, fmt.Errorf("%w: lower bound %g above upper bound %g", ErrInvalidBounds, lo, hi)
	}
	s := settings.withDefaults()

	a, b := lo, hi
	// w and v are the second best and the previous second best points.
	v := a + goldenMean*(b-a)
	w, x := v, v
	var d, e float64

	fx := f(x)
	evals := 1
	fv, fw := fx, fx

	xm := 0.5 * (a + b)
	tol1 := sqrtEps*math.Abs(x) + s.XTol/3
	tol2 := 2 * tol1

	for math.Abs(x-xm) > tol2-0.5*(b-a) {
		golden := true
		if math.Abs(e) > tol1 {
			golden = false
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x-v)*q - (x-w)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			r = e
			e = d

			if math.Abs(p) < math.Abs(0.5*q*r) && p > q*(a-x) && p < q*(b-x) {
				d = p / q
				u := x + d
				if u-a < tol2 || b-u < tol2 {
					d = tol1 * sign(xm-x)
				}
			} else {
				golden = true
			}
		}
		if golden {
			if x >= xm {
				e = a - x
			} else {
				e = b - x
			}
			d = goldenMean * e
		}

		u := x + sign(d)*math.Max(math.Abs(d), tol1)
		fu := f(u)
		evals++

		if fu <= fx {
			if u >= x {
				a = x
			} else {
				b = x
			}
			v, fv = w, fw
			w, fw = x, fx
			x, fx = u, fu
		} else {
			if u < x {
				a = u
			} else {
				b = u
			}
			switch {
			case fu <= fw || w == x:
				v, fv = w, fw
				w, fw = u, fu
			case fu <= fv || v == x || v == w:
				v, fv = u, fu
			}
		}

		xm = 0.5 * (a + b)
		tol1 = sqrtEps*math.Abs(x) + s.XTol/3
		tol2 = 2 * tol1

		if evals >= s.MaxEvaluations {
			return Result{X: x, F: fx, Evaluations: evals},
				fmt.Errorf("%w: %d", ErrMaxEvaluations, evals)
		}
	}

	return Result{X: x, F: fx, Evaluations: evals}, nil
}

// sign returns -1 for negative x and 1 otherwise.
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
