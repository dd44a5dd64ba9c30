// Package optics models a light ray crossing the plane interface x = D
// between two homogeneous media. Minimizing the optical path over the point
// where the ray meets the interface reproduces Snell's law.
package optics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/AnkushinDaniil/fermat/minimize"
)

// TotalTravelTime returns n1·L1 + n2·L2 for a ray from the origin to
// (xTarget, yTarget) that crosses x = d at height ySplit.
func TotalTravelTime(ySplit, n1, n2, d, xTarget, yTarget float64) float64 {
	l1 := math.Sqrt(d*d + ySplit*ySplit)
	l2 := math.Sqrt((xTarget-d)*(xTarget-d) + (yTarget-ySplit)*(yTarget-ySplit))
	return n1*l1 + n2*l2
}

// Setup fixes the media and the geometry. The ray always starts at the origin.
type Setup struct {
	N1      float64
	N2      float64
	D       float64
	XTarget float64
	YTarget float64
}

func (s Setup) TravelTime(ySplit float64) float64 {
	return TotalTravelTime(ySplit, s.N1, s.N2, s.D, s.XTarget, s.YTarget)
}

// Bounds is the interval between the heights of the two end points.
func (s Setup) Bounds() (lo, hi float64) {
	return math.Min(0, s.YTarget), math.Max(0, s.YTarget)
}

// Scan samples the travel time at n evenly spaced split points.
func (s Setup) Scan(n int) (ys, times []float64) {
	lo, hi := s.Bounds()
	if n < 2 {
		return []float64{lo}, []float64{s.TravelTime(lo)}
	}
	ys = floats.Span(make([]float64, n), lo, hi)
	times = make([]float64, n)
	for i, y := range ys {
		times[i] = s.TravelTime(y)
	}
	return ys, times
}

// OptimalSplit finds the split point with the least travel time.
func (s Setup) OptimalSplit(settings *minimize.Settings) (minimize.Result, error) {
	lo, hi := s.Bounds()
	res, err := minimize.Bounded(s.TravelTime, lo, hi, settings)
	if err != nil {
		return res, fmt.Errorf("failed to minimize travel time: %w", err)
	}
	return res, nil
}

// StraightSplit is where the direct line to the target crosses the interface.
func (s Setup) StraightSplit() float64 {
	return s.D * s.YTarget / s.XTarget
}

// Angles returns the angles of both segments to the interface normal.
func (s Setup) Angles(ySplit float64) (theta1, theta2 float64) {
	theta1 = math.Atan2(ySplit, s.D)
	theta2 = math.Atan2(s.YTarget-ySplit, s.XTarget-s.D)
	return theta1, theta2
}

// SnellResidual is n1·sinθ1 − n2·sinθ2. It vanishes at the optimal split.
func (s Setup) SnellResidual(ySplit float64) float64 {
	l1 := math.Hypot(s.D, ySplit)
	l2 := math.Hypot(s.XTarget-s.D, s.YTarget-ySplit)
	return s.N1*ySplit/l1 - s.N2*(s.YTarget-ySplit)/l2
}
