package entity

import (
	"errors"

	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"
)

// Series is a sampled independent variable and the values computed from it.
type Series struct {
	name string
	x    []float64
	y    []float64
}

func NewSeries(name string, x, y []float64) (*Series, error) {
	if name == "" {
		return nil, errors.New("name is empty")
	}
	if len(x) != len(y) {
		return nil, errors.New("x and y differ in length")
	}
	return &Series{name: name, x: x, y: y}, nil
}

func (s *Series) Name() string {
	return s.name
}

func (s *Series) X() []float64 {
	return s.x
}

func (s *Series) Y() []float64 {
	return s.y
}

func (s *Series) Len() int {
	return len(s.x)
}

// MinIdx returns the index of the smallest y value, or -1 for an empty series.
func (s *Series) MinIdx() int {
	if len(s.y) == 0 {
		return -1
	}
	return floats.MinIdx(s.y)
}

func (s *Series) XYs() plotter.XYs {
	xys := make(plotter.XYs, len(s.x))
	for i := range s.x {
		xys[i].X = s.x[i]
		xys[i].Y = s.y[i]
	}
	return xys
}

// LineData returns [x, y] pairs for charts with a value x axis.
func (s *Series) LineData() []opts.LineData {
	data := make([]opts.LineData, len(s.x))
	for i := range s.x {
		data[i] = opts.LineData{Value: []float64{s.x[i], s.y[i]}}
	}
	return data
}
