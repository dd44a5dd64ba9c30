package entity

import (
	"testing"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot/plotter"
)

func TestNewSeries(t *testing.T) {
	if _, err := NewSeries("", nil, nil); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := NewSeries("L", []float64{1, 2}, []float64{1}); err == nil {
		t.Error("expected error for length mismatch")
	}

	s, err := NewSeries("L", []float64{-1, 0, 1}, []float64{3, 1, 3})
	if err != nil {
		t.Fatal(err)
	}
	if s.Name() != "L" || s.Len() != 3 {
		t.Errorf("got name %q, len %d", s.Name(), s.Len())
	}
	if i := s.MinIdx(); i != 1 {
		t.Errorf("MinIdx() = %d, want 1", i)
	}
	if d := cmp.Diff(plotter.XYs{{X: -1, Y: 3}, {X: 0, Y: 1}, {X: 1, Y: 3}}, s.XYs()); d != "" {
		t.Error(d)
	}
	want := []opts.LineData{
		{Value: []float64{-1, 3}},
		{Value: []float64{0, 1}},
		{Value: []float64{1, 3}},
	}
	if d := cmp.Diff(want, s.LineData()); d != "" {
		t.Error(d)
	}
}

func TestSeriesEmpty(t *testing.T) {
	s, err := NewSeries("empty", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.MinIdx() != -1 || len(s.XYs()) != 0 || len(s.LineData()) != 0 {
		t.Error("empty series should have no points")
	}
}
