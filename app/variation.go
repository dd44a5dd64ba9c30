package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/vg"

	"github.com/AnkushinDaniil/fermat/arclength"
	"github.com/AnkushinDaniil/fermat/entity"
	"github.com/AnkushinDaniil/fermat/entity/format"
	"github.com/AnkushinDaniil/fermat/render"
)

func (a *App) runVariation(ctx context.Context) error {
	p := a.Params.Variation
	log.WithFields(log.Fields{
		"xStart":     p.XStart,
		"xEnd":       p.XEnd,
		"epsilonMax": p.EpsilonMax,
		"samples":    2*p.EpsilonHalf + 1,
		"showcase":   p.Showcase,
	}).Debug("Variation started")

	eps := arclength.Symmetric(p.EpsilonMax, p.EpsilonHalf)
	sweepTime := time.Now()
	lengths, err := arclength.Sweep(ctx, eps, p.XStart, p.XEnd)
	if err != nil {
		return fmt.Errorf("failed to sweep perturbations: %w", err)
	}
	minIdx := arclength.MinIdx(lengths)
	fields := log.Fields{
		"time":    time.Since(sweepTime),
		"epsilon": eps[minIdx],
		"length":  lengths[minIdx],
	}
	if eps[minIdx] != 0 {
		log.WithFields(fields).Warn("Shortest path is not the straight line")
	} else {
		log.WithFields(fields).Info("Shortest path found")
	}

	lengthCurve, err := entity.NewSeries("L(ε)", eps, lengths)
	if err != nil {
		return fmt.Errorf("failed to create length curve: %w", err)
	}
	paths, err := a.variedPaths()
	if err != nil {
		return err
	}

	renderTime := time.Now()
	switch f := a.Params.Format; {
	case f.IsPlot():
		left, err := render.PathsPlot(paths)
		if err != nil {
			return fmt.Errorf("failed to plot paths: %w", err)
		}
		right, err := render.LengthPlot(lengthCurve)
		if err != nil {
			return fmt.Errorf("failed to plot lengths: %w", err)
		}
		log.Info("Chart created")
		path := a.path("variation_demo." + f.Ext())
		if err := render.SaveRow(path, 14*vg.Inch, 6*vg.Inch, left, right); err != nil {
			return err
		}
		a.saved(path, renderTime)

	case f == format.HTML:
		log.Info("Chart created")
		path := a.path("variation_demo.html")
		if err := render.SaveHTML(path, render.VariationPage(paths, lengthCurve)); err != nil {
			return err
		}
		a.saved(path, renderTime)

	case f == format.CSV:
		path := a.path("variation_demo.csv")
		if err := render.SaveCSV(path, lengthTable(lengthCurve)); err != nil {
			return err
		}
		a.saved(path, renderTime)

	case f == format.XLSX:
		summary := []render.Entry{
			{Key: "x_start", Value: p.XStart},
			{Key: "x_end", Value: p.XEnd},
			{Key: "epsilon_min", Value: eps[minIdx]},
			{Key: "L_min", Value: lengths[minIdx]},
		}
		path := a.path("variation_demo.xlsx")
		if err := render.SaveXLSX(path, summary, lengthTable(lengthCurve)); err != nil {
			return err
		}
		a.saved(path, renderTime)

	default:
		return fmt.Errorf("unsupported format: %v", f)
	}
	return nil
}

// variedPaths returns the straight path followed by the showcase variations.
func (a *App) variedPaths() ([]*entity.Series, error) {
	p := a.Params.Variation
	n := max(p.PlotPoints, 2)
	xs := floats.Span(make([]float64, n), p.XStart, p.XEnd)

	straight, err := entity.NewSeries("Optimale Lösung (Gerade)", xs, arclength.Sample(arclength.Straight, xs))
	if err != nil {
		return nil, fmt.Errorf("failed to create straight path: %w", err)
	}
	paths := []*entity.Series{straight}
	for _, e := range p.Showcase {
		varied := arclength.Varied(arclength.Straight, arclength.Sine, e)
		s, err := entity.NewSeries(fmt.Sprintf("Variation ε = %g", e), xs, arclength.Sample(varied, xs))
		if err != nil {
			return nil, fmt.Errorf("failed to create path for ε = %g: %w", e, err)
		}
		paths = append(paths, s)
	}
	return paths, nil
}

func lengthTable(lengths *entity.Series) render.Table {
	return render.Table{
		Sheet:   "Laenge",
		Header:  []string{"epsilon", "bogenlaenge"},
		Columns: [][]float64{lengths.X(), lengths.Y()},
	}
}
