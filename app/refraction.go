package app

import (
	"context"
	"fmt"
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/fermat/entity"
	"github.com/AnkushinDaniil/fermat/entity/format"
	"github.com/AnkushinDaniil/fermat/optics"
	"github.com/AnkushinDaniil/fermat/render"
)

func (a *App) runRefraction(ctx context.Context) error {
	p := a.Params.Refraction
	log.WithFields(log.Fields{
		"n1":      p.N1,
		"n2":      p.N2,
		"D":       p.D,
		"xTarget": p.XTarget,
		"yTarget": p.YTarget,
		"samples": p.Samples,
	}).Debug("Refraction started")

	setup := optics.Setup{N1: p.N1, N2: p.N2, D: p.D, XTarget: p.XTarget, YTarget: p.YTarget}

	ys, times := setup.Scan(p.Samples)
	curve, err := entity.NewSeries("Gesamte Laufzeit", ys, times)
	if err != nil {
		return fmt.Errorf("failed to create travel time curve: %w", err)
	}

	res, err := setup.OptimalSplit(nil)
	if err != nil {
		return fmt.Errorf("failed to find optimal split: %w", err)
	}
	theta1, theta2 := setup.Angles(res.X)
	log.WithFields(log.Fields{
		"y*":          res.X,
		"travelTime":  res.F,
		"evaluations": res.Evaluations,
		"theta1":      theta1 * 180 / math.Pi,
		"theta2":      theta2 * 180 / math.Pi,
		"residual":    setup.SnellResidual(res.X),
	}).Info("Optimal split found")

	if err := ctx.Err(); err != nil {
		return err
	}

	renderTime := time.Now()
	switch f := a.Params.Format; {
	case f.IsPlot():
		timePlot, err := render.TravelTimePlot(curve, res.X)
		if err != nil {
			return fmt.Errorf("failed to plot travel time: %w", err)
		}
		path := a.path("gesamte_laufzeit." + f.Ext())
		if err := render.Save(timePlot, path); err != nil {
			return err
		}
		a.saved(path, renderTime)

		renderTime = time.Now()
		rayPlot, err := render.RayPathPlot(setup, res.X)
		if err != nil {
			return fmt.Errorf("failed to plot ray path: %w", err)
		}
		path = a.path("strahlengang." + f.Ext())
		if err := render.Save(rayPlot, path); err != nil {
			return err
		}
		a.saved(path, renderTime)

	case f == format.HTML:
		ray, err := entity.NewSeries("Strahlengang",
			[]float64{0, p.D, p.XTarget}, []float64{0, res.X, p.YTarget})
		if err != nil {
			return fmt.Errorf("failed to create ray: %w", err)
		}
		direct, err := entity.NewSeries("Direktverbindung",
			[]float64{0, p.XTarget}, []float64{0, p.YTarget})
		if err != nil {
			return fmt.Errorf("failed to create direct line: %w", err)
		}
		log.Info("Chart created")
		path := a.path("lichtbrechung.html")
		if err := render.SaveHTML(path, render.RefractionPage(curve, res.X, ray, direct)); err != nil {
			return err
		}
		a.saved(path, renderTime)

	case f == format.CSV:
		path := a.path("gesamte_laufzeit.csv")
		if err := render.SaveCSV(path, travelTimeTable(curve)); err != nil {
			return err
		}
		a.saved(path, renderTime)

	case f == format.XLSX:
		summary := []render.Entry{
			{Key: "n1", Value: p.N1},
			{Key: "n2", Value: p.N2},
			{Key: "D", Value: p.D},
			{Key: "x_z", Value: p.XTarget},
			{Key: "y_z", Value: p.YTarget},
			{Key: "y*", Value: res.X},
			{Key: "T(y*)", Value: res.F},
			{Key: "theta1 [deg]", Value: theta1 * 180 / math.Pi},
			{Key: "theta2 [deg]", Value: theta2 * 180 / math.Pi},
			{Key: "n1 sin(theta1) - n2 sin(theta2)", Value: setup.SnellResidual(res.X)},
		}
		path := a.path("lichtbrechung.xlsx")
		if err := render.SaveXLSX(path, summary, travelTimeTable(curve)); err != nil {
			return err
		}
		a.saved(path, renderTime)

	default:
		return fmt.Errorf("unsupported format: %v", f)
	}
	return nil
}

func travelTimeTable(curve *entity.Series) render.Table {
	return render.Table{
		Sheet:   "Laufzeit",
		Header:  []string{"y_stern", "laufzeit"},
		Columns: [][]float64{curve.X(), curve.Y()},
	}
}
