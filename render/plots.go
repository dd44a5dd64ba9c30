package render

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/AnkushinDaniil/fermat/entity"
	"github.com/AnkushinDaniil/fermat/optics"
)

var (
	blue  = color.RGBA{B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
	gray  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	black = color.RGBA{A: 255}
)

var dashed = []vg.Length{vg.Points(6), vg.Points(4)}

const (
	Width  = 8 * vg.Inch
	Height = 5 * vg.Inch
)

// TravelTimePlot draws the travel time over the split point and marks the
// optimum with a vertical line.
func TravelTimePlot(curve *entity.Series, optimum float64) (*plot.Plot, error) {
	if curve.Len() == 0 {
		return nil, errors.New("empty travel time curve")
	}
	p := plot.New()
	p.Title.Text = "Gesamte Laufzeit in Abhaengigkeit vom Schnittpunkt y*"
	p.X.Label.Text = "Schnittpunkt y* (bei x = D)"
	p.Y.Label.Text = "Gesamte Laufzeit"
	p.Add(plotter.NewGrid())

	l, err := plotter.NewLine(curve.XYs())
	if err != nil {
		return nil, fmt.Errorf("failed to create line: %w", err)
	}
	l.LineStyle.Color = blue

	marker, err := plotter.NewLine(plotter.XYs{
		{X: optimum, Y: floats.Min(curve.Y())},
		{X: optimum, Y: floats.Max(curve.Y())},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create optimum marker: %w", err)
	}
	marker.LineStyle.Color = red
	marker.LineStyle.Dashes = dashed

	p.Add(l, marker)
	p.Legend.Add(curve.Name(), l)
	p.Legend.Add(fmt.Sprintf("Optimum: y* = %.2f", optimum), marker)
	p.Legend.Top = true
	return p, nil
}

// RayPathPlot draws the refracted ray through the split point next to the
// direct connection and the interface x = D.
func RayPathPlot(s optics.Setup, ySplit float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Visualisierung des Strahlengangs"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	ray, points, err := plotter.NewLinePoints(plotter.XYs{
		{X: 0, Y: 0},
		{X: s.D, Y: ySplit},
		{X: s.XTarget, Y: s.YTarget},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ray: %w", err)
	}
	ray.LineStyle.Color = blue
	points.GlyphStyle.Color = blue
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Radius = vg.Points(3)

	direct, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: s.XTarget, Y: s.YTarget}})
	if err != nil {
		return nil, fmt.Errorf("failed to create direct line: %w", err)
	}
	direct.LineStyle.Color = gray
	direct.LineStyle.Dashes = dashed

	lo, hi := s.Bounds()
	border, err := plotter.NewLine(plotter.XYs{{X: s.D, Y: lo}, {X: s.D, Y: hi}})
	if err != nil {
		return nil, fmt.Errorf("failed to create interface line: %w", err)
	}
	border.LineStyle.Color = black
	border.LineStyle.Dashes = dashed

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: plotter.XYs{
			{X: s.D / 2, Y: ySplit / 2},
			{X: (s.D + s.XTarget) / 2, Y: (ySplit + s.YTarget) / 2},
		},
		Labels: []string{
			fmt.Sprintf("n1 = %g", s.N1),
			fmt.Sprintf("n2 = %g", s.N2),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = blue
	}

	p.Add(ray, points, direct, border, labels)
	p.Legend.Add("Strahlengang", ray, points)
	p.Legend.Add("Direktverbindung", direct)
	p.Legend.Add("Grenze bei x = D", border)
	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}

// PathsPlot draws the first series as the optimal path and the rest as its
// variations.
func PathsPlot(paths []*entity.Series) (*plot.Plot, error) {
	if len(paths) == 0 {
		return nil, errors.New("no paths")
	}
	p := plot.New()
	p.Title.Text = "Variation des Pfades: y(x) + ε·η(x)"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	for i, path := range paths {
		l, err := plotter.NewLine(path.XYs())
		if err != nil {
			return nil, fmt.Errorf("failed to create line %q: %w", path.Name(), err)
		}
		if i == 0 {
			l.LineStyle.Color = black
			l.LineStyle.Width = vg.Points(3)
		} else {
			l.LineStyle.Color = plotutil.Color(i - 1)
			l.LineStyle.Dashes = dashed
		}
		p.Add(l)
		p.Legend.Add(path.Name(), l)
	}
	p.Legend.Top = true
	return p, nil
}

// LengthPlot draws the arc length over the perturbation strength, marks the
// minimum and the horizontal tangent through it.
func LengthPlot(lengths *entity.Series) (*plot.Plot, error) {
	i := lengths.MinIdx()
	if i < 0 {
		return nil, errors.New("empty length curve")
	}
	xMin, yMin := lengths.X()[i], lengths.Y()[i]

	p := plot.New()
	p.Title.Text = "Länge des Pfades L(ε)"
	p.X.Label.Text = "Stärke der Störung ε"
	p.Y.Label.Text = "Bogenlänge"
	p.Add(plotter.NewGrid())

	l, err := plotter.NewLine(lengths.XYs())
	if err != nil {
		return nil, fmt.Errorf("failed to create line: %w", err)
	}
	l.LineStyle.Color = red
	l.LineStyle.Width = vg.Points(2)

	minimum, err := plotter.NewScatter(plotter.XYs{{X: xMin, Y: yMin}})
	if err != nil {
		return nil, fmt.Errorf("failed to create minimum marker: %w", err)
	}
	minimum.GlyphStyle.Shape = draw.CircleGlyph{}
	minimum.GlyphStyle.Color = black
	minimum.GlyphStyle.Radius = vg.Points(4)

	tangent := plotter.NewFunction(func(float64) float64 { return yMin })
	tangent.LineStyle.Color = gray
	tangent.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}

	note, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: xMin, Y: yMin + 0.05}},
		Labels: []string{"Gerade ist kürzester Weg"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create annotation: %w", err)
	}
	for j := range note.TextStyle {
		note.TextStyle[j].XAlign = text.XCenter
	}

	p.Add(l, tangent, minimum, note)
	p.Legend.Add(lengths.Name(), l)
	p.Legend.Add(fmt.Sprintf("Minimum bei ε = %g", xMin), minimum)
	p.Legend.Add("Ableitung = 0", tangent)
	p.Legend.Top = true
	return p, nil
}

// Save writes p to path; the image format follows the file extension.
func Save(p *plot.Plot, path string) error {
	if err := p.Save(Width, Height, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

// SaveRow places the plots side by side on one w×h canvas.
func SaveRow(path string, w, h vg.Length, plots ...*plot.Plot) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	c, err := draw.NewFormattedCanvas(w, h, ext)
	if err != nil {
		return fmt.Errorf("failed to create canvas: %w", err)
	}

	tiles := draw.Tiles{
		Rows: 1,
		Cols: len(plots),
		PadX: vg.Millimeter * 5,
		PadY: vg.Millimeter * 5,
	}
	canvases := plot.Align([][]*plot.Plot{plots}, tiles, draw.New(c))
	for j, p := range plots {
		p.Draw(canvases[0][j])
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := c.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write canvas: %w", err)
	}
	return nil
}
