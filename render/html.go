package render

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/AnkushinDaniil/fermat/entity"
)

const pageTitle = "Fermat's principle and the calculus of variations"

func newChart(title, xName, yName string) *charts.Line {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       pageTitle,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithLegendOpts(opts.Legend{
			Orient:       "horizontal",
			Show:         opts.Bool(true),
			SelectedMode: "multiple",
			Type:         "scroll",
			Top:          "bottom",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
				Snap: opts.Bool(true),
			},
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Top:  "0%",
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Name:  "chart",
					Title: "Save as image",
				},
				DataView: &opts.ToolBoxFeatureDataView{
					Show:  opts.Bool(true),
					Title: "Data view",
					Lang:  []string{"data view", "turn off", "refresh"},
				},
				Restore: &opts.ToolBoxFeatureRestore{
					Show:  opts.Bool(true),
					Title: "refresh",
				},
			},
		}),
		// AXIS
		charts.WithXAxisOpts(opts.XAxis{
			Name: xName,
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  yName,
			Type:  "value",
			Show:  opts.Bool(true),
			Scale: opts.Bool(true),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)
	return line
}

// RefractionPage shows the travel time curve and the ray path.
func RefractionPage(curve *entity.Series, optimum float64, ray, direct *entity.Series) *components.Page {
	timeChart := newChart("Gesamte Laufzeit", "Schnittpunkt y*", "Gesamte Laufzeit")
	timeChart.AddSeries(curve.Name(), curve.LineData(),
		charts.WithLineStyleOpts(opts.LineStyle{Color: "blue"}),
		charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{
			Name:  fmt.Sprintf("Optimum: y* = %.2f", optimum),
			XAxis: optimum,
		}),
	)

	rayChart := newChart("Strahlengang", "x", "y")
	rayChart.AddSeries(ray.Name(), ray.LineData(),
		charts.WithLineStyleOpts(opts.LineStyle{Color: "blue"}),
	)
	rayChart.AddSeries(direct.Name(), direct.LineData(),
		charts.WithLineStyleOpts(opts.LineStyle{Color: "gray", Type: "dashed"}),
	)

	page := components.NewPage()
	page.AddCharts(timeChart, rayChart)
	return page
}

// VariationPage shows the varied paths and the arc length over ε.
func VariationPage(paths []*entity.Series, lengths *entity.Series) *components.Page {
	pathChart := newChart("Variation des Pfades", "x", "y")
	for i, path := range paths {
		style := opts.LineStyle{Type: "dashed"}
		if i == 0 {
			style = opts.LineStyle{Color: "black", Width: 3}
		}
		pathChart.AddSeries(path.Name(), path.LineData(), charts.WithLineStyleOpts(style))
	}

	lengthChart := newChart("Länge des Pfades L(ε)", "ε", "Bogenlänge")
	series := []charts.SeriesOpts{charts.WithLineStyleOpts(opts.LineStyle{Color: "red", Width: 2})}
	if i := lengths.MinIdx(); i >= 0 {
		series = append(series,
			charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
				Name:  "Ableitung = 0",
				YAxis: lengths.Y()[i],
			}),
			charts.WithMarkPointNameCoordItemOpts(opts.MarkPointNameCoordItem{
				Name:       "Gerade ist kürzester Weg",
				Coordinate: []interface{}{lengths.X()[i], lengths.Y()[i]},
			}),
		)
	}
	lengthChart.AddSeries(lengths.Name(), lengths.LineData(), series...)

	page := components.NewPage()
	page.AddCharts(pathChart, lengthChart)
	return page
}

func SaveHTML(path string, page *components.Page) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
