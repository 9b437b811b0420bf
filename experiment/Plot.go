package experiment

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/samuelfneumann/bodyguard/experiment/trackers"
)

// Plot renders one line chart per Graph to a single HTML page
func Plot(filename string, graphs ...*trackers.Graph) error {
	page := components.NewPage()
	page.PageTitle = "bodyguard"

	for _, g := range graphs {
		page.AddCharts(lineChart(g))
	}

	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("plot: could not create directory: %w", err)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("plot: could not create file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("plot: could not render page: %w", err)
	}
	return nil
}

func lineChart(g *trackers.Graph) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: g.Title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Trigger: "axis",
		}),
	)

	for i, name := range g.Series() {
		data := g.Data(i)

		items := make([]opts.LineData, 0, len(data.X))
		for j := range data.X {
			items = append(items, opts.LineData{
				Value: []float64{data.X[j], data.Y[j]},
			})
		}
		line.AddSeries(name, items)
	}

	return line
}
