package report

import (
	"fmt"
	"os"

	"stridebench/benchmark"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/browser"
)

// RenderChart writes an interactive line chart of min/average/max throughput per stride to path.
func RenderChart(results *benchmark.Results, path string) error {
	title := fmt.Sprintf("strided copies on a %s buffer", formatSize(results.Params.BufferSize))

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "640px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: results.Host.String()}),
		charts.WithXAxisOpts(opts.XAxis{Name: "stride length (bytes)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "loops per second"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: 100}),
	)

	mins := make([]opts.LineData, len(results.Strides))
	avgs := make([]opts.LineData, len(results.Strides))
	maxs := make([]opts.LineData, len(results.Strides))
	for i, sr := range results.Strides {
		mins[i] = opts.LineData{Value: sr.Aggregate.Min}
		avgs[i] = opts.LineData{Value: sr.Aggregate.Avg}
		maxs[i] = opts.LineData{Value: sr.Aggregate.Max}
	}

	line.SetXAxis(results.StrideLengths()).
		AddSeries("Min", mins).
		AddSeries("Average", avgs).
		AddSeries("Max", maxs)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return f.Close()
}

// OpenChart opens a rendered chart in the default browser.
func OpenChart(path string) error {
	if err := browser.OpenFile(path); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}
