// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderHTML writes the cost profile as a standalone go-echarts page.
// Gap columns are left blank in the match series and shown as their own
// scatter series at zero.
func RenderHTML(w io.Writer, costs []ColumnCost, title string) error {
	x := make([]string, len(costs))
	match := make([]opts.LineData, len(costs))
	gaps := make([]opts.LineData, len(costs))
	for i, c := range costs {
		x[i] = strconv.Itoa(c.Column)
		if c.Gap {
			match[i] = opts.LineData{Value: "-"}
			gaps[i] = opts.LineData{Value: 0}
			continue
		}
		match[i] = opts.LineData{Value: c.Cost}
		gaps[i] = opts.LineData{Value: "-"}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "100%", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("columns=%d", len(costs))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "column"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "distance"}),
	)
	line.SetXAxis(x).
		AddSeries("match", match).
		AddSeries("gap", gaps, charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}))

	if err := line.Render(w); err != nil {
		return fmt.Errorf("report: render html: %w", err)
	}

	return nil
}
