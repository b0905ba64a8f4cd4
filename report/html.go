// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/tropix/trials"
)

// chart geometry shared by every chart on the page
const (
	chartWidth  = "1200px"
	chartHeight = "500px"
)

// WriteHTML renders a page with two bar charts: trials per verdict and the
// elapsed time of every trial.
func WriteHTML(w io.Writer, sum trials.Summary, title string) error {
	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(
		verdictChart(sum, title),
		elapsedChart(sum),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("WriteHTML: %w", err)
	}
	return nil
}

func verdictChart(sum trials.Summary, title string) *charts.Bar {
	bar := charts.NewBar()
	subtitle := fmt.Sprintf("trials=%d, success rate=%.3f", sum.Count, sum.SuccessRate())
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: chartWidth, Height: chartHeight}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis([]string{trials.OK.String(), trials.Failed.String(), trials.Incorrect.String()}).
		AddSeries("trials", []opts.BarData{
			{Value: sum.OK},
			{Value: sum.Failed},
			{Value: sum.Incorrect},
		}).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))
	return bar
}

func elapsedChart(sum trials.Summary) *charts.Bar {
	labels := make([]string, len(sum.Records))
	items := make([]opts.BarData, len(sum.Records))
	for i, r := range sum.Records {
		labels[i] = strconv.Itoa(r.Index)
		items[i] = opts.BarData{Name: r.Verdict.String(), Value: r.Elapsed.Milliseconds()}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Elapsed per trial", Subtitle: "milliseconds"}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).AddSeries("elapsed", items)
	return bar
}
