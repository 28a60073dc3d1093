package dashboard

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderTrends writes an HTML page with one line chart per series.
func RenderTrends(w io.Writer, series []TrendSeries) error {
	page := components.NewPage()
	page.PageTitle = "Value Trends"

	for _, s := range series {
		xAxis := make([]string, 0, len(s.Points))
		yData := make([]opts.LineData, 0, len(s.Points))
		for _, p := range s.Points {
			xAxis = append(xAxis, p.Date)
			yData = append(yData, opts.LineData{Value: p.Value})
		}

		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{
				Title:    s.Name,
				Subtitle: s.Unit,
			}),
			charts.WithTooltipOpts(opts.Tooltip{
				Show: opts.Bool(true),
			}),
			charts.WithLegendOpts(opts.Legend{
				Show: opts.Bool(false),
			}),
			charts.WithYAxisOpts(opts.YAxis{
				Name: s.Unit,
			}),
		)
		line.SetXAxis(xAxis).
			AddSeries(s.Name, yData).
			SetSeriesOptions(
				charts.WithLineChartOpts(opts.LineChart{
					Smooth:     opts.Bool(true),
					ShowSymbol: opts.Bool(true),
				}),
				charts.WithLineStyleOpts(opts.LineStyle{Color: s.Color}),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
			)
		page.AddCharts(line)
	}

	return page.Render(w)
}
