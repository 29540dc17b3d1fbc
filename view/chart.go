package view

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"weather-dash/dashboard"
)

// RenderHourlyChart writes a standalone HTML document with a line chart of the
// hourly temperatures in view.
func RenderHourlyChart(w io.Writer, view dashboard.DashboardView) error {
	labels := make([]string, 0, len(view.Hourly))
	temps := make([]opts.LineData, 0, len(view.Hourly))
	for _, h := range view.Hourly {
		labels = append(labels, h.Label)
		temps = append(temps, opts.LineData{Value: h.TempC, Symbol: "circle"})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fmt.Sprintf("%s hourly temperature", view.City),
			Width:     "100%",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    view.City,
			Subtitle: "Temperature (°C), 3-hour steps",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "°C",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:  "slider",
			Start: 0,
			End:   50,
		}),
	)

	line.SetXAxis(labels).
		AddSeries("Temperature", temps).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{
				Smooth: opts.Bool(true),
			}),
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{c}°",
			}),
		)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
