package chart

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"binder/internal/domain"
)

// RenderValuationChart renders a PNG line chart from the daily valuation
// series. Two series: Market Value (blue solid) and Cost Basis (gray
// dashed). Returns raw PNG bytes.
func RenderValuationChart(series []domain.DailyValuation) ([]byte, error) {
	if len(series) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(series))
	}

	xValues := make([]time.Time, len(series))
	valueY := make([]float64, len(series))
	costY := make([]float64, len(series))

	for i, row := range series {
		xValues[i] = row.Date
		valueY[i] = row.TotalMarketValue.InexactFloat64()
		costY[i] = row.TotalCostBasis.InexactFloat64()
	}

	valueSeries := chart.TimeSeries{
		Name: "Market Value",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"),
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: valueY,
	}

	costSeries := chart.TimeSeries{
		Name: "Cost Basis",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("9ca3af"),
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: xValues,
		YValues: costY,
	}

	graph := chart.Chart{
		Title:  "Collection Value",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 02 '06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			valueSeries,
			costSeries,
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteValuationChart renders the series and writes the PNG to path.
func WriteValuationChart(series []domain.DailyValuation, path string) error {
	png, err := RenderValuationChart(series)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0644); err != nil {
		return fmt.Errorf("failed to write chart to %s: %w", path, err)
	}
	return nil
}
