package chart

import (
	"errors"

	"github.com/vicanso/go-charts/v2"

	"StockChat/internal/model"
)

// Render draws a price chart for the series: close, high and low as three
// legend-labelled lines, returned as PNG bytes.
func Render(series model.HistorySeries) ([]byte, error) {
	if series.Empty() {
		return nil, errors.New("no chart data")
	}
	if len(series.Bars) < 2 {
		return nil, errors.New("not enough data points")
	}

	labels := make([]string, len(series.Bars))
	closes := make([]float64, len(series.Bars))
	highs := make([]float64, len(series.Bars))
	lows := make([]float64, len(series.Bars))

	yMin, yMax := series.Bars[0].Low, series.Bars[0].High
	for i, b := range series.Bars {
		labels[i] = b.Time.Format("Jan 02")
		closes[i] = b.Close
		highs[i] = b.High
		lows[i] = b.Low
		if b.Low < yMin {
			yMin = b.Low
		}
		if b.High > yMax {
			yMax = b.High
		}
	}

	pad := (yMax - yMin) * 0.05
	if pad < yMax*0.002 {
		pad = yMax * 0.002
	}
	yMin -= pad
	if yMin < 0 {
		yMin = 0
	}
	yMax += pad

	painter, err := charts.LineRender(
		[][]float64{closes, highs, lows},
		charts.TitleTextOptionFunc(series.Symbol+" Price Chart"),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        labels,
			BoundaryGap: charts.FalseFlag(),
			SplitNumber: 6,
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{
			Min:         &yMin,
			Max:         &yMax,
			DivideCount: 5,
		}),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{"Close", "High", "Low"}}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}
