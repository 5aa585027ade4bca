package charts

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/githubocto/good-day-azure/internal/aggregate"
	"github.com/githubocto/good-day-azure/internal/survey"
)

const (
	heatmapWidth  = "1200px"
	heatmapHeight = "500px"
)

// NewAmountOfDay encodes the amount-of-day grid: one row band per amount
// question, Mon-Fri columns, cell intensity linear in the answer ordinal over
// the question's scale.
func NewAmountOfDay(win survey.Window, questions []survey.Question, cells []aggregate.Cell) *charts.HeatMap {
	hm := charts.NewHeatMap()

	bandLabels := make([]string, len(questions))
	steps := 2
	for i, q := range questions {
		bandLabels[i] = q.Title
		if len(q.Options) > steps {
			steps = len(q.Options)
		}
	}

	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:           heatmapWidth,
			Height:          heatmapHeight,
			BackgroundColor: "white",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("How much of each day? (week of %s)", win.Title()),
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: weekdayLabels(win)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: bandLabels}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(steps - 1),
			InRange:    &opts.VisualMapInRange{Color: HeatRamp(9)},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	items := make([]opts.HeatMapData, 0, len(cells))
	for _, cell := range cells {
		// weekday offset 1 (Monday) is column 0
		items = append(items, opts.HeatMapData{
			Value: [3]interface{}{cell.Weekday - 1, cell.Band, cell.Ordinal},
		})
	}
	hm.SetXAxis(weekdayLabels(win)).AddSeries("amount of day", items)
	return hm
}
