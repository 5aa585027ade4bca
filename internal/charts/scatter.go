package charts

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/githubocto/good-day-azure/internal/aggregate"
	"github.com/githubocto/good-day-azure/internal/survey"
)

const (
	scatterWidth  = "1200px"
	scatterHeight = "500px"

	mostProductiveColor  = "rgb(99, 102, 241)"
	leastProductiveColor = "rgb(245, 158, 12)"
)

// NewTimeOfDay encodes the productive-time scatter. The y axis is the
// time-of-day bucket scale; the x position is the packed column index, so
// answers sharing a bucket sit side by side instead of overplotting. The two
// series occupy opposite sides of the axis: most-productive columns grow to
// the right of zero, least-productive to the left, so their packings never
// collide with each other.
func NewTimeOfDay(win survey.Window, q survey.Question, most, least []aggregate.PackedPoint) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:           scatterWidth,
			Height:          scatterHeight,
			BackgroundColor: "white",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Do you have a typical time of day that feels productive? (week of %s)", win.Title()),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "days at this time",
			Min:  -float32(maxColumn(least) + 2),
			Max:  float32(maxColumn(most) + 2),
		}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: q.Options}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	scatter.AddSeries("Most productive", scatterItems(most, 1, "circle", 27),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: mostProductiveColor}))
	scatter.AddSeries("Least productive", scatterItems(least, -1, "triangle", 24),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: leastProductiveColor}))
	return scatter
}

func scatterItems(points []aggregate.PackedPoint, direction int, symbol string, size int) []opts.ScatterData {
	items := make([]opts.ScatterData, 0, len(points))
	for _, p := range points {
		items = append(items, opts.ScatterData{
			Value:      []interface{}{direction * (p.Column + 1), p.Bucket},
			Symbol:     symbol,
			SymbolSize: size,
		})
	}
	return items
}

func maxColumn(points []aggregate.PackedPoint) int {
	max := 0
	for _, p := range points {
		if p.Column > max {
			max = p.Column
		}
	}
	return max
}
