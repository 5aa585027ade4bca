// Package charts builds the declarative chart specifications handed to the
// renderer. All data placement decisions happen in the aggregate package;
// this package only encodes them.
package charts

import (
	"fmt"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/githubocto/good-day-azure/internal/aggregate"
	"github.com/githubocto/good-day-azure/internal/survey"
)

const (
	timelineWidth  = "1200px"
	timelineHeight = "350px"

	seriesColor = "rgba(99, 102, 241, 1)"
)

// weekday day offsets shown on the x axis (Sunday-anchored window)
var weekdayOffsets = []int{1, 2, 3, 4, 5}

// NewTimeline encodes one question's week as a line chart: x is the Mon-Fri
// weekday (labels come from the window so they cannot drift from the day
// offsets), y is the question's own option scale. Days without a resolved
// answer hold a gap placeholder so the line breaks instead of interpolating.
// Each day with a resolved quality answer gets a background tint.
func NewTimeline(win survey.Window, s aggregate.Series, bands []aggregate.Band, quality survey.Question) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:           timelineWidth,
			Height:          timelineHeight,
			BackgroundColor: "white",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s (week of %s)", strings.ReplaceAll(s.Question.ID, "_", " "), win.Title()),
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "category",
			// axis labels are the option list itself: tick i is exactly the
			// label whose OptionIndex is i
			Data: s.Question.Options,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	byDay := make(map[int]int, len(s.Points))
	for _, p := range s.Points {
		byDay[p.Day] = p.Option
	}
	items := make([]opts.LineData, 0, len(weekdayOffsets))
	for _, day := range weekdayOffsets {
		if idx, ok := byDay[day]; ok {
			items = append(items, opts.LineData{Value: idx})
		} else {
			items = append(items, opts.LineData{Value: "-"})
		}
	}

	markAreas := make([]charts.SeriesOpts, 0, len(bands)+2)
	markAreas = append(markAreas,
		charts.WithLineStyleOpts(opts.LineStyle{Width: 4, Color: seriesColor}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: seriesColor}),
	)
	for _, b := range bands {
		if b.Day < weekdayOffsets[0] || b.Day > weekdayOffsets[len(weekdayOffsets)-1] {
			continue
		}
		label := win.WeekdayLabel(b.Day)
		markAreas = append(markAreas, charts.WithMarkAreaNameCoordItemOpts(opts.MarkAreaNameCoordItem{
			Coordinate0: []interface{}{label},
			Coordinate1: []interface{}{label},
			ItemStyle:   &opts.ItemStyle{Color: BandColor(b.Quality, len(quality.Options))},
		}))
	}

	line.SetXAxis(weekdayLabels(win)).
		AddSeries(s.Question.ID, items, markAreas...).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return line
}

func weekdayLabels(win survey.Window) []string {
	labels := make([]string, 0, len(weekdayOffsets))
	for _, day := range weekdayOffsets {
		labels = append(labels, win.WeekdayLabel(day))
	}
	return labels
}
