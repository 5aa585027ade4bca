// Package aggregate transforms a week of survey rows into chart-ready series.
// It is pure: no I/O, no shared state, deterministic for a given row order.
package aggregate

import (
	"sort"

	"github.com/githubocto/good-day-azure/internal/survey"
)

// Point is one resolved answer positioned on the week grid. Day is the day
// offset from the window start, Option the ordinal of the selected answer.
type Point struct {
	Day    int
	Option int
}

// Series is the timeline data for a single question over one week.
type Series struct {
	Question survey.Question
	Points   []Point
}

// Band is the quality tint behind one day of a timeline chart. Quality is the
// ordinal of the workday-quality answer for that day.
type Band struct {
	Day     int
	Quality int
}

// BuildTimeline produces one point per row whose answer resolves against the
// question's option list, ordered by day offset. Rows with a blank answer or
// text outside the option list contribute nothing: a gap in the series, never
// a point at index 0.
func BuildTimeline(rows []survey.Row, win survey.Window, q survey.Question) Series {
	s := Series{Question: q}
	for _, row := range rows {
		idx := q.OptionIndex(row.Answer(q.ID))
		if idx < 0 {
			continue
		}
		s.Points = append(s.Points, Point{Day: win.DayOffset(row.Date), Option: idx})
	}
	sort.SliceStable(s.Points, func(i, j int) bool { return s.Points[i].Day < s.Points[j].Day })
	return s
}

// BuildBands resolves the quality question for each row, independently of any
// primary series: a day gets its tint even when the question being charted
// went unanswered that day.
func BuildBands(rows []survey.Row, win survey.Window, quality survey.Question) []Band {
	var bands []Band
	for _, row := range rows {
		idx := quality.OptionIndex(row.Answer(quality.ID))
		if idx < 0 {
			continue
		}
		bands = append(bands, Band{Day: win.DayOffset(row.Date), Quality: idx})
	}
	return bands
}
