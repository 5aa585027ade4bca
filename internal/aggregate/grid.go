package aggregate

import "github.com/githubocto/good-day-azure/internal/survey"

// Cell is one square of the amount-of-day grid. Weekday is the day offset
// (1..5, Monday through Friday), Band the index of the question's row band,
// Ordinal the answer's position on that question's scale and Steps the scale
// length, so intensity = Ordinal / (Steps - 1).
type Cell struct {
	Weekday int
	Band    int
	Ordinal int
	Steps   int
}

// weekday offsets for a Sunday-anchored window
const (
	mondayOffset = 1
	fridayOffset = 5
)

// BuildGrid lays the amount questions out as row bands against Mon-Fri
// columns. Rows falling on a weekend are excluded from this chart only; other
// charts still see them.
func BuildGrid(rows []survey.Row, win survey.Window, questions []survey.Question) []Cell {
	var cells []Cell
	for _, row := range rows {
		day := win.DayOffset(row.Date)
		if day < mondayOffset || day > fridayOffset {
			continue
		}
		for band, q := range questions {
			idx := q.OptionIndex(row.Answer(q.ID))
			if idx < 0 {
				continue
			}
			cells = append(cells, Cell{Weekday: day, Band: band, Ordinal: idx, Steps: len(q.Options)})
		}
	}
	return cells
}
