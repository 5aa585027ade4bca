package survey

import "time"

// WindowDays is the reporting window length.
const WindowDays = 7

// Window is the half-open date range [Start, End) being reported on, anchored
// to Sunday midnight in the user's local time zone.
type Window struct {
	Start time.Time
	End   time.Time
}

// LastWeek computes the most recent complete calendar week before now. The
// pipeline runs after the week ends, so the report is a full retrospective
// rather than a partial in-progress week.
func LastWeek(now time.Time, loc *time.Location) Window {
	local := now.In(loc)
	ref := local.AddDate(0, 0, -WindowDays)
	start := floorToSunday(ref)
	return Window{Start: start, End: start.AddDate(0, 0, WindowDays)}
}

func floorToSunday(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// Contains reports whether date falls inside the window. Half-open: a row
// dated exactly at Start is in, exactly at End is out.
func (w Window) Contains(date time.Time) bool {
	return !date.Before(w.Start) && date.Before(w.End)
}

// DayOffset is the whole-day index of date relative to Start, the shared
// x-axis unit for every chart. It uses the same local-midnight anchoring as
// ParseCSV, so a row accepted by Contains always lands in [0, WindowDays-1].
func (w Window) DayOffset(date time.Time) int {
	days := 0
	for d := w.Start; d.Before(date); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}

// WeekdayLabel names the weekday at a given day offset. Deriving labels from
// the window itself keeps the axis an exact inverse of DayOffset.
func (w Window) WeekdayLabel(offset int) string {
	return w.Start.AddDate(0, 0, offset).Format("Monday")
}

// Title formats the window start for chart titles and the narrative, e.g.
// "January 15, 2024".
func (w Window) Title() string {
	return w.Start.Format("January 2, 2006")
}

// Filter keeps the rows inside the window, preserving input order.
func (w Window) Filter(rows []Row) []Row {
	var out []Row
	for _, r := range rows {
		if w.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return out
}
