package aggregate

import "github.com/githubocto/good-day-azure/internal/survey"

// PackedPoint is one answer on a small categorical axis. Bucket is the option
// ordinal (a time-of-day slot); Column is the collision-avoiding slot within
// that bucket; Day records which day produced the point.
type PackedPoint struct {
	Day    int
	Bucket int
	Column int
}

// PackColumns folds rows in chronological order through a per-bucket counter:
// the first point landing in a bucket gets column 0, the next column 1, and so
// on. The counter map is local to one call, so each series packs independently
// and re-running over the same rows yields identical assignments.
func PackColumns(rows []survey.Row, win survey.Window, q survey.Question) []PackedPoint {
	counters := make(map[int]int)
	var points []PackedPoint
	for _, row := range rows {
		bucket := q.OptionIndex(row.Answer(q.ID))
		if bucket < 0 {
			continue
		}
		points = append(points, PackedPoint{
			Day:    win.DayOffset(row.Date),
			Bucket: bucket,
			Column: counters[bucket],
		})
		counters[bucket]++
	}
	return points
}
