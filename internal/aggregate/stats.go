package aggregate

import (
	"fmt"
	"math"

	"github.com/githubocto/good-day-azure/internal/survey"
)

// Stats are the aggregate numbers the narrative document is written from.
type Stats struct {
	DaysLogged int
	GoodDays   int
	// NotSoGoodDays counts every logged day that was not good, including days
	// whose quality answer did not resolve; "days logged" stays the
	// denominator for both percentages.
	NotSoGoodDays int
	// AverageLabel is the option label at the rounded mean of the resolved
	// quality ordinals, "" when no answer resolved.
	AverageLabel string
}

// ComputeStats thresholds the quality scale at its midpoint: with options
// ordered worst to best, an ordinal strictly above the middle counts as a good
// day.
func ComputeStats(rows []survey.Row, quality survey.Question) Stats {
	stats := Stats{DaysLogged: len(rows)}
	mid := (len(quality.Options) - 1) / 2

	sum, resolved := 0, 0
	for _, row := range rows {
		idx := quality.OptionIndex(row.Answer(quality.ID))
		if idx > mid {
			stats.GoodDays++
		} else {
			stats.NotSoGoodDays++
		}
		if idx >= 0 {
			sum += idx
			resolved++
		}
	}

	if resolved > 0 {
		avg := int(math.Round(float64(sum) / float64(resolved)))
		if avg >= 0 && avg < len(quality.Options) {
			stats.AverageLabel = quality.Options[avg]
		}
	}
	return stats
}

// GoodPercent and NotSoGoodPercent format the shares of logged days, e.g. "40%".
func (s Stats) GoodPercent() string      { return percent(s.GoodDays, s.DaysLogged) }
func (s Stats) NotSoGoodPercent() string { return percent(s.NotSoGoodDays, s.DaysLogged) }

func percent(part, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", math.Round(float64(part)/float64(total)*100))
}
