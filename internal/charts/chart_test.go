package charts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/githubocto/good-day-azure/internal/aggregate"
	"github.com/githubocto/good-day-azure/internal/survey"
)

var (
	chartQuality = survey.Question{
		ID:      "workday_quality",
		Title:   "How was your workday?",
		Options: []string{"Terrible", "Bad", "OK", "Good", "Awesome!"},
	}
	chartProductive = survey.Question{
		ID:      "most_productive",
		Title:   "Today, I felt most productive:",
		Options: []string{"In the morning", "Mid-day", "In the afternoon"},
	}
	chartAmount = survey.Question{
		ID:      "worked_with_other_people",
		Title:   "I worked with other people",
		Options: []string{"None of the day", "A little of the day", "Some of the day", "Much of the day", "Most or all of the day"},
	}
)

func chartWindow() survey.Window {
	start := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	return survey.Window{Start: start, End: start.AddDate(0, 0, survey.WindowDays)}
}

func TestNewTimelineAxesMirrorTheScales(t *testing.T) {
	win := chartWindow()
	series := aggregate.Series{
		Question: chartQuality,
		Points:   []aggregate.Point{{Day: 1, Option: 3}, {Day: 3, Option: 0}},
	}

	content := string(NewTimeline(win, series, nil, chartQuality).RenderContent())

	// y ticks are the option labels themselves, x ticks the window's weekdays
	for _, label := range chartQuality.Options {
		assert.Contains(t, content, label)
	}
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"} {
		assert.Contains(t, content, day)
	}
	assert.Contains(t, content, "week of January 7, 2024")
	assert.Contains(t, content, "rgba(99, 102, 241, 1)")
}

func TestNewTimelineGapsBreakTheLine(t *testing.T) {
	win := chartWindow()
	series := aggregate.Series{
		Question: chartQuality,
		Points:   []aggregate.Point{{Day: 1, Option: 3}},
	}

	content := string(NewTimeline(win, series, nil, chartQuality).RenderContent())
	// four of the five weekdays have no answer and hold the echarts gap marker
	assert.Contains(t, content, `"-"`)
}

func TestNewTimelineBandsTintAnsweredDays(t *testing.T) {
	win := chartWindow()
	series := aggregate.Series{Question: chartProductive}
	bands := []aggregate.Band{
		{Day: 1, Quality: 0},
		{Day: 2, Quality: 4},
		{Day: 0, Quality: 2}, // Sunday, off the chart
	}

	content := string(NewTimeline(win, series, bands, chartQuality).RenderContent())
	assert.Contains(t, content, "rgba(248,113,113,0.2)")
	assert.Contains(t, content, "rgba(12,185,129,0.2)")
}

func TestNewTimeOfDaySeriesSitOnOppositeSides(t *testing.T) {
	win := chartWindow()
	most := []aggregate.PackedPoint{
		{Day: 1, Bucket: 1, Column: 0},
		{Day: 2, Bucket: 1, Column: 1},
	}
	least := []aggregate.PackedPoint{
		{Day: 1, Bucket: 0, Column: 0},
	}

	content := string(NewTimeOfDay(win, chartProductive, most, least).RenderContent())

	assert.Contains(t, content, "Most productive")
	assert.Contains(t, content, "Least productive")
	// most-productive columns pack rightward, least-productive leftward
	assert.Contains(t, content, "[1,1]")
	assert.Contains(t, content, "[2,1]")
	assert.Contains(t, content, "[-1,0]")
	assert.Contains(t, content, "rgb(99, 102, 241)")
	assert.Contains(t, content, "rgb(245, 158, 12)")
}

func TestNewAmountOfDayEncodesCells(t *testing.T) {
	win := chartWindow()
	cells := []aggregate.Cell{
		{Weekday: 1, Band: 0, Ordinal: 4, Steps: 5},
		{Weekday: 5, Band: 0, Ordinal: 0, Steps: 5},
	}

	content := string(NewAmountOfDay(win, []survey.Question{chartAmount}, cells).RenderContent())

	assert.Contains(t, content, "I worked with other people")
	// Monday is column 0, Friday column 4
	assert.Contains(t, content, "[0,0,4]")
	assert.Contains(t, content, "[4,0,0]")
	// the ramp runs white to indigo
	assert.Contains(t, content, "#ffffff")
	assert.Contains(t, content, "#6366f1")
}
