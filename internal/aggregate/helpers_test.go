package aggregate

import (
	"testing"
	"time"

	"github.com/githubocto/good-day-azure/internal/survey"
)

var (
	qualityQ = survey.Question{
		ID:      "workday_quality",
		Title:   "How was your workday?",
		Options: []string{"Terrible", "Bad", "OK", "Good", "Awesome!"},
	}
	productiveQ = survey.Question{
		ID:      "most_productive",
		Title:   "Today, I felt most productive:",
		Options: []string{"In the morning", "Mid-day", "In the afternoon", "Outside work hours"},
	}
	meetingsQ = survey.Question{
		ID:      "meetings",
		Title:   "How many meetings did you have?",
		Options: []string{"None", "1", "2", "3-4", "5 or more"},
	}
	peopleQ = survey.Question{
		ID:      "worked_with_other_people",
		Title:   "I worked with other people",
		Options: []string{"None of the day", "A little of the day", "Some of the day", "Much of the day", "Most or all of the day"},
	}
)

// week of Sunday Jan 7 2024, UTC
func testWindow(t *testing.T) survey.Window {
	t.Helper()
	start := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	return survey.Window{Start: start, End: start.AddDate(0, 0, survey.WindowDays)}
}

func day(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(survey.DateLayout, date, time.UTC)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	return d
}

func row(t *testing.T, date string, answers map[string]string) survey.Row {
	t.Helper()
	return survey.Row{Date: day(t, date), Answers: answers}
}
