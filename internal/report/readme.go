// Package report renders the narrative summary committed alongside the chart
// images.
package report

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/githubocto/good-day-azure/internal/aggregate"
	"github.com/githubocto/good-day-azure/internal/survey"
)

const readmeTemplate = `# The Good Day Project

## Week of {{.Week}} summary

You logged {{.Stats.DaysLogged}} days this week.{{if .GreatJob}} Great job!{{end}}

☀️ **{{.Stats.GoodDays}}** were Good days ({{.Stats.GoodPercent}}). *These are days you rated as Awesome or Good*

🌧 **{{.Stats.NotSoGoodDays}}** were Not-so-good days ({{.Stats.NotSoGoodPercent}}). *These are days you rated as OK, Bad, or Terrible*
{{if .Stats.AverageLabel}}
On average, your workdays were {{.Stats.AverageLabel}}.
{{end}}
Let's take a look at the data you logged for this week.

## Do you have a typical time of day that feels productive?

First, let's look at which parts of the day you were most and least productive. If there's a clear pattern, could you optimize your schedule to work with your natural productivity?

![Image]({{.FirstImage}})

## How you answered each question

Let's look at how you responded to each question over the week.

Is there any relationship to how you answered the first *How was your workday* question? We colored the background of each day with your response - red for not-so-good days and green for great days.

{{range .RestImages}}![Image]({{.}})
{{end}}`

var tmpl = template.Must(template.New("readme").Parse(readmeTemplate))

type templateData struct {
	Week       string
	Stats      aggregate.Stats
	GreatJob   bool
	FirstImage string
	RestImages []string
}

// Build renders the README. Image filenames arrive in publish order: the
// productive-time chart leads, everything else follows under the per-question
// section.
func Build(win survey.Window, stats aggregate.Stats, images []string) (string, error) {
	if len(images) == 0 {
		return "", fmt.Errorf("no chart images to reference")
	}
	data := templateData{
		Week:       win.Title(),
		Stats:      stats,
		GreatJob:   stats.DaysLogged > 3,
		FirstImage: images[0],
		RestImages: images[1:],
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render summary: %w", err)
	}
	return b.String(), nil
}
