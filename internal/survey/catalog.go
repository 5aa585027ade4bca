package survey

import (
	"fmt"
	"os"

	"github.com/kyokomi/emoji/v2"
	"gopkg.in/yaml.v3"
)

// Well-known question IDs the charts and the narrative depend on.
const (
	QualityID         = "workday_quality"
	MostProductiveID  = "most_productive"
	LeastProductiveID = "least_productive"
)

// Question is one survey question with its fixed, ordered option list.
// Option order is the ordinal scale used for charting and is never re-sorted.
type Question struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	Options     []string `yaml:"options"`
}

// OptionIndex resolves an answer label to its position in the option list.
// Matching is exact (labels carry expanded emoji); -1 means no match, which is
// an expected case for blank or free-text answers and must not become index 0.
func (q Question) OptionIndex(label string) int {
	for i, opt := range q.Options {
		if opt == label {
			return i
		}
	}
	return -1
}

// Catalog holds all questions, immutable after load.
type Catalog struct {
	Questions []Question `yaml:"questions"`

	byID map[string]Question
}

// LoadCatalog reads and parses the questions YAML file. Titles and option
// labels may contain :shortcode: emoji tokens; they are expanded to unicode
// here so that all later lookups run against the expanded labels.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read questions file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog builds a catalog from raw YAML.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions YAML: %w", err)
	}
	if len(c.Questions) == 0 {
		return nil, fmt.Errorf("questions file contains no questions")
	}

	c.byID = make(map[string]Question, len(c.Questions))
	for i, q := range c.Questions {
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("question %q has no options", q.ID)
		}
		q.Title = emoji.Sprint(q.Title)
		for j, opt := range q.Options {
			q.Options[j] = emoji.Sprint(opt)
		}
		c.Questions[i] = q
		c.byID[q.ID] = q
	}
	return &c, nil
}

// Question looks up a question by ID. A miss for a configured ID is a
// programming error at the call site; callers log it and skip the chart.
func (c *Catalog) Question(id string) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// AmountQuestions returns the "how much of the day" questions, in catalog
// order. They share the same five-step amount scale and make up the row bands
// of the amount-of-day grid.
func (c *Catalog) AmountQuestions() []Question {
	var out []Question
	for _, q := range c.Questions {
		if len(q.Options) > 0 && q.Options[0] == "None of the day" {
			out = append(out, q)
		}
	}
	return out
}

// Header is the CSV column order: date first, then question IDs in catalog
// order. The ingestion path and the normalizer both rely on it.
func (c *Catalog) Header() []string {
	cols := make([]string, 0, len(c.Questions)+1)
	cols = append(cols, "date")
	for _, q := range c.Questions {
		cols = append(cols, q.ID)
	}
	return cols
}
