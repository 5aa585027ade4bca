package survey

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"
)

// DateLayout is how dates are stored in the CSV.
const DateLayout = "2006-01-02"

// Row is one calendar day's submission: a date anchored to local midnight and
// the verbatim answer text per question ID. No catalog validation happens
// here; unknown or blank answers are tolerated until aggregation.
type Row struct {
	Date    time.Time
	Answers map[string]string
}

// Answer returns the recorded answer for a question ID, or "" when the
// question was left blank or the column is absent.
func (r Row) Answer(questionID string) string {
	return r.Answers[questionID]
}

// ParseCSV decodes the stored survey file. The first record is the header
// (date column plus question IDs). Dates parse at local midnight in loc so a
// stored "2024-01-15" stays a Monday in the user's zone. Records with a
// missing or unparseable date are dropped.
func ParseCSV(data []byte, loc *time.Location) ([]Row, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // header evolved over time, tolerate ragged rows

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse survey CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	dateCol := -1
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), "date") {
			dateCol = i
			break
		}
	}
	if dateCol == -1 {
		return nil, fmt.Errorf("survey CSV has no date column")
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if dateCol >= len(rec) {
			continue
		}
		date, err := time.ParseInLocation(DateLayout, strings.TrimSpace(rec[dateCol]), loc)
		if err != nil {
			continue
		}
		answers := make(map[string]string, len(header)-1)
		for i, col := range header {
			if i == dateCol || i >= len(rec) {
				continue
			}
			answers[strings.TrimSpace(col)] = rec[i]
		}
		rows = append(rows, Row{Date: date, Answers: answers})
	}
	return rows, nil
}

// CSVHeader renders the header line for a newly created survey file.
func CSVHeader(c *Catalog) string {
	return writeCSVLine(c.Header())
}

// CSVLine renders one submission as a CSV line, columns in catalog order.
// Unanswered questions become empty fields.
func CSVLine(c *Catalog, date time.Time, answers map[string]string) string {
	fields := make([]string, 0, len(c.Questions)+1)
	fields = append(fields, date.Format(DateLayout))
	for _, q := range c.Questions {
		fields = append(fields, answers[q.ID])
	}
	return writeCSVLine(fields)
}

func writeCSVLine(fields []string) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write(fields)
	w.Flush()
	return strings.TrimRight(buf.String(), "\n")
}
