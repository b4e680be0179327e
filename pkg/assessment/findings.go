package assessment

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/moisesjgomez/archscore/pkg/interfaces"
)

// Findings-table column names, as they appear in the header row.
const (
	colCategory     = "Category"
	colLinkText     = "Link-Text"
	colLink         = "Link"
	colPriority     = "Priority"
	colReportingCat = "ReportingCategory"
	colReportingSub = "ReportingSubcategory"
	colWeight       = "Weight"
	colContext      = "Context"
	colComplete     = "CompleteY/N"
	colNote         = "Note"
)

// ParseFindingsTable parses the located findings-table range into flat finding
// records. The first line of the range is the header row; it defines the named
// columns for the remaining lines. The Weight field is coerced to an integer;
// a non-numeric weight is a FieldParseError.
func ParseFindingsTable(lines []interfaces.RawLine, s Sections) ([]interfaces.FindingRecord, error) {
	header, err := parseRow(lines[s.FindingsHeader])
	if err != nil {
		return nil, err
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colCategory, colLinkText, colPriority, colWeight} {
		if _, ok := cols[required]; !ok {
			return nil, &MalformedReportError{
				Line:   s.FindingsHeader,
				Reason: fmt.Sprintf("findings header missing column %q", required),
			}
		}
	}

	var records []interfaces.FindingRecord
	for _, l := range lines[s.FindingsHeader+1 : s.FindingsEnd+1] {
		if strings.TrimSpace(l.Text) == "" {
			continue
		}

		row, err := parseRow(l)
		if err != nil {
			return nil, err
		}

		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		rawWeight := field(colWeight)
		weight, err := strconv.Atoi(rawWeight)
		if err != nil {
			return nil, &FieldParseError{Line: l.Index, Field: colWeight, Value: rawWeight, Err: err}
		}

		records = append(records, interfaces.FindingRecord{
			Category:     field(colCategory),
			Text:         field(colLinkText),
			Link:         field(colLink),
			Priority:     field(colPriority),
			ReportingCat: field(colReportingCat),
			ReportingSub: field(colReportingSub),
			Weight:       weight,
			Context:      field(colContext),
			Completed:    parseCompleted(field(colComplete)),
			Note:         field(colNote),
			Line:         l.Index,
		})
	}

	return records, nil
}

// parseRow splits one findings-table line into its comma-separated fields,
// honoring RFC 4180 quoting for recommendation text containing commas.
func parseRow(l interfaces.RawLine) ([]string, error) {
	r := csv.NewReader(strings.NewReader(l.Text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	fields, err := r.Read()
	if err != nil {
		return nil, &FieldParseError{Line: l.Index, Field: "row", Value: l.Text, Err: err}
	}
	return fields, nil
}

// parseCompleted coerces the CompleteY/N flag to a bool.
func parseCompleted(v string) bool {
	switch strings.ToUpper(v) {
	case "Y", "YES", "TRUE":
		return true
	default:
		return false
	}
}
