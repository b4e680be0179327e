package assessment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/moisesjgomez/archscore/pkg/interfaces"
)

// ExtractOverallSummary parses the fixed-offset line near the top of the
// report into the overall score/rating pair. The rating is the second
// comma-delimited field; the score is the third field with surrounding quote
// characters stripped and the text up to the "/" divider retained.
func ExtractOverallSummary(lines []interfaces.RawLine, layout Layout) (interfaces.OverallSummary, error) {
	if layout.SummaryLine >= len(lines) {
		return interfaces.OverallSummary{}, &MalformedReportError{
			Line:   layout.SummaryLine,
			Reason: fmt.Sprintf("report has %d lines, summary expected at line %d", len(lines), layout.SummaryLine),
		}
	}

	l := lines[layout.SummaryLine]
	fields := strings.Split(l.Text, ",")
	if len(fields) < layout.SummaryMinFields {
		return interfaces.OverallSummary{}, &FieldParseError{
			Line:  l.Index,
			Field: "OverallSummary",
			Value: l.Text,
			Err:   fmt.Errorf("expected at least %d comma-separated fields, got %d", layout.SummaryMinFields, len(fields)),
		}
	}

	rating := strings.TrimSpace(fields[1])

	raw := strings.Trim(strings.TrimSpace(fields[2]), `'"`)
	numeric, _, _ := strings.Cut(raw, "/")
	score, err := strconv.Atoi(strings.TrimSpace(numeric))
	if err != nil {
		return interfaces.OverallSummary{}, &FieldParseError{Line: l.Index, Field: "OverallScore", Value: fields[2], Err: err}
	}

	return interfaces.OverallSummary{Score: score, Rating: rating}, nil
}
