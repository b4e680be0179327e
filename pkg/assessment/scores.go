package assessment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/moisesjgomez/archscore/pkg/interfaces"
)

// scoreSuffix is the marker trailing every score value in the score table.
const scoreSuffix = "/100"

// ParseScoreTable parses the located score-table range into flat score
// records. Rows are positional comma-separated values: category, criticality
// label, score. The score value carries surrounding quote characters and a
// trailing "/100" marker, both stripped before conversion.
func ParseScoreTable(lines []interfaces.RawLine, s Sections) ([]interfaces.ScoreRecord, error) {
	var records []interfaces.ScoreRecord

	for _, l := range lines[s.ScoreStart : s.ScoreEnd+1] {
		if strings.TrimSpace(l.Text) == "" {
			continue
		}

		fields := strings.Split(l.Text, ",")
		if len(fields) < 3 {
			return nil, &FieldParseError{
				Line:  l.Index,
				Field: "Score",
				Value: l.Text,
				Err:   fmt.Errorf("expected 3 comma-separated fields, got %d", len(fields)),
			}
		}

		score, err := parseScoreValue(fields[2])
		if err != nil {
			return nil, &FieldParseError{Line: l.Index, Field: "Score", Value: fields[2], Err: err}
		}

		records = append(records, interfaces.ScoreRecord{
			Category: strings.TrimSpace(fields[0]),
			Rating:   strings.TrimSpace(fields[1]),
			Score:    score,
			Line:     l.Index,
		})
	}

	return records, nil
}

// parseScoreValue converts a raw score field like "'72/100'" to its integer
// value.
func parseScoreValue(raw string) (int, error) {
	v := strings.TrimSpace(raw)
	v = strings.Trim(v, `'"`)
	v = strings.TrimSuffix(v, scoreSuffix)
	return strconv.Atoi(strings.TrimSpace(v))
}
