// Package scorecard correlates findings with per-category scores and produces
// the ranked scorecard consumed by the renderer.
package scorecard

import (
	"errors"
	"strings"

	"github.com/moisesjgomez/archscore/pkg/assessment"
	"github.com/moisesjgomez/archscore/pkg/interfaces"
)

// areaDelimiter separates the workload prefix from the design-area name in
// category fields.
const areaDelimiter = "-"

// DesignAreaKey derives the grouping key from a finding's category field:
// split on the dash delimiter, take the second segment, trim whitespace.
// A category with no delimiter has no derivable grouping key and is an error.
func DesignAreaKey(category string, line int) (string, error) {
	parts := strings.Split(category, areaDelimiter)
	if len(parts) < 2 {
		return "", &assessment.FieldParseError{
			Line:  line,
			Field: "Category",
			Value: category,
			Err:   errors.New("no design-area delimiter"),
		}
	}
	return strings.TrimSpace(parts[1]), nil
}

// scoreKey derives the same grouping key from a score record's category so
// the two tables correlate by exact match rather than substring containment.
// Score categories without the delimiter are already bare area names.
func scoreKey(category string) string {
	parts := strings.Split(category, areaDelimiter)
	if len(parts) < 2 {
		return strings.TrimSpace(category)
	}
	return strings.TrimSpace(parts[1])
}

// designAreaKeys derives the key for every finding and collapses duplicates,
// preserving first-seen order.
func designAreaKeys(findings []interfaces.FindingRecord) ([]string, error) {
	seen := make(map[string]bool, len(findings))
	var keys []string
	for _, f := range findings {
		key, err := DesignAreaKey(f.Category, f.Line)
		if err != nil {
			return nil, err
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys, nil
}
