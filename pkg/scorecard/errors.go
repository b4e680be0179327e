package scorecard

import "fmt"

// CorrelationError indicates a design-area key matched zero or multiple score
// records. Either case would silently produce an empty or wrong rating, so it
// is a hard error.
type CorrelationError struct {
	Area    string
	Matches int
}

func (e *CorrelationError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("scorecard: design area %q matches no score record", e.Area)
	}
	return fmt.Sprintf("scorecard: design area %q matches %d score records, want exactly 1", e.Area, e.Matches)
}
