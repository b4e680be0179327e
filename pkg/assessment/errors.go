package assessment

import "fmt"

// MalformedReportError indicates a required sentinel or header line is missing,
// or the computed section boundaries are inconsistent. Processing cannot
// continue without valid boundaries.
type MalformedReportError struct {
	Line   int // offending or nearest line index; -1 when no line applies
	Reason string
}

func (e *MalformedReportError) Error() string {
	if e.Line < 0 {
		return fmt.Sprintf("assessment: malformed report: %s", e.Reason)
	}
	return fmt.Sprintf("assessment: malformed report at line %d: %s", e.Line, e.Reason)
}

// FieldParseError indicates a field expected to be numeric failed to parse,
// or a fixed-position line has fewer fields than expected. It carries enough
// context to diagnose the malformed report.
type FieldParseError struct {
	Line  int // source line index
	Field string
	Value string // raw value as read from the export
	Err   error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("assessment: line %d: field %s: cannot parse %q: %v",
		e.Line, e.Field, e.Value, e.Err)
}

func (e *FieldParseError) Unwrap() error { return e.Err }
