package assessment

import (
	"fmt"
	"strings"

	"github.com/moisesjgomez/archscore/pkg/interfaces"
)

// Sections holds the located line ranges of the two embedded tables.
// All indices are 0-based and inclusive.
type Sections struct {
	ScoreStart     int // first data row of the score table
	ScoreEnd       int // last data row of the score table
	FindingsHeader int // header row of the findings table
	FindingsEnd    int // last data row of the findings table
}

// Locate scans the line sequence for the layout's sentinels and computes the
// table boundaries. It returns a MalformedReportError when a sentinel is
// absent or a computed range is inconsistent.
func Locate(lines []interfaces.RawLine, layout Layout) (Sections, error) {
	var s Sections

	header := indexOfExact(lines, layout.FindingsHeader)
	if header < 0 {
		return s, &MalformedReportError{Line: -1,
			Reason: fmt.Sprintf("findings header %q not found", layout.FindingsHeader)}
	}

	endSentinel := indexOfSubstring(lines, layout.FindingsEndSentinel)
	if endSentinel < 0 {
		return s, &MalformedReportError{Line: -1,
			Reason: fmt.Sprintf("findings end sentinel %q not found", layout.FindingsEndSentinel)}
	}

	scoreSentinel := indexOfSubstring(lines, layout.ScoreSentinel)
	if scoreSentinel < 0 {
		return s, &MalformedReportError{Line: -1,
			Reason: fmt.Sprintf("score table sentinel %q not found", layout.ScoreSentinel)}
	}

	s = Sections{
		ScoreStart:     scoreSentinel + 1,
		ScoreEnd:       header - layout.ScoreTableGap,
		FindingsHeader: header,
		FindingsEnd:    endSentinel - 1,
	}

	if s.ScoreStart > s.ScoreEnd {
		return Sections{}, &MalformedReportError{Line: s.ScoreStart,
			Reason: fmt.Sprintf("score table range inverted (%d > %d)", s.ScoreStart, s.ScoreEnd)}
	}
	if s.FindingsHeader >= s.FindingsEnd {
		return Sections{}, &MalformedReportError{Line: s.FindingsHeader,
			Reason: fmt.Sprintf("findings table range inverted (header %d, end %d)", s.FindingsHeader, s.FindingsEnd)}
	}
	if s.FindingsEnd >= len(lines) {
		return Sections{}, &MalformedReportError{Line: s.FindingsEnd,
			Reason: "findings table end past end of file"}
	}

	return s, nil
}

// indexOfExact returns the index of the first line whose trimmed text equals
// want, or -1.
func indexOfExact(lines []interfaces.RawLine, want string) int {
	for _, l := range lines {
		if strings.TrimSpace(l.Text) == want {
			return l.Index
		}
	}
	return -1
}

// indexOfSubstring returns the index of the first line containing want, or -1.
func indexOfSubstring(lines []interfaces.RawLine, want string) int {
	for _, l := range lines {
		if strings.Contains(l.Text, want) {
			return l.Index
		}
	}
	return -1
}
