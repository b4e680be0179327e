// Package assessment parses the semi-structured assessment export into flat
// records. It locates the embedded tables by content-matching sentinel lines,
// then parses each located range; nothing here computes scores or rankings.
package assessment

// Layout describes one version of the export format. Every sentinel string
// and fixed offset lives here so a format change requires a single edit.
type Layout struct {
	// Version identifies the export layout this descriptor matches.
	Version string

	// SummaryLine is the 0-based index of the overall score/rating line.
	SummaryLine int

	// SummaryMinFields is the minimum comma-field count of the summary line.
	SummaryMinFields int

	// ScoreSentinel introduces the score table; the table starts on the
	// line immediately after the first line containing this substring.
	ScoreSentinel string

	// FindingsHeader is the exact header row of the findings table.
	FindingsHeader string

	// FindingsEndSentinel marks the legend/footer after the findings table;
	// the table ends on the line before its first occurrence.
	FindingsEndSentinel string

	// ScoreTableGap is the number of legend/header lines separating the last
	// score row from the findings header, plus one. The score table ends
	// ScoreTableGap lines before the findings header.
	ScoreTableGap int
}

// DefaultLayout returns the descriptor for the known export version.
func DefaultLayout() Layout {
	return Layout{
		Version:             "2023-04",
		SummaryLine:         3,
		SummaryMinFields:    3,
		ScoreSentinel:       "Your overall results",
		FindingsHeader:      "Category,Link-Text,Link,Priority,ReportingCategory,ReportingSubcategory,Weight,Context,CompleteY/N,Note",
		FindingsEndSentinel: "--,,",
		ScoreTableGap:       7,
	}
}
