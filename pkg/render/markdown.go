package render

import (
	"fmt"
	"io"

	"github.com/moisesjgomez/archscore/pkg/interfaces"
)

// MarkdownFormatter writes a scorecard report as Markdown.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a Markdown report formatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format writes the report as Markdown to the given writer.
func (f *MarkdownFormatter) Format(w io.Writer, report *interfaces.Report) error {
	f.writeHeader(w, report)
	f.writeSummaryTable(w, report)
	f.writeActionPlan(w, report)
	f.writeDetails(w, report)
	f.writeFooter(w, report)
	return nil
}

func (f *MarkdownFormatter) writeHeader(w io.Writer, report *interfaces.Report) {
	fmt.Fprintf(w, "# Well-Architected Scorecard %s\n\n", scoreBadge(report.Summary.Score))
}

func (f *MarkdownFormatter) writeSummaryTable(w io.Writer, report *interfaces.Report) {
	s := report.Summary

	fmt.Fprintln(w, "| Metric | Value |")
	fmt.Fprintln(w, "|--------|-------|")
	fmt.Fprintf(w, "| **Overall Score** | %d/100 %s |\n", s.Score, scoreBadge(s.Score))
	fmt.Fprintf(w, "| **Overall Rating** | %s |\n", s.Rating)
	fmt.Fprintf(w, "| **Design Areas** | %d |\n", s.Areas)
	fmt.Fprintln(w)
}

func (f *MarkdownFormatter) writeActionPlan(w io.Writer, report *interfaces.Report) {
	if len(report.ActionPlan) == 0 {
		return
	}

	fmt.Fprintln(w, "## Action Plan")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Design Area | Score | Priority | Weight | Recommendation |")
	fmt.Fprintln(w, "|-------------|-------|----------|--------|----------------|")
	for _, item := range report.ActionPlan {
		fmt.Fprintf(w, "| %s | %d/100 | %s | %d | %s |\n",
			item.Area, item.Score, item.Recommendation.Priority, item.Recommendation.Weight, item.Recommendation.Text)
	}
	fmt.Fprintln(w)
}

func (f *MarkdownFormatter) writeDetails(w io.Writer, report *interfaces.Report) {
	for _, d := range report.Details {
		fmt.Fprintf(w, "## %s — %d/100 [%s] %s\n\n", d.Area, d.Score, d.Rating, scoreBadge(d.Score))

		for _, rec := range d.Recommendations {
			if rec.Link != "" {
				fmt.Fprintf(w, "- **%d** [%s](%s) *(%s)*\n", rec.Weight, rec.Text, rec.Link, rec.Priority)
				continue
			}
			fmt.Fprintf(w, "- **%d** %s *(%s)*\n", rec.Weight, rec.Text, rec.Priority)
		}
		fmt.Fprintln(w)
	}
}

func (f *MarkdownFormatter) writeFooter(w io.Writer, report *interfaces.Report) {
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "*Report ID: %s | Source: %s | Generated: %s*\n",
		report.ID, report.Source, report.Timestamp.Format("2006-01-02 15:04:05"))
}

// scoreBadge returns a text badge for a 0-100 score.
func scoreBadge(score int) string {
	switch {
	case score >= DefaultGreenThreshold:
		return "🟢"
	case score >= DefaultYellowThreshold:
		return "🟡"
	default:
		return "🔴"
	}
}
