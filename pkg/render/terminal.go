package render

import (
	"fmt"
	"io"

	"github.com/moisesjgomez/archscore/pkg/interfaces"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

// Default score thresholds for terminal coloring. Ratings come verbatim from
// the export; colors are a presentation concern only.
const (
	DefaultGreenThreshold  = 67
	DefaultYellowThreshold = 33
)

// TerminalFormatter writes a color-coded scorecard report to a terminal.
type TerminalFormatter struct {
	greenThreshold  int
	yellowThreshold int
}

// NewTerminalFormatter creates a terminal report formatter with default
// color thresholds.
func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{
		greenThreshold:  DefaultGreenThreshold,
		yellowThreshold: DefaultYellowThreshold,
	}
}

// WithThresholds overrides the score-to-color thresholds.
func (f *TerminalFormatter) WithThresholds(green, yellow int) *TerminalFormatter {
	f.greenThreshold = green
	f.yellowThreshold = yellow
	return f
}

// Format writes the report to the given writer using ANSI colors.
func (f *TerminalFormatter) Format(w io.Writer, report *interfaces.Report) error {
	f.writeHeader(w, report)
	f.writeSummary(w, report)
	f.writeActionPlan(w, report)
	f.writeDetails(w, report)
	f.writeFooter(w, report)
	return nil
}

func (f *TerminalFormatter) writeHeader(w io.Writer, report *interfaces.Report) {
	fmt.Fprintf(w, "\n%s%s══════════════════════════════════════════%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(w, "%s%s  Well-Architected Scorecard%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(w, "%s%s══════════════════════════════════════════%s\n\n", colorBold, colorCyan, colorReset)
}

func (f *TerminalFormatter) writeSummary(w io.Writer, report *interfaces.Report) {
	s := report.Summary
	color := f.scoreColor(s.Score)

	fmt.Fprintf(w, "  %s%sOverall: %d/100 [%s]%s\n", colorBold, color, s.Score, s.Rating, colorReset)
	fmt.Fprintf(w, "  %d design areas assessed\n\n", s.Areas)
}

func (f *TerminalFormatter) writeActionPlan(w io.Writer, report *interfaces.Report) {
	if len(report.ActionPlan) == 0 {
		return
	}

	fmt.Fprintf(w, "  %s%s── Action Plan ──%s\n", colorBold, colorCyan, colorReset)
	for _, item := range report.ActionPlan {
		color := f.scoreColor(item.Score)
		fmt.Fprintf(w, "    %s[%s %d/100]%s %s\n", color, item.Area, item.Score, colorReset, item.Recommendation.Text)
		fmt.Fprintf(w, "      %spriority %s, weight %d%s\n", colorDim, item.Recommendation.Priority, item.Recommendation.Weight, colorReset)
	}
	fmt.Fprintln(w)
}

func (f *TerminalFormatter) writeDetails(w io.Writer, report *interfaces.Report) {
	for _, d := range report.Details {
		color := f.scoreColor(d.Score)
		fmt.Fprintf(w, "  %s%s── %s: %d/100 [%s] ──%s\n", colorBold, color, d.Area, d.Score, d.Rating, colorReset)

		for _, rec := range d.Recommendations {
			fmt.Fprintf(w, "    %s(%d)%s %s\n", color, rec.Weight, colorReset, rec.Text)
			if rec.Link != "" {
				fmt.Fprintf(w, "      %s%s%s\n", colorDim, rec.Link, colorReset)
			}
		}
		fmt.Fprintln(w)
	}
}

func (f *TerminalFormatter) writeFooter(w io.Writer, report *interfaces.Report) {
	fmt.Fprintf(w, "  %s──────────────────────────────────────────%s\n", colorDim, colorReset)
	fmt.Fprintf(w, "  %sSource: %s | Report: %s%s\n", colorDim, report.Source, report.ID, colorReset)
	fmt.Fprintf(w, "  %sGenerated: %s%s\n\n", colorDim, report.Timestamp.Format("2006-01-02 15:04:05"), colorReset)
}

// scoreColor maps a 0-100 score to its ANSI color.
func (f *TerminalFormatter) scoreColor(score int) string {
	switch {
	case score >= f.greenThreshold:
		return colorGreen
	case score >= f.yellowThreshold:
		return colorYellow
	default:
		return colorRed
	}
}
