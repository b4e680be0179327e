// Package interfaces defines the shared types and contracts for all archscore modules.
// This package has ZERO dependencies on any other pkg/ package.
// All cross-module communication goes through types and interfaces defined here.
package interfaces

import "time"

// RawLine is a single line of the assessment export, captured verbatim.
// Index is 0-based and refers to the position in the original file.
type RawLine struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// ScoreRecord is one row of the per-category score table.
type ScoreRecord struct {
	Category string `json:"category"`
	Rating   string `json:"rating"` // criticality label, verbatim from the export
	Score    int    `json:"score"`  // 0-100
	Line     int    `json:"line"`   // source line index
}

// FindingRecord is one row of the findings table. The Category field embeds
// the design-area grouping key after a dash delimiter.
type FindingRecord struct {
	Category     string `json:"category"`
	Text         string `json:"text"` // recommendation text (Link-Text column)
	Link         string `json:"link"`
	Priority     string `json:"priority"`
	ReportingCat string `json:"reporting_category"`
	ReportingSub string `json:"reporting_subcategory"`
	Weight       int    `json:"weight"`
	Context      string `json:"context,omitempty"`
	Completed    bool   `json:"completed"`
	Note         string `json:"note,omitempty"`
	Line         int    `json:"line"` // source line index
}

// OverallSummary is the workload-level score/rating pair extracted from the
// fixed-offset line near the top of the export.
type OverallSummary struct {
	Score  int    `json:"score"`  // 0-100
	Rating string `json:"rating"` // verbatim from the export
}

// Recommendation is a single ranked action within a design area.
type Recommendation struct {
	Weight   int    `json:"weight"`
	Priority string `json:"priority"`
	Text     string `json:"text"`
	Link     string `json:"link,omitempty"`
}

// ScorecardEntry is the result for one design area: its score/rating from the
// score table and its recommendations ranked by descending weight.
type ScorecardEntry struct {
	Area            string           `json:"area"`
	Score           int              `json:"score"`
	Rating          string           `json:"rating"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Scorecard is the final output of the extraction core: design areas sorted
// ascending by score (worst-performing first) plus the overall summary.
type Scorecard struct {
	Entries       []ScorecardEntry `json:"entries"`
	OverallScore  int              `json:"overall_score"`
	OverallRating string           `json:"overall_rating"`
}

// ActionPlanItem is one recommendation included in the action plan view,
// annotated with the design area it belongs to.
type ActionPlanItem struct {
	Area           string         `json:"area"`
	Score          int            `json:"score"`
	Recommendation Recommendation `json:"recommendation"`
}

// AreaDetail is the per-design-area detail view: the top recommendations for
// one entry, capped to the configured detail size.
type AreaDetail struct {
	Area            string           `json:"area"`
	Score           int              `json:"score"`
	Rating          string           `json:"rating"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Summary is the workload-level view bound into the summary slide.
type Summary struct {
	Score  int    `json:"score"`
	Rating string `json:"rating"`
	Areas  int    `json:"areas"`
}

// Report is the rendered output of an archscore run: the scorecard plus the
// three views the presentation layer binds onto its placeholders.
type Report struct {
	ID         string           `json:"id"`
	Timestamp  time.Time        `json:"timestamp"`
	Source     string           `json:"source"`
	Scorecard  Scorecard        `json:"scorecard"`
	Summary    Summary          `json:"summary"`
	ActionPlan []ActionPlanItem `json:"action_plan"`
	Details    []AreaDetail     `json:"details"`
}
