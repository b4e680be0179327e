// Package render builds the views the presentation layer binds onto its
// placeholders and formats them for terminal, markdown, and JSON output.
package render

import (
	"time"

	"github.com/google/uuid"
	"github.com/moisesjgomez/archscore/pkg/interfaces"
)

// Default view caps for the known slide deck template.
const (
	DefaultActionPlanAreas = 3 // entries bound into the action plan view
	DefaultActionPlanRecs  = 2 // recommendations per action plan entry
	DefaultDetailRecs      = 7 // recommendations per design-area detail view
)

// Caps bound the number of entries and recommendations each view carries.
type Caps struct {
	ActionPlanAreas int
	ActionPlanRecs  int
	DetailRecs      int
}

// DefaultCaps returns the caps matching the known template.
func DefaultCaps() Caps {
	return Caps{
		ActionPlanAreas: DefaultActionPlanAreas,
		ActionPlanRecs:  DefaultActionPlanRecs,
		DetailRecs:      DefaultDetailRecs,
	}
}

// BuildReport wraps a scorecard with run metadata and the three views. The
// scorecard's entries and recommendations are already ranked; views only take
// prefixes, never reorder.
func BuildReport(card *interfaces.Scorecard, source string, caps Caps) *interfaces.Report {
	return &interfaces.Report{
		ID:         uuid.NewString(),
		Timestamp:  time.Now(),
		Source:     source,
		Scorecard:  *card,
		Summary:    buildSummary(card),
		ActionPlan: buildActionPlan(card, caps),
		Details:    buildDetails(card, caps),
	}
}

func buildSummary(card *interfaces.Scorecard) interfaces.Summary {
	return interfaces.Summary{
		Score:  card.OverallScore,
		Rating: card.OverallRating,
		Areas:  len(card.Entries),
	}
}

// buildActionPlan picks the worst-scoring areas and their heaviest
// recommendations.
func buildActionPlan(card *interfaces.Scorecard, caps Caps) []interfaces.ActionPlanItem {
	var items []interfaces.ActionPlanItem
	for _, entry := range capEntries(card.Entries, caps.ActionPlanAreas) {
		for _, rec := range capRecommendations(entry.Recommendations, caps.ActionPlanRecs) {
			items = append(items, interfaces.ActionPlanItem{
				Area:           entry.Area,
				Score:          entry.Score,
				Recommendation: rec,
			})
		}
	}
	return items
}

func buildDetails(card *interfaces.Scorecard, caps Caps) []interfaces.AreaDetail {
	details := make([]interfaces.AreaDetail, 0, len(card.Entries))
	for _, entry := range card.Entries {
		details = append(details, interfaces.AreaDetail{
			Area:            entry.Area,
			Score:           entry.Score,
			Rating:          entry.Rating,
			Recommendations: capRecommendations(entry.Recommendations, caps.DetailRecs),
		})
	}
	return details
}

func capEntries(entries []interfaces.ScorecardEntry, n int) []interfaces.ScorecardEntry {
	if n < 0 {
		n = 0
	}
	if n < len(entries) {
		return entries[:n]
	}
	return entries
}

func capRecommendations(recs []interfaces.Recommendation, n int) []interfaces.Recommendation {
	if n < 0 {
		n = 0
	}
	if n < len(recs) {
		return recs[:n]
	}
	return recs
}
