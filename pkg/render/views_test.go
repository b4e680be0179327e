package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moisesjgomez/archscore/pkg/interfaces"
)

// rankedEntry builds an entry whose recommendations are already sorted
// descending by weight, as the scorecard builder guarantees.
func rankedEntry(area string, score int, weights ...int) interfaces.ScorecardEntry {
	recs := make([]interfaces.Recommendation, 0, len(weights))
	for _, w := range weights {
		recs = append(recs, interfaces.Recommendation{Weight: w, Priority: "High", Text: "rec"})
	}
	return interfaces.ScorecardEntry{Area: area, Score: score, Rating: "Moderate", Recommendations: recs}
}

func testCard() *interfaces.Scorecard {
	return &interfaces.Scorecard{
		Entries: []interfaces.ScorecardEntry{
			rankedEntry("Reliability", 30, 90, 85, 70),
			rankedEntry("Cost Optimization", 55, 78, 65),
			rankedEntry("Security", 60, 50),
			rankedEntry("Networking", 90, 20),
		},
		OverallScore:  68,
		OverallRating: "Moderate",
	}
}

func TestBuildReport_Summary(t *testing.T) {
	report := BuildReport(testCard(), "review.csv", DefaultCaps())

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "review.csv", report.Source)
	assert.Equal(t, 68, report.Summary.Score)
	assert.Equal(t, "Moderate", report.Summary.Rating)
	assert.Equal(t, 4, report.Summary.Areas)
}

func TestBuildReport_ActionPlanTopThreeAreasTopTwoRecs(t *testing.T) {
	report := BuildReport(testCard(), "review.csv", DefaultCaps())

	// 3 worst areas; Reliability and Cost Optimization contribute 2 recs,
	// Security only has 1.
	require.Len(t, report.ActionPlan, 5)

	assert.Equal(t, "Reliability", report.ActionPlan[0].Area)
	assert.Equal(t, 90, report.ActionPlan[0].Recommendation.Weight)
	assert.Equal(t, 85, report.ActionPlan[1].Recommendation.Weight)
	assert.Equal(t, "Cost Optimization", report.ActionPlan[2].Area)
	assert.Equal(t, "Security", report.ActionPlan[4].Area)

	for _, item := range report.ActionPlan {
		assert.NotEqual(t, "Networking", item.Area, "fourth-ranked area must not reach the action plan")
	}
}

func TestBuildReport_DetailPicksTopSevenByWeight(t *testing.T) {
	card := &interfaces.Scorecard{
		Entries: []interfaces.ScorecardEntry{
			rankedEntry("Networking", 40, 50, 40, 30, 20, 15, 10, 5, 1),
		},
		OverallScore:  68,
		OverallRating: "Moderate",
	}

	report := BuildReport(card, "review.csv", DefaultCaps())

	require.Len(t, report.Details, 1)
	recs := report.Details[0].Recommendations
	require.Len(t, recs, 7)

	// The seven highest weights, descending; the lowest (1) is dropped.
	wantWeights := []int{50, 40, 30, 20, 15, 10, 5}
	for i, w := range wantWeights {
		assert.Equal(t, w, recs[i].Weight)
	}
}

func TestBuildReport_DetailCoversEveryArea(t *testing.T) {
	report := BuildReport(testCard(), "review.csv", DefaultCaps())

	require.Len(t, report.Details, 4)
	assert.Equal(t, "Reliability", report.Details[0].Area)
	assert.Equal(t, "Networking", report.Details[3].Area)
	assert.Equal(t, "Moderate", report.Details[0].Rating)
}

func TestBuildReport_CapsLargerThanInput(t *testing.T) {
	caps := Caps{ActionPlanAreas: 99, ActionPlanRecs: 99, DetailRecs: 99}
	report := BuildReport(testCard(), "review.csv", caps)

	require.Len(t, report.ActionPlan, 7) // all recommendations of all areas
	require.Len(t, report.Details[0].Recommendations, 3)
}

func TestBuildReport_NegativeCapsYieldEmptyViews(t *testing.T) {
	caps := Caps{ActionPlanAreas: -1, ActionPlanRecs: -2, DetailRecs: -1}
	report := BuildReport(testCard(), "review.csv", caps)

	assert.Empty(t, report.ActionPlan)
	require.Len(t, report.Details, 4)
	for _, d := range report.Details {
		assert.Empty(t, d.Recommendations)
	}
}
