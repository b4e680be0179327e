package scorecard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moisesjgomez/archscore/pkg/assessment"
	"github.com/moisesjgomez/archscore/pkg/interfaces"
)

func finding(area, text string, weight int) interfaces.FindingRecord {
	return interfaces.FindingRecord{
		Category: "Contoso - " + area,
		Text:     text,
		Priority: "Medium",
		Weight:   weight,
	}
}

func score(area string, value int, rating string) interfaces.ScoreRecord {
	return interfaces.ScoreRecord{
		Category: "Contoso - " + area,
		Rating:   rating,
		Score:    value,
	}
}

var overall = interfaces.OverallSummary{Score: 68, Rating: "Moderate"}

func TestDesignAreaKey(t *testing.T) {
	key, err := DesignAreaKey("Contoso Workload -  Cost Optimization ", 16)
	require.NoError(t, err)
	assert.Equal(t, "Cost Optimization", key)
}

func TestDesignAreaKey_NoDelimiter(t *testing.T) {
	_, err := DesignAreaKey("Cost Optimization", 16)

	var parseErr *assessment.FieldParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 16, parseErr.Line)
	assert.Equal(t, "Category", parseErr.Field)
}

func TestBuild_EntriesSortedAscendingByScore(t *testing.T) {
	findings := []interfaces.FindingRecord{
		finding("A", "a1", 10),
		finding("B", "b1", 10),
		finding("C", "c1", 10),
	}
	scores := []interfaces.ScoreRecord{
		score("A", 40, "Critical"),
		score("B", 90, "Excellent"),
		score("C", 65, "Moderate"),
	}

	card, err := Build(findings, scores, overall)
	require.NoError(t, err)

	require.Len(t, card.Entries, 3)
	assert.Equal(t, "A", card.Entries[0].Area)
	assert.Equal(t, "C", card.Entries[1].Area)
	assert.Equal(t, "B", card.Entries[2].Area)
	assert.Equal(t, 68, card.OverallScore)
	assert.Equal(t, "Moderate", card.OverallRating)
}

func TestBuild_ScoreTiesKeepFirstSeenOrder(t *testing.T) {
	findings := []interfaces.FindingRecord{
		finding("Second", "s1", 1),
		finding("First", "f1", 1),
	}
	scores := []interfaces.ScoreRecord{
		score("First", 50, "Moderate"),
		score("Second", 50, "Moderate"),
	}

	card, err := Build(findings, scores, overall)
	require.NoError(t, err)

	// "Second" appears first in the findings table, so it ranks first on a tie.
	assert.Equal(t, "Second", card.Entries[0].Area)
	assert.Equal(t, "First", card.Entries[1].Area)
}

func TestBuild_RecommendationsDescendingByWeightStable(t *testing.T) {
	findings := []interfaces.FindingRecord{
		finding("Networking", "light", 10),
		finding("Networking", "heavy", 80),
		finding("Networking", "mid-a", 40),
		finding("Networking", "mid-b", 40),
		finding("Networking", "mid-c", 40),
	}
	scores := []interfaces.ScoreRecord{score("Networking", 70, "Good")}

	card, err := Build(findings, scores, overall)
	require.NoError(t, err)

	recs := card.Entries[0].Recommendations
	require.Len(t, recs, 5)
	assert.Equal(t, "heavy", recs[0].Text)
	// Equal weights keep their findings-table order.
	assert.Equal(t, "mid-a", recs[1].Text)
	assert.Equal(t, "mid-b", recs[2].Text)
	assert.Equal(t, "mid-c", recs[3].Text)
	assert.Equal(t, "light", recs[4].Text)

	for i := 1; i < len(recs); i++ {
		assert.LessOrEqual(t, recs[i].Weight, recs[i-1].Weight)
	}
}

func TestBuild_DuplicateAreasCollapse(t *testing.T) {
	findings := []interfaces.FindingRecord{
		finding("Reliability", "r1", 5),
		finding("Cost Optimization", "c1", 9),
		finding("Reliability", "r2", 7),
	}
	scores := []interfaces.ScoreRecord{
		score("Reliability", 30, "Critical"),
		score("Cost Optimization", 55, "Moderate"),
	}

	card, err := Build(findings, scores, overall)
	require.NoError(t, err)

	require.Len(t, card.Entries, 2)
	assert.Equal(t, "Reliability", card.Entries[0].Area)
	require.Len(t, card.Entries[0].Recommendations, 2)
	assert.Equal(t, "r2", card.Entries[0].Recommendations[0].Text)
}

func TestBuild_EntryCarriesScoreAndRatingVerbatim(t *testing.T) {
	findings := []interfaces.FindingRecord{finding("Security", "s1", 3)}
	scores := []interfaces.ScoreRecord{score("Security", 12, "Needs Attention")}

	card, err := Build(findings, scores, overall)
	require.NoError(t, err)

	assert.Equal(t, 12, card.Entries[0].Score)
	assert.Equal(t, "Needs Attention", card.Entries[0].Rating)
}

func TestBuild_ZeroScoreMatches(t *testing.T) {
	findings := []interfaces.FindingRecord{finding("Networking", "n1", 5)}
	scores := []interfaces.ScoreRecord{score("Reliability", 30, "Critical")}

	_, err := Build(findings, scores, overall)

	var corrErr *CorrelationError
	require.ErrorAs(t, err, &corrErr)
	assert.Equal(t, "Networking", corrErr.Area)
	assert.Equal(t, 0, corrErr.Matches)
}

func TestBuild_MultipleScoreMatches(t *testing.T) {
	findings := []interfaces.FindingRecord{finding("Networking", "n1", 5)}
	scores := []interfaces.ScoreRecord{
		score("Networking", 30, "Critical"),
		score("Networking", 80, "Good"),
	}

	_, err := Build(findings, scores, overall)

	var corrErr *CorrelationError
	require.ErrorAs(t, err, &corrErr)
	assert.Equal(t, 2, corrErr.Matches)
}

func TestBuild_BareScoreCategoryCorrelates(t *testing.T) {
	// Some layouts list the score category as the bare area name, without
	// the workload prefix. Both shapes derive the same key.
	findings := []interfaces.FindingRecord{finding("Cost Optimization", "c1", 9)}
	scores := []interfaces.ScoreRecord{{Category: "Cost Optimization", Rating: "Moderate", Score: 55}}

	card, err := Build(findings, scores, overall)
	require.NoError(t, err)
	assert.Equal(t, 55, card.Entries[0].Score)
}

func TestBuild_Deterministic(t *testing.T) {
	findings := []interfaces.FindingRecord{
		finding("A", "a1", 10),
		finding("B", "b1", 10),
		finding("A", "a2", 10),
	}
	scores := []interfaces.ScoreRecord{
		score("A", 40, "Critical"),
		score("B", 40, "Critical"),
	}

	first, err := Build(findings, scores, overall)
	require.NoError(t, err)
	second, err := Build(findings, scores, overall)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
