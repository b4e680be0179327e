package scorecard

import (
	"sort"

	"github.com/moisesjgomez/archscore/pkg/interfaces"
)

// Build correlates findings with score records and produces the final ranked
// scorecard. It is a pure fold over its inputs: design-area keys are derived
// up front (deduplicated, first-seen order), each key is mapped to its entry
// independently, then the entries are sorted.
//
// Ordering guarantees:
//   - recommendations within an entry are sorted by descending weight;
//     equal weights keep their findings-table order (stable sort)
//   - entries are sorted by ascending score, worst-performing areas first;
//     equal scores keep first-seen order
func Build(findings []interfaces.FindingRecord, scores []interfaces.ScoreRecord, overall interfaces.OverallSummary) (*interfaces.Scorecard, error) {
	keys, err := designAreaKeys(findings)
	if err != nil {
		return nil, err
	}

	entries := make([]interfaces.ScorecardEntry, 0, len(keys))
	for _, key := range keys {
		entry, err := buildEntry(key, findings, scores)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score < entries[j].Score
	})

	return &interfaces.Scorecard{
		Entries:       entries,
		OverallScore:  overall.Score,
		OverallRating: overall.Rating,
	}, nil
}

// buildEntry produces the scorecard entry for one design-area key.
func buildEntry(key string, findings []interfaces.FindingRecord, scores []interfaces.ScoreRecord) (interfaces.ScorecardEntry, error) {
	score, err := correlateScore(key, scores)
	if err != nil {
		return interfaces.ScorecardEntry{}, err
	}

	var recs []interfaces.Recommendation
	for _, f := range findings {
		k, err := DesignAreaKey(f.Category, f.Line)
		if err != nil {
			return interfaces.ScorecardEntry{}, err
		}
		if k != key {
			continue
		}
		recs = append(recs, interfaces.Recommendation{
			Weight:   f.Weight,
			Priority: f.Priority,
			Text:     f.Text,
			Link:     f.Link,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Weight > recs[j].Weight
	})

	return interfaces.ScorecardEntry{
		Area:            key,
		Score:           score.Score,
		Rating:          score.Rating,
		Recommendations: recs,
	}, nil
}

// correlateScore selects the unique score record whose derived key equals the
// design-area key. Zero or multiple matches is a CorrelationError.
func correlateScore(key string, scores []interfaces.ScoreRecord) (interfaces.ScoreRecord, error) {
	var match interfaces.ScoreRecord
	matches := 0
	for _, s := range scores {
		if scoreKey(s.Category) == key {
			match = s
			matches++
		}
	}
	if matches != 1 {
		return interfaces.ScoreRecord{}, &CorrelationError{Area: key, Matches: matches}
	}
	return match, nil
}
