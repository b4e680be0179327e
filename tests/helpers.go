// Package tests provides integration test utilities for the archscore pipeline.
package tests

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/moisesjgomez/archscore/pkg/assessment"
	"github.com/moisesjgomez/archscore/pkg/interfaces"
	"github.com/moisesjgomez/archscore/pkg/scorecard"
)

// fixturesDir returns the absolute path to the test fixtures/reports directory.
func fixturesDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "fixtures", "reports")
}

// FixturePath returns the path of a fixture report by name (e.g., "valid"
// resolves to "valid.csv").
func FixturePath(name string) string {
	return filepath.Join(fixturesDir(), name+".csv")
}

// PipelineResult holds the output of a full extraction run.
type PipelineResult struct {
	Lines    []interfaces.RawLine
	Sections assessment.Sections
	Scores   []interfaces.ScoreRecord
	Findings []interfaces.FindingRecord
	Overall  interfaces.OverallSummary
	Card     *interfaces.Scorecard
}

// RunPipeline executes the extraction core end to end (load → locate → parse
// → correlate) on a fixture report and returns all intermediate results.
func RunPipeline(t *testing.T, name string) *PipelineResult {
	t.Helper()

	result, err := TryPipeline(name)
	if err != nil {
		t.Fatalf("RunPipeline(%q): %v", name, err)
	}
	return result
}

// TryPipeline is RunPipeline without the fatal assertion, for cases expected
// to fail.
func TryPipeline(name string) (*PipelineResult, error) {
	layout := assessment.DefaultLayout()

	lines, err := assessment.LoadFile(FixturePath(name))
	if err != nil {
		return nil, err
	}

	sections, err := assessment.Locate(lines, layout)
	if err != nil {
		return nil, err
	}

	scores, err := assessment.ParseScoreTable(lines, sections)
	if err != nil {
		return nil, err
	}

	findings, err := assessment.ParseFindingsTable(lines, sections)
	if err != nil {
		return nil, err
	}

	overall, err := assessment.ExtractOverallSummary(lines, layout)
	if err != nil {
		return nil, err
	}

	card, err := scorecard.Build(findings, scores, overall)
	if err != nil {
		return nil, err
	}

	return &PipelineResult{
		Lines:    lines,
		Sections: sections,
		Scores:   scores,
		Findings: findings,
		Overall:  overall,
		Card:     card,
	}, nil
}
