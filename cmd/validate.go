package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/moisesjgomez/archscore/pkg/assessment"
	"github.com/moisesjgomez/archscore/pkg/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate <report.csv>",
	Short: "Check that an assessment export parses cleanly",
	Long: `Validate locates and parses every section of an assessment export
without rendering anything. It exits non-zero on the first malformed section
or unparseable field, printing the line number and raw value.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	layout := cfg.Layout.Descriptor()

	lines, err := assessment.LoadFile(path)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	sections, err := assessment.Locate(lines, layout)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	scores, err := assessment.ParseScoreTable(lines, sections)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	findings, err := assessment.ParseFindingsTable(lines, sections)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	overall, err := assessment.ExtractOverallSummary(lines, layout)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	slog.Info("report is valid",
		"path", path,
		"lines", len(lines),
		"score_rows", len(scores),
		"finding_rows", len(findings),
		"overall_score", overall.Score,
		"overall_rating", overall.Rating,
	)
	fmt.Printf("%s: OK (%d score rows, %d findings, overall %d/100 %s)\n",
		path, len(scores), len(findings), overall.Score, overall.Rating)

	return nil
}
