package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/moisesjgomez/archscore/pkg/assessment"
	"github.com/moisesjgomez/archscore/pkg/cli"
	"github.com/moisesjgomez/archscore/pkg/interfaces"
	"github.com/moisesjgomez/archscore/pkg/render"
	"github.com/moisesjgomez/archscore/pkg/scorecard"
)

var failBelow int

var buildCmd = &cobra.Command{
	Use:   "build <report.csv>",
	Short: "Build a ranked scorecard from an assessment export",
	Long: `Build runs the full pipeline on an assessment export: locate the
embedded tables, parse scores and findings, correlate them by design area,
and render the ranked scorecard.

  archscore build ./WAF_Review.csv
  archscore build ./WAF_Review.csv -f markdown -o scorecard.md`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().IntVar(&failBelow, "fail-below", 0, "exit 1 when the overall score is below this value")
	rootCmd.AddCommand(buildCmd)
}

// formatter writes a rendered report to a writer.
type formatter interface {
	Format(w io.Writer, report *interfaces.Report) error
}

func runBuild(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	slog.Debug("config loaded",
		"layout.version", cfg.Layout.Version,
		"views.detail", cfg.Views.DetailRecs,
	)

	report, err := buildReport(path, cfg)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	f := selectFormatter(outputFormat(cfg), cfg)

	var w io.Writer = os.Stdout
	if output != "" {
		file, fileErr := os.Create(output)
		if fileErr != nil {
			return fmt.Errorf("build: creating output file: %w", fileErr)
		}
		defer file.Close() // best-effort cleanup
		w = file
	}

	if err := f.Format(w, report); err != nil {
		return fmt.Errorf("build: writing report: %w", err)
	}

	gate := failBelow
	if gate == 0 {
		gate = cfg.Output.FailBelow
	}
	if gate > 0 && report.Summary.Score < gate {
		slog.Warn("overall score below gate", "score", report.Summary.Score, "gate", gate)
		os.Exit(1)
	}

	return nil
}

// buildReport runs the extraction core end to end and wraps the scorecard in
// its rendered views.
func buildReport(path string, cfg *cli.Config) (*interfaces.Report, error) {
	layout := cfg.Layout.Descriptor()

	lines, err := assessment.LoadFile(path)
	if err != nil {
		return nil, err
	}
	slog.Info("report loaded", "path", path, "lines", len(lines))

	sections, err := assessment.Locate(lines, layout)
	if err != nil {
		return nil, err
	}
	slog.Debug("sections located",
		"score_start", sections.ScoreStart,
		"score_end", sections.ScoreEnd,
		"findings_header", sections.FindingsHeader,
		"findings_end", sections.FindingsEnd,
	)

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

	slog.Info("report parsed",
		"scores", len(scores),
		"findings", len(findings),
		"overall", overall.Score,
	)

	card, err := scorecard.Build(findings, scores, overall)
	if err != nil {
		return nil, err
	}

	return render.BuildReport(card, path, cfg.Views.Caps()), nil
}

// outputFormat resolves the output format: the flag wins over config.
func outputFormat(cfg *cli.Config) string {
	if format != "" {
		return format
	}
	return cfg.Output.Format
}

// selectFormatter returns the appropriate report formatter for the given
// format name.
func selectFormatter(name string, cfg *cli.Config) formatter {
	switch name {
	case "json":
		return render.NewJSONFormatter()
	case "markdown":
		return render.NewMarkdownFormatter()
	default:
		return render.NewTerminalFormatter().
			WithThresholds(cfg.Thresholds.Green, cfg.Thresholds.Yellow)
	}
}
