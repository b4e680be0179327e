// Package cmd implements the archscore CLI commands using Cobra.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	format  string
	output  string
)

var rootCmd = &cobra.Command{
	Use:   "archscore",
	Short: "Well-Architected assessment scorecard builder",
	Long: `archscore normalizes a Well-Architected assessment export into a
ranked scorecard.

It locates the tables embedded in the export by their sentinel lines, parses
the per-category scores and the weighted findings, correlates the two by
design area, and produces the ranked scorecard views a presentation layer
binds onto its placeholders.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns any error.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default: .archscore.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "output format (terminal|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "write output to file instead of stdout")
}

func setupLogging() error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	return nil
}
