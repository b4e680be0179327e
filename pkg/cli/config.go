// Package cli provides CLI-specific logic including configuration loading.
package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/moisesjgomez/archscore/pkg/assessment"
	"github.com/moisesjgomez/archscore/pkg/render"
)

// Config represents the .archscore.yml configuration file.
type Config struct {
	Version    string          `yaml:"version"`
	Layout     LayoutConfig    `yaml:"layout"`
	Views      ViewsConfig     `yaml:"views"`
	Thresholds ThresholdConfig `yaml:"thresholds"`
	Output     OutputConfig    `yaml:"output"`
}

// LayoutConfig mirrors assessment.Layout for the config file. SummaryLine is
// a pointer so an explicit 0 — a valid line index — survives defaulting.
type LayoutConfig struct {
	Version             string `yaml:"version"`
	SummaryLine         *int   `yaml:"summary_line"`
	SummaryMinFields    int    `yaml:"summary_min_fields"`
	ScoreSentinel       string `yaml:"score_sentinel"`
	FindingsHeader      string `yaml:"findings_header"`
	FindingsEndSentinel string `yaml:"findings_end_sentinel"`
	ScoreTableGap       int    `yaml:"score_table_gap"`
}

// Descriptor converts the layout settings to the assessment descriptor.
func (l LayoutConfig) Descriptor() assessment.Layout {
	line := 0
	if l.SummaryLine != nil {
		line = *l.SummaryLine
	}
	return assessment.Layout{
		Version:             l.Version,
		SummaryLine:         line,
		SummaryMinFields:    l.SummaryMinFields,
		ScoreSentinel:       l.ScoreSentinel,
		FindingsHeader:      l.FindingsHeader,
		FindingsEndSentinel: l.FindingsEndSentinel,
		ScoreTableGap:       l.ScoreTableGap,
	}
}

// ViewsConfig bounds the entries and recommendations each rendered view carries.
type ViewsConfig struct {
	ActionPlanAreas int `yaml:"action_plan_areas"`
	ActionPlanRecs  int `yaml:"action_plan_recommendations"`
	DetailRecs      int `yaml:"detail_recommendations"`
}

// Caps converts the view settings to render caps.
func (v ViewsConfig) Caps() render.Caps {
	return render.Caps{
		ActionPlanAreas: v.ActionPlanAreas,
		ActionPlanRecs:  v.ActionPlanRecs,
		DetailRecs:      v.DetailRecs,
	}
}

// ThresholdConfig holds the score-to-color thresholds used by the terminal
// formatter. Ratings themselves come verbatim from the export.
type ThresholdConfig struct {
	Green  int `yaml:"green"`
	Yellow int `yaml:"yellow"`
}

// OutputConfig controls report output settings.
type OutputConfig struct {
	Format    string `yaml:"format"`
	FailBelow int    `yaml:"fail_below"`
}

// LoadConfig reads and parses a .archscore.yml configuration file.
// If path is empty, it looks for .archscore.yml in the current directory.
// If the default config file is not found, sensible defaults are returned.
// If an explicitly specified config file is not found, an error is returned.
func LoadConfig(path string) (*Config, error) {
	useDefault := path == ""
	if useDefault {
		path = ".archscore.yml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && useDefault {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("cli: reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cli: parsing config %s: %w", path, err)
	}

	applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("cli: config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultConfig returns a Config with sensible defaults matching the
// documented .archscore.yml schema.
func DefaultConfig() *Config {
	cfg := &Config{Version: "1"}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	def := assessment.DefaultLayout()
	if cfg.Layout.Version == "" {
		cfg.Layout.Version = def.Version
	}
	if cfg.Layout.SummaryLine == nil {
		line := def.SummaryLine
		cfg.Layout.SummaryLine = &line
	}
	if cfg.Layout.SummaryMinFields == 0 {
		cfg.Layout.SummaryMinFields = def.SummaryMinFields
	}
	if cfg.Layout.ScoreSentinel == "" {
		cfg.Layout.ScoreSentinel = def.ScoreSentinel
	}
	if cfg.Layout.FindingsHeader == "" {
		cfg.Layout.FindingsHeader = def.FindingsHeader
	}
	if cfg.Layout.FindingsEndSentinel == "" {
		cfg.Layout.FindingsEndSentinel = def.FindingsEndSentinel
	}
	if cfg.Layout.ScoreTableGap == 0 {
		cfg.Layout.ScoreTableGap = def.ScoreTableGap
	}

	if cfg.Views.ActionPlanAreas == 0 {
		cfg.Views.ActionPlanAreas = render.DefaultActionPlanAreas
	}
	if cfg.Views.ActionPlanRecs == 0 {
		cfg.Views.ActionPlanRecs = render.DefaultActionPlanRecs
	}
	if cfg.Views.DetailRecs == 0 {
		cfg.Views.DetailRecs = render.DefaultDetailRecs
	}

	if cfg.Thresholds.Green == 0 {
		cfg.Thresholds.Green = render.DefaultGreenThreshold
	}
	if cfg.Thresholds.Yellow == 0 {
		cfg.Thresholds.Yellow = render.DefaultYellowThreshold
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = "terminal"
	}
}

// validate rejects configurations that would compute impossible section
// boundaries or view caps.
func validate(cfg *Config) error {
	if cfg.Layout.ScoreTableGap < 1 {
		return fmt.Errorf("layout.score_table_gap must be >= 1, got %d", cfg.Layout.ScoreTableGap)
	}
	if cfg.Layout.SummaryLine != nil && *cfg.Layout.SummaryLine < 0 {
		return fmt.Errorf("layout.summary_line must be >= 0, got %d", *cfg.Layout.SummaryLine)
	}
	if cfg.Views.ActionPlanAreas < 1 {
		return fmt.Errorf("views.action_plan_areas must be >= 1, got %d", cfg.Views.ActionPlanAreas)
	}
	if cfg.Views.ActionPlanRecs < 1 {
		return fmt.Errorf("views.action_plan_recommendations must be >= 1, got %d", cfg.Views.ActionPlanRecs)
	}
	if cfg.Views.DetailRecs < 1 {
		return fmt.Errorf("views.detail_recommendations must be >= 1, got %d", cfg.Views.DetailRecs)
	}
	if cfg.Thresholds.Yellow > cfg.Thresholds.Green {
		return fmt.Errorf("thresholds.yellow (%d) must not exceed thresholds.green (%d)",
			cfg.Thresholds.Yellow, cfg.Thresholds.Green)
	}
	return nil
}
