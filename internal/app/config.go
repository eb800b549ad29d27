package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Mnb-0/cvscan/internal/domain/score"
)

// Config holds runtime configuration for the analyzer, loaded from a
// YAML file. Zero-value fields fall back to defaults.
type Config struct {
	Scoring struct {
		MandatoryWeight float64 `yaml:"mandatory_weight"`
		PreferredWeight float64 `yaml:"preferred_weight"`
		PenaltyPercent  float64 `yaml:"penalty_percent"`
		CaseSensitive   bool    `yaml:"case_sensitive"`
	} `yaml:"scoring"`

	Batch struct {
		Workers int `yaml:"workers"` // 0 = one per CPU
	} `yaml:"batch"`

	Paths struct {
		JobsDir string `yaml:"jobs_dir"` // directory of position JSON files
		Report  string `yaml:"report"`   // batch report output path
		Store   string `yaml:"store"`    // run-history database path
	} `yaml:"paths"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Scoring.MandatoryWeight = 0.70
	cfg.Scoring.PreferredWeight = 0.30
	cfg.Scoring.PenaltyPercent = 20
	cfg.Paths.JobsDir = "jobs"
	cfg.Paths.Report = "cv_batch_report.json"
	cfg.Paths.Store = "cvscan.db"
	return cfg
}

// LoadConfig reads a YAML config file. A missing file is not an error:
// the defaults are returned so the tool works without any setup.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.ScoreConfig().Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ScoreConfig converts the scoring section to a score.Config.
func (c *Config) ScoreConfig() score.Config {
	return score.Config{
		MandatoryWeight: c.Scoring.MandatoryWeight,
		PreferredWeight: c.Scoring.PreferredWeight,
		PenaltyPercent:  c.Scoring.PenaltyPercent,
		CaseSensitive:   c.Scoring.CaseSensitive,
	}
}
