package podds

import (
	"fmt"
	"os"

	"github.com/richard-senior/podds/internal/logger"
	"gopkg.in/yaml.v3"
)

// Config contains all configurable parameters that influence prediction
// outcomes. This centralizes the magic numbers for easy adjustment.
// Unlike most of the engine inputs these rarely change between matches,
// so they load once (defaults or a YAML file) and are passed by value
// into each request; the engine keeps no package level state
type Config struct {
	// === CORE PREDICTION PARAMETERS ===

	MaxGoals      int     `yaml:"maxGoals"`      // Goal counts considered per side, 0..MaxGoals (default: 5)
	OverUnderLine float64 `yaml:"overUnderLine"` // Total goals line for the over/under market (default: 2.5)
	TopScorelines int     `yaml:"topScorelines"` // Number of ranked correct scores to report (default: 5)

	// === MARGIN TARGETS ===

	// Desired bookmaker margin per market category, percentage points.
	// Quoted odds are measured against these to produce the margin
	// difference table
	MarginTargets MarginTargets `yaml:"marginTargets"`
}

// DefaultConfig returns the engine defaults, matching the values the
// prediction sheet ships with
func DefaultConfig() Config {
	return Config{
		MaxGoals:      5,
		OverUnderLine: 2.5,
		TopScorelines: 5,
		MarginTargets: MarginTargets{
			MarketMatchResults:  4.95,
			MarketAsianHandicap: 5.90,
			MarketOverUnder:     6.18,
			MarketExactGoals:    20.0,
			MarketCorrectScore:  57.97,
			MarketHalfTimeFull:  20.0,
		},
	}
}

// LoadConfig reads a YAML file over the defaults. Fields absent from
// the file keep their default values
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	logger.Info("Loaded prediction config from", path)
	return cfg, nil
}
