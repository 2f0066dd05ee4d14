package podds

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 5, cfg.MaxGoals)
	assert.Equal(t, 2.5, cfg.OverUnderLine)
	assert.Equal(t, 5, cfg.TopScorelines)
	assert.Equal(t, 4.95, cfg.MarginTargets[MarketMatchResults])
	assert.Equal(t, 6.18, cfg.MarginTargets[MarketOverUnder])
	assert.Equal(t, 57.97, cfg.MarginTargets[MarketCorrectScore])
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "podds.yaml")
	content := []byte("maxGoals: 7\nmarginTargets:\n  \"Match Results\": 5.5\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.MaxGoals)
	assert.Equal(t, 5.5, cfg.MarginTargets[MarketMatchResults])
	// Untouched fields keep their defaults
	assert.Equal(t, 2.5, cfg.OverUnderLine)
	assert.Equal(t, 5, cfg.TopScorelines)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maxGoals: [not an int"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
