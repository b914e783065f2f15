package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Game.TableauSections)
	assert.Equal(t, 4, cfg.Game.CardsPerSection)
	assert.Equal(t, 100, cfg.Game.BaseRefreshCost)
	assert.Equal(t, "info", cfg.Game.LogLevel)
	assert.NotEmpty(t, cfg.Stats.File)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
game {
  seed              = 42
  tableau_sections  = 8
  cards_per_section = 5
  base_refresh_cost = 50
  log_level         = "debug"
}

stats {
  file = "/tmp/custom-stats.json"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, 8, cfg.Game.TableauSections)
	assert.Equal(t, 5, cfg.Game.CardsPerSection)
	assert.Equal(t, 50, cfg.Game.BaseRefreshCost)
	assert.Equal(t, "debug", cfg.Game.LogLevel)
	assert.Equal(t, "/tmp/custom-stats.json", cfg.Stats.File)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
game {
  seed = 7
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Game.Seed)
	assert.Equal(t, 10, cfg.Game.TableauSections, "omitted settings keep defaults")
	assert.Equal(t, 100, cfg.Game.BaseRefreshCost)
	require.NotNil(t, cfg.Stats)
	assert.NotEmpty(t, cfg.Stats.File)
}

func TestLoadInvalidHCL(t *testing.T) {
	path := writeConfig(t, `game { seed = `)

	_, err := Load(path)
	assert.Error(t, err)
}
