// Package config loads the player-facing configuration file. The file is
// HCL; a missing file yields defaults so the game runs with no setup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete configuration
type Config struct {
	Game  *GameSettings  `hcl:"game,block"`
	Stats *StatsSettings `hcl:"stats,block"`
}

// GameSettings tunes the table and fee schedule
type GameSettings struct {
	Seed            int64  `hcl:"seed,optional"`              // 0 means a random shuffle every game
	TableauSections int    `hcl:"tableau_sections,optional"`  // default 10
	CardsPerSection int    `hcl:"cards_per_section,optional"` // default 4
	BaseRefreshCost int    `hcl:"base_refresh_cost,optional"` // default 100
	LogLevel        string `hcl:"log_level,optional"`
}

// StatsSettings locates the durable statistics ledger
type StatsSettings struct {
	File string `hcl:"file,optional"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Game: &GameSettings{
			TableauSections: 10,
			CardsPerSection: 4,
			BaseRefreshCost: 100,
			LogLevel:        "info",
		},
		Stats: &StatsSettings{
			File: DefaultStatsPath(),
		},
	}
}

// DefaultStatsPath returns the default location of the statistics file
func DefaultStatsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "fortythieves-stats.json"
	}
	return filepath.Join(home, ".fortythieves", "stats.json")
}

// Load reads configuration from an HCL file, falling back to defaults when
// the file does not exist. Settings omitted from the file keep their
// default values.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file: %s", diags.Error())
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()
	if cfg.Game == nil {
		cfg.Game = defaults.Game
	} else {
		if cfg.Game.TableauSections <= 0 {
			cfg.Game.TableauSections = defaults.Game.TableauSections
		}
		if cfg.Game.CardsPerSection <= 0 {
			cfg.Game.CardsPerSection = defaults.Game.CardsPerSection
		}
		if cfg.Game.BaseRefreshCost <= 0 {
			cfg.Game.BaseRefreshCost = defaults.Game.BaseRefreshCost
		}
		if cfg.Game.LogLevel == "" {
			cfg.Game.LogLevel = defaults.Game.LogLevel
		}
	}
	if cfg.Stats == nil {
		cfg.Stats = defaults.Stats
	} else if cfg.Stats.File == "" {
		cfg.Stats.File = defaults.Stats.File
	}
}
