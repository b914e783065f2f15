package main

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/wmmead/fortythieves/internal/config"
	"github.com/wmmead/fortythieves/internal/stats"
	"github.com/wmmead/fortythieves/internal/store"
)

// loadConfig resolves the config file path and loads it. An empty path uses
// the default location; a missing file yields defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return config.DefaultConfig(), nil
		}
		path = filepath.Join(home, ".fortythieves", "config.hcl")
	}
	return config.Load(path)
}

// setupLogger configures the logger from the configured level
func setupLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if parsed, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	}
	return logger
}

// openLedger opens the durable statistics ledger at the configured path
func openLedger(cfg *config.Config, logger *log.Logger) (*stats.Ledger, error) {
	st, err := store.NewFile(cfg.Stats.File, logger)
	if err != nil {
		return nil, err
	}
	return stats.NewLedger(st, stats.Options{Logger: logger}), nil
}
