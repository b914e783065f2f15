package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wmmead/fortythieves/internal/deck"
	"github.com/wmmead/fortythieves/internal/game"
	"github.com/wmmead/fortythieves/internal/tui"
)

// PlayCmd runs the interactive terminal game
type PlayCmd struct {
	Seed  *int64 `help:"Deterministic shuffle seed (optional)"`
	Debug bool   `help:"Enable debug logging"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}
	level := cfg.Game.LogLevel
	if c.Debug {
		level = "debug"
	}
	logger := setupLogger(level)

	ledger, err := openLedger(cfg, logger)
	if err != nil {
		return fmt.Errorf("open statistics ledger: %w", err)
	}

	seed := cfg.Game.Seed
	if c.Seed != nil {
		seed = *c.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := deck.NewRNG(seed)
	logger.Debug("shuffle seed", "seed", seed)

	model := tui.New(logger, ledger, rng, game.Options{
		TableauSections: cfg.Game.TableauSections,
		DealPerSection:  cfg.Game.CardsPerSection,
		BaseRefreshCost: cfg.Game.BaseRefreshCost,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
