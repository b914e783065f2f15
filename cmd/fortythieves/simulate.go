package main

import (
	"context"
	"fmt"
	"time"

	"github.com/wmmead/fortythieves/internal/simulator"
)

// SimulateCmd plays unattended games and reports score statistics
type SimulateCmd struct {
	Games   int   `default:"1000" help:"Number of games to simulate"`
	Seed    int64 `default:"0" help:"Base RNG seed (0 for time-based)"`
	Workers int   `default:"0" help:"Worker goroutines (0 for GOMAXPROCS)"`
	Debug   bool  `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}
	level := cfg.Game.LogLevel
	if c.Debug {
		level = "debug"
	}
	logger := setupLogger(level)

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	sim := simulator.New(logger, c.Workers)
	results, err := sim.Run(context.Background(), c.Games, seed)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Simulated %d games in %s (seed %d)\n\n", results.Games, elapsed.Round(time.Millisecond), seed)
	fmt.Printf("  Mean score:   %.2f\n", results.Mean())
	fmt.Printf("  Median score: %.1f\n", results.Median())
	fmt.Printf("  Std dev:      %.2f\n", results.StdDev())
	fmt.Printf("  Best score:   %d\n", results.Best)
	fmt.Printf("  Mean moves:   %.1f\n", results.MeanMoves())
	fmt.Printf("  Won:          %d\n", results.Won)
	fmt.Printf("  Cleared:      %d\n", results.Cleared)
	fmt.Printf("  Stuck:        %d\n", results.Stuck)
	return nil
}
