package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
)

// StatsCmd prints the cross-session statistics aggregate
type StatsCmd struct{}

func (c *StatsCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Game.LogLevel)
	ledger, err := openLedger(cfg, logger)
	if err != nil {
		return fmt.Errorf("open statistics ledger: %w", err)
	}

	summary := ledger.Aggregate()
	out := termenv.NewOutput(os.Stdout)
	heading := out.String("Forty Thieves statistics").Bold()
	fmt.Println(heading)
	fmt.Printf("  Games played:  %d\n", summary.GamesPlayed)
	fmt.Printf("  Average score: %.2f\n", summary.AverageScore)
	won := out.String(fmt.Sprintf("%d", summary.GamesWon)).Foreground(out.Color("2"))
	fmt.Printf("  Games won:     %s\n", won)
	return nil
}

// ResetCmd wipes the durable statistics ledger
type ResetCmd struct {
	Force bool `short:"f" help:"Skip the confirmation prompt"`
}

func (c *ResetCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Game.LogLevel)
	ledger, err := openLedger(cfg, logger)
	if err != nil {
		return fmt.Errorf("open statistics ledger: %w", err)
	}

	if !c.Force {
		fmt.Print("Delete all saved game statistics? [y/N] ")
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}
	ledger.PurgeAll()
	fmt.Println("Statistics wiped.")
	return nil
}
