package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" help:"Path to HCL config file" default:"" type:"path"`

	Play     PlayCmd     `cmd:"" default:"1" help:"Play Forty Thieves in the terminal"`
	Simulate SimulateCmd `cmd:"" help:"Play unattended games and report score statistics"`
	Stats    StatsCmd    `cmd:"" help:"Show cross-session game statistics"`
	Reset    ResetCmd    `cmd:"" help:"Wipe all saved game statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("fortythieves"),
		kong.Description("Forty Thieves solitaire: two decks, ten tableaus, escalating undo costs"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
