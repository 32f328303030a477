package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Eval     EvalCmd          `cmd:"" default:"withargs" help:"Evaluate draw records from a file or stdin"`
	SelfTest SelfTestCmd      `cmd:"" name:"self-test" help:"Check the canonical cases and exit"`
	Deal     DealCmd          `cmd:"" help:"Generate random draw records"`
	Serve    ServeCmd         `cmd:"" help:"Serve record evaluation over WebSocket"`
	Explore  ExploreCmd       `cmd:"" help:"Evaluate records interactively"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("psychic-poker"),
		kong.Description("Best-draw analysis for five-card draw poker hands"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
