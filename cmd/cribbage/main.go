package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command
type Globals struct {
	Config   string           `help:"Path to the HCL config file" default:"cribbage.hcl" type:"path"`
	LogLevel string           `help:"Log level (debug, info, warn, error), overrides the config file" placeholder:"LEVEL"`
	NoColor  bool             `help:"Disable colored output"`
	Version  kong.VersionFlag `short:"v" help:"Show version"`
}

type CLI struct {
	Globals

	Eval  EvalCmd  `cmd:"" help:"Score four or five cards, or pick the best crib from six"`
	Score ScoreCmd `cmd:"" help:"Score a four card hand with an optional starter"`
	Crib  CribCmd  `cmd:"" help:"Pick the four cards to keep from a six card deal"`
	Repl  ReplCmd  `cmd:"" help:"Evaluate hands interactively"`
	Serve ServeCmd `cmd:"" help:"Run the WebSocket scoring service"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cribbage"),
		kong.Description("Cribbage hand scorer and crib optimizer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
