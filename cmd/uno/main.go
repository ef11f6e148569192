package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" default:"uno.hcl" type:"path" help:"Path to the HCL config file"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play UNO against the computer in the terminal"`
	Serve    ServeCmd         `cmd:"" help:"Serve games to browser renderers over WebSocket"`
	Simulate SimulateCmd      `cmd:"" help:"Play computer strategies against each other"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("uno"),
		kong.Description("UNO against the computer, in the terminal or the browser"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
