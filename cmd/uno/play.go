package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/lox/uno-cli/internal/host"
	"github.com/lox/uno-cli/internal/tui"
)

// PlayCmd runs the terminal game
type PlayCmd struct {
	Seed    int64  `help:"RNG seed for the deal and the computer (0 for random)" default:"0"`
	LogFile string `help:"Override the log file from the config"`
	NoColor bool   `help:"Disable colored cards"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}

	logFile, err := openLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	level, _ := log.ParseLevel(cfg.Log.Level)
	logger := newLogger(logFile, level).WithPrefix("uno")
	logger.Info("Starting interactive game", "config", cli.Config, "seed", c.Seed)

	if c.NoColor {
		tui.DisableColor()
	}

	opts, err := hostOptions(cfg, c.Seed, logger)
	if err != nil {
		return err
	}
	h := host.New(opts...)
	defer func() { _ = h.Close() }()

	ui := tui.NewTUIInterface(h, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		_ = ui.Close()
	}()

	return ui.Run()
}
