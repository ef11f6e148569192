package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/uno-cli/internal/bot"
	"github.com/lox/uno-cli/internal/fileutil"
	"github.com/lox/uno-cli/internal/randutil"
	"github.com/lox/uno-cli/internal/simulator"
)

// SimulateCmd plays strategies against each other headlessly
type SimulateCmd struct {
	Games    int           `default:"10000" help:"Number of games to play"`
	Workers  int           `default:"0" help:"Concurrent workers (0 for one per CPU)"`
	Seed     int64         `default:"0" help:"RNG seed (0 for random)"`
	Player   string        `default:"action-first" help:"Strategy for the human seat: action-first, random, majority"`
	Computer string        `help:"Strategy for the computer seat (defaults to the config)"`
	MaxTurns int           `default:"2000" help:"Abort a game after this many turns"`
	Timeout  time.Duration `default:"5s" help:"Abort a game after this long"`
	Out      string        `type:"path" help:"Write a JSON report to this file"`
	Verbose  bool          `help:"Verbose logging"`
}

func (c *SimulateCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}

	player, err := bot.ParseStrategy(c.Player)
	if err != nil {
		return fmt.Errorf("--player: %w", err)
	}
	computer := cfg.Strategy()
	if c.Computer != "" {
		if computer, err = bot.ParseStrategy(c.Computer); err != nil {
			return fmt.Errorf("--computer: %w", err)
		}
	}

	level := log.WarnLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := newLogger(os.Stderr, level)

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	seed := randutil.SeedOrNow(c.Seed)

	fmt.Printf("Starting simulation: %d games, %s vs %s (seed: %d, workers: %d)\n",
		c.Games, player, computer, seed, workers)

	sim := simulator.New(simulator.Config{
		Games:    c.Games,
		Workers:  workers,
		Seed:     seed,
		Player:   player,
		Computer: computer,
		Session:  cfg.SessionOptions(),
		MaxTurns: c.MaxTurns,
		Timeout:  c.Timeout,
		Logger:   logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	report := newLogger(os.Stdout, log.InfoLevel)
	simulator.PrintSummary(report, stats, player, computer)
	fmt.Printf("Completed in %s\n", time.Since(start).Round(time.Millisecond))

	if c.Out != "" {
		if err := fileutil.WriteJSONAtomic(c.Out, sim.Report(stats)); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", c.Out)
	}
	return nil
}
