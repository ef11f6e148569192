package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/uno-cli/internal/bot"
	"github.com/lox/uno-cli/internal/config"
	"github.com/lox/uno-cli/internal/host"
	"github.com/lox/uno-cli/internal/randutil"
)

// loadConfig reads and validates the config file
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// newLogger builds a logger writing to w at the configured level
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}

// openLogFile truncates and opens the log file the TUI writes to, since
// the terminal itself is taken over by the renderer
func openLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// hostOptions turns the config into host options. A zero seed picks one
// from the clock.
func hostOptions(cfg *config.Config, seed int64, logger *log.Logger) ([]host.Option, error) {
	seed = randutil.SeedOrNow(seed)
	rng := randutil.New(seed)
	agent, err := bot.New(cfg.Strategy(), randutil.New(seed+1), logger.WithPrefix("computer"))
	if err != nil {
		return nil, err
	}

	logger.Debug("Host configured",
		"seed", seed,
		"strategy", cfg.Strategy(),
		"think_delay", cfg.ThinkDelay(),
		"skip_delay", cfg.SkipDelay())

	return []host.Option{
		host.WithLogger(logger),
		host.WithRNG(rng),
		host.WithAgent(agent),
		host.WithDelays(cfg.ThinkDelay(), cfg.SkipDelay()),
		host.WithSessionOptions(cfg.SessionOptions()...),
	}, nil
}

const shutdownTimeout = 5 * time.Second
