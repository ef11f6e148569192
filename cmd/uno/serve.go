package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/lox/uno-cli/internal/host"
	"github.com/lox/uno-cli/internal/server"
)

// ServeCmd runs the WebSocket server
type ServeCmd struct {
	Addr  string `help:"Listen address, overriding the config (host:port)"`
	Seed  int64  `help:"Base RNG seed; each connection gets the next one (0 for random)" default:"0"`
	Debug bool   `help:"Enable debug logging"`
}

func (c *ServeCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}

	level, _ := log.ParseLevel(cfg.Log.Level)
	if c.Debug {
		level = log.DebugLevel
	}
	logger := newLogger(os.Stderr, level)

	addr := c.Addr
	if addr == "" {
		addr = cfg.ServerAddress()
	}

	var connections atomic.Int64
	factory := func() *host.Host {
		n := connections.Add(1)
		seed := int64(0)
		if c.Seed != 0 {
			seed = c.Seed + n
		}
		opts, err := hostOptions(cfg, seed, logger)
		if err != nil {
			// Only an unknown strategy fails here, and Validate rejects those.
			panic(err)
		}
		return host.New(opts...)
	}

	srv := server.NewServer(addr, factory, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(shutdownCtx)
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	}
}
