// Package config loads uno.hcl.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/uno-cli/internal/bot"
	"github.com/lox/uno-cli/internal/game"
)

// DefaultFile is the config file looked up when none is given
const DefaultFile = "uno.hcl"

// Config represents the complete configuration
type Config struct {
	Game     GameSettings     `hcl:"game,block"`
	Computer ComputerSettings `hcl:"computer,block"`
	Log      LogSettings      `hcl:"log,block"`
	Server   ServerSettings   `hcl:"server,block"`
}

// GameSettings holds the deal size and house rules
type GameSettings struct {
	HandSize     int  `hcl:"hand_size,optional"`
	ReverseSkips bool `hcl:"reverse_skips,optional"`
	Reshuffle    bool `hcl:"reshuffle,optional"`
}

// ComputerSettings picks the computer policy and its pacing
type ComputerSettings struct {
	Strategy     string `hcl:"strategy,optional"`
	ThinkDelayMS int    `hcl:"think_delay_ms,optional"`
	SkipDelayMS  int    `hcl:"skip_delay_ms,optional"`
}

// LogSettings configures the log file
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// ServerSettings configures the websocket server
type ServerSettings struct {
	Address string `hcl:"address,optional"`
	Port    int    `hcl:"port,optional"`
}

// file mirrors Config with every block optional so a partial file still
// decodes
type file struct {
	Game     *GameSettings     `hcl:"game,block"`
	Computer *ComputerSettings `hcl:"computer,block"`
	Log      *LogSettings      `hcl:"log,block"`
	Server   *ServerSettings   `hcl:"server,block"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: GameSettings{
			HandSize: game.DefaultHandSize,
		},
		Computer: ComputerSettings{
			Strategy:     string(bot.ActionFirst),
			ThinkDelayMS: 1000,
			SkipDelayMS:  1500,
		},
		Log: LogSettings{
			Level: "info",
			File:  "uno.log",
		},
		Server: ServerSettings{
			Address: "localhost",
			Port:    8080,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(f.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Default()
	if raw.Game != nil {
		config.Game = *raw.Game
	}
	if raw.Computer != nil {
		config.Computer = *raw.Computer
	}
	if raw.Log != nil {
		config.Log = *raw.Log
	}
	if raw.Server != nil {
		config.Server = *raw.Server
	}
	config.applyDefaults()

	return config, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Game.HandSize == 0 {
		c.Game.HandSize = defaults.Game.HandSize
	}
	if c.Computer.Strategy == "" {
		c.Computer.Strategy = defaults.Computer.Strategy
	}
	if c.Computer.ThinkDelayMS == 0 {
		c.Computer.ThinkDelayMS = defaults.Computer.ThinkDelayMS
	}
	if c.Computer.SkipDelayMS == 0 {
		c.Computer.SkipDelayMS = defaults.Computer.SkipDelayMS
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = defaults.Log.File
	}
	if c.Server.Address == "" {
		c.Server.Address = defaults.Server.Address
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaults.Server.Port
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// 2 hands plus the opening discard must fit in 108 cards
	if c.Game.HandSize < 1 || c.Game.HandSize > 50 {
		return fmt.Errorf("game: hand size must be between 1 and 50, got %d", c.Game.HandSize)
	}
	if _, err := bot.ParseStrategy(c.Computer.Strategy); err != nil {
		return fmt.Errorf("computer: %w", err)
	}
	if c.Computer.ThinkDelayMS < 0 || c.Computer.SkipDelayMS < 0 {
		return fmt.Errorf("computer: delays must not be negative")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server: invalid port: %d", c.Server.Port)
	}
	return nil
}

// Rules returns the house rules for new sessions
func (c *Config) Rules() game.Rules {
	return game.Rules{
		ReverseSkips: c.Game.ReverseSkips,
		Reshuffle:    c.Game.Reshuffle,
	}
}

// SessionOptions returns the game options the config implies
func (c *Config) SessionOptions() []game.Option {
	return []game.Option{
		game.WithHandSize(c.Game.HandSize),
		game.WithRules(c.Rules()),
	}
}

// Strategy returns the configured computer strategy. Call Validate first.
func (c *Config) Strategy() bot.Strategy {
	s, _ := bot.ParseStrategy(c.Computer.Strategy)
	return s
}

// ThinkDelay is the pause before each computer move
func (c *Config) ThinkDelay() time.Duration {
	return time.Duration(c.Computer.ThinkDelayMS) * time.Millisecond
}

// SkipDelay is the pause before the computer moves again after skipping
// the player
func (c *Config) SkipDelay() time.Duration {
	return time.Duration(c.Computer.SkipDelayMS) * time.Millisecond
}

// LogLevel returns the parsed log level, falling back to info
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// ServerAddress returns the full server address
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
