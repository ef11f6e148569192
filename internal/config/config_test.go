package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/uno-cli/internal/bot"
	"github.com/lox/uno-cli/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "uno.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
	require.NoError(t, config.Validate())

	assert.Equal(t, bot.ActionFirst, config.Strategy())
	assert.Equal(t, time.Second, config.ThinkDelay())
	assert.Equal(t, 1500*time.Millisecond, config.SkipDelay())
	assert.Equal(t, log.InfoLevel, config.LogLevel())
	assert.Equal(t, "localhost:8080", config.ServerAddress())
	assert.Equal(t, game.Rules{}, config.Rules())
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
game {
  hand_size     = 5
  reverse_skips = true
  reshuffle     = true
}

computer {
  strategy       = "majority"
  think_delay_ms = 200
  skip_delay_ms  = 400
}

log {
  level = "debug"
  file  = "/tmp/uno-test.log"
}

server {
  address = "0.0.0.0"
  port    = 9090
}
`)

	config, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	assert.Equal(t, 5, config.Game.HandSize)
	assert.Equal(t, game.Rules{ReverseSkips: true, Reshuffle: true}, config.Rules())
	assert.Equal(t, bot.Majority, config.Strategy())
	assert.Equal(t, 200*time.Millisecond, config.ThinkDelay())
	assert.Equal(t, 400*time.Millisecond, config.SkipDelay())
	assert.Equal(t, log.DebugLevel, config.LogLevel())
	assert.Equal(t, "/tmp/uno-test.log", config.Log.File)
	assert.Equal(t, "0.0.0.0:9090", config.ServerAddress())
	assert.Len(t, config.SessionOptions(), 2)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
computer {
  strategy = "random"
}
`)

	config, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	assert.Equal(t, bot.Random, config.Strategy())
	assert.Equal(t, 1000, config.Computer.ThinkDelayMS)
	assert.Equal(t, game.DefaultHandSize, config.Game.HandSize)
	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, "uno.log", config.Log.File)
}

func TestLoadRejectsBadHCL(t *testing.T) {
	_, err := Load(writeConfig(t, `game { hand_size = `))
	assert.ErrorContains(t, err, "failed to parse HCL file")

	_, err = Load(writeConfig(t, `game { colour = "red" }`))
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "hand too large", mutate: func(c *Config) { c.Game.HandSize = 60 }, wantErr: "hand size"},
		{name: "unknown strategy", mutate: func(c *Config) { c.Computer.Strategy = "genius" }, wantErr: "unknown strategy"},
		{name: "negative delay", mutate: func(c *Config) { c.Computer.SkipDelayMS = -1 }, wantErr: "delays"},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "log"},
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "invalid port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.mutate(config)
			err := config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
