package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/8hfv9fwc/poker-sim/internal/game"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadParsesFullConfig(t *testing.T) {
	path := writeConfig(t, `
simulation {
  hands   = 500
  seed    = 42
  workers = 4
}

table {
  small_blind = 0.25
  big_blind   = 0.5
}

player "hero" {
  strategy = "rand"
  stack    = 100.0
}

player "villain" {
  strategy = "call"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 500, cfg.Simulation.Hands)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	assert.Equal(t, 4, cfg.Simulation.Workers)

	assert.Equal(t, game.Chips(25), cfg.SmallBlindChips())
	assert.Equal(t, game.Chips(50), cfg.BigBlindChips())

	require.Equal(t, []string{"hero", "villain"}, cfg.Names())
	// villain inherits the table stack default of 200 big blinds.
	assert.Equal(t, []game.Chips{10000, 10000}, cfg.Stacks())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 100, cfg.Simulation.Hands)
	assert.Len(t, cfg.Players, 3)
	assert.Equal(t, game.Chips(100), cfg.BigBlindChips())
	assert.Equal(t, []game.Chips{20000, 20000, 20000}, cfg.Stacks())
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	path := writeConfig(t, `table { small_blind = `)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Simulation: &SimulationSettings{Hands: 10},
			Table:      TableSettings{SmallBlind: 0.5, BigBlind: 1.0, Stack: 200},
			Players: []PlayerConfig{
				{Name: "a", Strategy: "rand", Stack: 200},
				{Name: "b", Strategy: "call", Stack: 200},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "zero hands",
			mutate:  func(c *Config) { c.Simulation.Hands = 0 },
			wantErr: "hands must be positive",
		},
		{
			name:    "inverted blinds",
			mutate:  func(c *Config) { c.Table.BigBlind = 0.25 },
			wantErr: "big blind must be greater",
		},
		{
			name:    "lone player",
			mutate:  func(c *Config) { c.Players = c.Players[:1] },
			wantErr: "at least two players",
		},
		{
			name:    "duplicate names",
			mutate:  func(c *Config) { c.Players[1].Name = "a" },
			wantErr: "duplicate player name",
		},
		{
			name:    "unknown strategy",
			mutate:  func(c *Config) { c.Players[0].Strategy = "solver" },
			wantErr: "invalid strategy",
		},
		{
			name:    "stack below big blind",
			mutate:  func(c *Config) { c.Players[0].Stack = 0.5 },
			wantErr: "stack must exceed the big blind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
