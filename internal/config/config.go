// Package config loads simulation configuration from HCL files. Monetary
// values are written in dollars and converted to chip cents at the
// boundary; everything past this package works in game.Chips.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/8hfv9fwc/poker-sim/internal/game"
)

// Config represents the complete simulation configuration
type Config struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Table      TableSettings       `hcl:"table,block"`
	Players    []PlayerConfig      `hcl:"player,block"`
}

// SimulationSettings contains run-level configuration
type SimulationSettings struct {
	Hands    int    `hcl:"hands,optional"`
	Seed     int64  `hcl:"seed,optional"`
	Workers  int    `hcl:"workers,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// TableSettings defines the stakes, in dollars
type TableSettings struct {
	SmallBlind float64 `hcl:"small_blind"`
	BigBlind   float64 `hcl:"big_blind"`
	Stack      float64 `hcl:"stack,optional"`
}

// PlayerConfig defines one seat at the table
type PlayerConfig struct {
	Name     string  `hcl:"name,label"`
	Strategy string  `hcl:"strategy"`
	Stack    float64 `hcl:"stack,optional"`
}

// Default returns the configuration used when no file is given: three bots
// at a $0.50/$1.00 table with 200 big blind stacks.
func Default() *Config {
	return &Config{
		Simulation: &SimulationSettings{
			Hands:    100,
			LogLevel: "info",
		},
		Table: TableSettings{
			SmallBlind: 0.5,
			BigBlind:   1.0,
		},
		Players: []PlayerConfig{
			{Name: "alice", Strategy: "rand"},
			{Name: "bob", Strategy: "call"},
			{Name: "carol", Strategy: "rand"},
		},
	}
}

// Load reads configuration from an HCL file, falling back to Default when
// the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Simulation == nil {
		config.Simulation = &SimulationSettings{}
	}
	if config.Simulation.Hands == 0 {
		config.Simulation.Hands = 100
	}
	if config.Simulation.LogLevel == "" {
		config.Simulation.LogLevel = "info"
	}
	if config.Table.Stack == 0 {
		config.Table.Stack = config.Table.BigBlind * 200
	}
	for i := range config.Players {
		if config.Players[i].Stack == 0 {
			config.Players[i].Stack = config.Table.Stack
		}
	}

	return &config, nil
}

var validStrategies = map[string]bool{
	"rand":   true,
	"call":   true,
	"fold":   true,
	"maniac": true,
}

// Validate validates the simulation configuration
func (c *Config) Validate() error {
	if c.Simulation.Hands <= 0 {
		return fmt.Errorf("hands must be positive, got %d", c.Simulation.Hands)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", c.Simulation.Workers)
	}

	if c.Table.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive")
	}
	if c.Table.BigBlind <= c.Table.SmallBlind {
		return fmt.Errorf("big blind must be greater than small blind")
	}

	if len(c.Players) < 2 {
		return fmt.Errorf("at least two players must be configured, got %d", len(c.Players))
	}
	seen := map[string]bool{}
	for _, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("player names cannot be empty")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate player name %q", p.Name)
		}
		seen[p.Name] = true
		if !validStrategies[p.Strategy] {
			return fmt.Errorf("player %s: invalid strategy %q", p.Name, p.Strategy)
		}
		if p.Stack < 0 {
			return fmt.Errorf("player %s: stack cannot be negative", p.Name)
		}
		if stack := game.ChipsFromFloat(p.Stack); stack > 0 && stack <= c.BigBlindChips() {
			return fmt.Errorf("player %s: stack must exceed the big blind", p.Name)
		}
	}

	return nil
}

// SmallBlindChips returns the small blind in chip cents
func (c *Config) SmallBlindChips() game.Chips {
	return game.ChipsFromFloat(c.Table.SmallBlind)
}

// BigBlindChips returns the big blind in chip cents
func (c *Config) BigBlindChips() game.Chips {
	return game.ChipsFromFloat(c.Table.BigBlind)
}

// Stacks returns every player's starting stack in chip cents, defaulting
// empty stacks to the table stack.
func (c *Config) Stacks() []game.Chips {
	stacks := make([]game.Chips, len(c.Players))
	for i, p := range c.Players {
		stack := p.Stack
		if stack == 0 {
			stack = c.Table.Stack
		}
		if stack == 0 {
			stack = c.Table.BigBlind * 200
		}
		stacks[i] = game.ChipsFromFloat(stack)
	}
	return stacks
}

// Names returns the configured player names in seat order
func (c *Config) Names() []string {
	names := make([]string, len(c.Players))
	for i, p := range c.Players {
		names[i] = p.Name
	}
	return names
}
