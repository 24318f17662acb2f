// Package bot provides the built-in strategies used to fill simulated
// tables. Every bot satisfies game.Strategy and only ever plays actions
// from the offered set.
package bot

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/8hfv9fwc/poker-sim/internal/game"
)

// New creates a strategy by name. Known names are "rand", "call", "fold"
// and "maniac".
func New(name string, rng *rand.Rand, logger *log.Logger) (game.Strategy, error) {
	switch name {
	case "rand":
		return NewRandBot(rng, logger), nil
	case "call":
		return NewCallBot(logger), nil
	case "fold":
		return NewFoldBot(logger), nil
	case "maniac":
		return NewManiacBot(rng, logger), nil
	default:
		return nil, fmt.Errorf("unknown bot type %q", name)
	}
}
