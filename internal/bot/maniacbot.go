package bot

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/8hfv9fwc/poker-sim/internal/game"
)

// ManiacBot shoves its whole stack most of the time it is allowed to raise
// and never folds. Useful for stress-testing side pot construction.
type ManiacBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewManiacBot creates a new ManiacBot instance
func NewManiacBot(rng *rand.Rand, logger *log.Logger) *ManiacBot {
	return &ManiacBot{rng: rng, logger: logger}
}

func (m *ManiacBot) Decide(prompt game.ActionPrompt) game.Action {
	if prompt.CanRaise() && m.rng.Float64() < 0.85 {
		return game.RaiseTo(prompt.MaxBet)
	}
	return game.CallAction()
}
