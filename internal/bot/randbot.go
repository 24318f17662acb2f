package bot

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/8hfv9fwc/poker-sim/internal/game"
)

// RandBot picks uniformly among the offered action kinds. Raises go to the
// current bet plus one to five minimum raises, clamped to the bot's stack.
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger}
}

func (r *RandBot) Decide(prompt game.ActionPrompt) game.Action {
	kind := prompt.Offered[r.rng.Intn(len(prompt.Offered))]
	if kind != game.Raise {
		return game.Action{Kind: kind}
	}

	multiple := game.Chips(1 + r.rng.Intn(5))
	amount := prompt.CurrentBet + prompt.MinRaise*multiple
	if amount > prompt.MaxBet {
		amount = prompt.MaxBet
	}
	return game.RaiseTo(amount)
}
