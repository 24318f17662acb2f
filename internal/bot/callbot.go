package bot

import (
	"github.com/charmbracelet/log"

	"github.com/8hfv9fwc/poker-sim/internal/game"
)

// CallBot checks or calls every time it acts. Calling is always offered,
// so it never needs a fallback.
type CallBot struct {
	logger *log.Logger
}

// NewCallBot creates a new CallBot instance
func NewCallBot(logger *log.Logger) *CallBot {
	return &CallBot{logger: logger}
}

func (c *CallBot) Decide(game.ActionPrompt) game.Action {
	return game.CallAction()
}
