package bot

import (
	"github.com/charmbracelet/log"

	"github.com/8hfv9fwc/poker-sim/internal/game"
)

// FoldBot folds whenever folding is offered and checks otherwise. Folding
// is never offered when checking is free, so it never pays a chip beyond
// the blinds.
type FoldBot struct {
	logger *log.Logger
}

// NewFoldBot creates a new FoldBot instance
func NewFoldBot(logger *log.Logger) *FoldBot {
	return &FoldBot{logger: logger}
}

func (f *FoldBot) Decide(prompt game.ActionPrompt) game.Action {
	if prompt.CanFold() {
		return game.FoldAction()
	}
	return game.CallAction()
}
