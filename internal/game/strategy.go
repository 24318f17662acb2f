package game

import (
	"github.com/8hfv9fwc/poker-sim/poker"
)

// ActionPrompt is the view handed to a strategy when it must act. Offered
// reflects the legality rules of the betting engine; a strategy must return
// an action whose kind is in the offered set, or the hand fails with an
// IllegalActionError.
type ActionPrompt struct {
	Offered    []ActionKind
	CurrentBet Chips
	MinRaise   Chips
	// LastAction is true once nobody else can act: raising is no longer
	// offered because no caller remains.
	LastAction bool

	Hole   []poker.Card
	Board  []poker.Card
	Stack  Chips
	Wager  Chips
	MaxBet Chips
}

// CanRaise reports whether raising is in the offered set
func (p ActionPrompt) CanRaise() bool { return containsKind(p.Offered, Raise) }

// CanFold reports whether folding is in the offered set
func (p ActionPrompt) CanFold() bool { return containsKind(p.Offered, Fold) }

// Strategy is the opaque decision-maker consulted on a player's turn. The
// engine blocks on Decide; there are no timeout or cancellation semantics.
type Strategy interface {
	Decide(prompt ActionPrompt) Action
}
