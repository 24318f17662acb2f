package game

import (
	"github.com/8hfv9fwc/poker-sim/poker"
)

// Player represents a seated player for the duration of one hand. Seats are
// fixed; folded and all-in players stay in the seating array and are skipped
// by the turn cycle, so seat positions remain stable for pot bookkeeping.
type Player struct {
	Seat          int
	Name          string
	Hole          []poker.Card
	Stack         Chips
	StartingStack Chips
	Wager         Chips // committed this betting round

	// FullRaiseThreshold is the minimum CurrentBet above which this player
	// may legally raise again, set whenever they call or complete a full
	// raise.
	FullRaiseThreshold Chips

	Folded    bool
	AllIn     bool
	HasAction bool

	// Showdown score, computed once per hand on first use.
	bestScore poker.Score
	bestCards []poker.Card
	scored    bool
}

// MaxBet returns the total chips the player could ever have in play this
// round: remaining stack plus what is already committed.
func (p *Player) MaxBet() Chips {
	return p.Stack + p.Wager
}

// Live returns true if the player has not folded
func (p *Player) Live() bool {
	return !p.Folded
}

// CanAct returns true if the player can still take actions this hand
func (p *Player) CanAct() bool {
	return !p.Folded && !p.AllIn
}

// commit brings the player's round wager up to amount, moving the
// difference out of the stack. Callers clamp to MaxBet first; committing
// beyond the stack is a programming defect.
func (p *Player) commit(amount Chips) Chips {
	diff := amount - p.Wager
	if diff < 0 {
		panic(newInvariantError("wager cannot decrease: %s has wagered %v, commit to %v", p.Name, p.Wager, amount))
	}
	if diff > p.Stack {
		panic(newInvariantError("%s cannot commit %v with stack %v", p.Name, diff, p.Stack))
	}
	p.Stack -= diff
	p.Wager += diff
	return diff
}

// BestHand returns the player's best 5-card hand from hole plus board,
// memoized for the rest of the hand.
func (p *Player) BestHand(board []poker.Card) (poker.Score, []poker.Card) {
	if !p.scored {
		cards := make([]poker.Card, 0, len(p.Hole)+len(board))
		cards = append(cards, p.Hole...)
		cards = append(cards, board...)
		p.bestScore, p.bestCards = poker.BestHand(cards)
		p.scored = true
	}
	return p.bestScore, p.bestCards
}
