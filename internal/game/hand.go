package game

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/8hfv9fwc/poker-sim/poker"
)

// HandState is the explicit context for one hand: seating, board, pots and
// betting state. Nothing is global; independent hands can run side by side.
type HandState struct {
	Players []*Player
	Street  Street
	Board   []poker.Card
	Pots    []Pot
	Deck    *poker.Deck
	Betting *BettingRound

	SmallBlind Chips
	BigBlind   Chips

	livePlayers   int
	startingTotal Chips
	turn          int // next seat to consider in the cycle
	bus           *EventBus
	done          bool
}

// postBlinds commits the forced bets through the same wager path as
// voluntary bets. Short stacks post all-in for less.
func (h *HandState) postBlinds() {
	sb, bb := h.Players[0], h.Players[1]

	for i, p := range []*Player{sb, bb} {
		blind := h.SmallBlind
		if i == 1 {
			blind = h.BigBlind
		}
		if p.MaxBet() <= blind {
			p.commit(p.MaxBet())
			p.AllIn = true
			p.HasAction = false
			h.Betting.FoldsAndAllIns++
			h.Betting.RemainingActions--
		} else {
			p.commit(blind)
		}
		h.publish(BlindPostedEvent{Player: p, Amount: p.Wager, Big: i == 1, timestamp: time.Now()})
	}

	h.Betting.CurrentBet = h.BigBlind
	h.Betting.updateLastAction(len(h.Players))
}

func (h *HandState) dealHoleCards() {
	for _, p := range h.Players {
		p.Hole = h.Deck.Draw(2)
	}
}

// LegalActions returns the offered action kinds for a seat
func (h *HandState) LegalActions(seat int) []ActionKind {
	return h.Betting.LegalActions(h.Players[seat])
}

// Apply validates and applies one action for the given seat. An action
// outside the offered set fails the hand with an IllegalActionError.
func (h *HandState) Apply(seat int, action Action) error {
	p := h.Players[seat]
	offered := h.Betting.LegalActions(p)

	if !containsKind(offered, action.Kind) {
		return &IllegalActionError{Player: p.Name, Action: action, Offered: offered}
	}
	if h.Betting.RemainingActions <= 0 {
		return fmt.Errorf("no actions remaining in %s round: %w", h.Street, ErrIllegalAction)
	}

	p.HasAction = false
	h.Betting.RemainingActions--

	switch action.Kind {
	case Fold:
		p.Folded = true
		h.livePlayers--
		h.Betting.FoldsAndAllIns++
		h.publish(PlayerActionEvent{Player: p, Kind: Fold, timestamp: time.Now()})

	case Call:
		due := h.Betting.CurrentBet
		if p.MaxBet() <= due {
			// All-in for less than the current bet.
			p.commit(p.MaxBet())
			p.AllIn = true
			h.Betting.FoldsAndAllIns++
			h.publish(PlayerActionEvent{Player: p, Kind: Call, Amount: p.Wager, AllIn: true, timestamp: time.Now()})
		} else {
			check := due == 0
			p.commit(due)
			p.FullRaiseThreshold = h.Betting.CurrentBet + h.Betting.MinRaise
			h.publish(PlayerActionEvent{Player: p, Kind: Call, Amount: p.Wager, Check: check, timestamp: time.Now()})
		}

	case Raise:
		if err := h.applyRaise(p, action.Amount); err != nil {
			return err
		}
	}

	h.Betting.updateLastAction(len(h.Players))
	return nil
}

func (h *HandState) applyRaise(p *Player, amount Chips) error {
	// Raising for more chips than the player holds is clamped to an all-in
	// rather than rejected.
	if amount > p.MaxBet() {
		amount = p.MaxBet()
	}
	if amount <= h.Betting.CurrentBet {
		return &IllegalActionError{Player: p.Name, Action: RaiseTo(amount), Offered: h.Betting.LegalActions(p)}
	}
	shortRaise := amount < h.Betting.CurrentBet+h.Betting.MinRaise
	if shortRaise && amount < p.MaxBet() {
		// Below the minimum raise and not an all-in.
		return &IllegalActionError{Player: p.Name, Action: RaiseTo(amount), Offered: h.Betting.LegalActions(p)}
	}

	// A raise hands every other live, non-all-in player another action.
	h.reopenActionExcept(p)

	p.commit(amount)

	if shortRaise {
		// A short all-in raise moves the bet but does not reset raise
		// eligibility: MinRaise and other players' thresholds are
		// untouched.
		h.Betting.CurrentBet = amount
		p.AllIn = true
		h.Betting.FoldsAndAllIns++
		h.publish(PlayerActionEvent{Player: p, Kind: Raise, Amount: amount, AllIn: true, timestamp: time.Now()})
		return nil
	}

	h.Betting.MinRaise = amount - h.Betting.CurrentBet
	h.Betting.CurrentBet = amount
	p.FullRaiseThreshold = h.Betting.CurrentBet + h.Betting.MinRaise
	if p.Stack == 0 {
		p.AllIn = true
		h.Betting.FoldsAndAllIns++
	}
	h.publish(PlayerActionEvent{Player: p, Kind: Raise, Amount: amount, AllIn: p.AllIn, timestamp: time.Now()})
	return nil
}

// reopenActionExcept grants pending action to every live, non-all-in player
// other than the raiser that does not already hold one.
func (h *HandState) reopenActionExcept(raiser *Player) {
	for _, p := range h.Players {
		if p == raiser || !p.CanAct() || p.HasAction {
			continue
		}
		p.HasAction = true
		h.Betting.RemainingActions++
	}
}

// nextActor returns the seat of the next player in the cycle holding a
// pending action, or -1 when none remains. Seats are fixed; folded and
// all-in players are skipped, never removed.
func (h *HandState) nextActor() int {
	n := len(h.Players)
	for i := 0; i < n; i++ {
		seat := (h.turn + i) % n
		p := h.Players[seat]
		if p.CanAct() && p.HasAction {
			h.turn = (seat + 1) % n
			return seat
		}
	}
	return -1
}

// lastLivePlayer returns the sole unfolded player, or nil if more than one
// remains.
func (h *HandState) lastLivePlayer() *Player {
	if h.livePlayers != 1 {
		return nil
	}
	for _, p := range h.Players {
		if !p.Folded {
			return p
		}
	}
	return nil
}

// advanceStreet settles nothing itself; callers settle first. It deals the
// next community cards, resets the betting state and reopens action for
// every live, non-all-in player, with the cycle restarting at seat 0.
func (h *HandState) advanceStreet() {
	h.Street++
	switch h.Street {
	case Flop:
		h.Board = append(h.Board, h.Deck.Draw(3)...)
	case Turn, River:
		h.Board = append(h.Board, h.Deck.DrawOne())
	}

	h.Betting.ResetForNewStreet()
	for _, p := range h.Players {
		if p.CanAct() {
			p.FullRaiseThreshold = 0
			p.HasAction = true
			h.Betting.RemainingActions++
		}
	}
	h.turn = 0

	board := make([]poker.Card, len(h.Board))
	copy(board, h.Board)
	h.publish(StreetChangeEvent{Street: h.Street, Board: board, timestamp: time.Now()})
}

// Run plays the hand to completion, consulting each seat's strategy in
// cyclic order. It returns once a single live player remains or the river
// betting round closes and the showdown resolves.
func (h *HandState) Run(strategies []Strategy) error {
	if len(strategies) != len(h.Players) {
		return fmt.Errorf("need %d strategies, got %d", len(h.Players), len(strategies))
	}
	if h.done {
		return fmt.Errorf("hand already resolved")
	}

	for {
		if winner := h.lastLivePlayer(); winner != nil {
			h.settleFoldOut(winner)
			h.awardFoldOut(winner)
			h.finish(true)
			return nil
		}

		if h.Betting.RemainingActions == 0 {
			h.settlePots()
			if h.Street == River {
				h.showdown()
				h.finish(false)
				return nil
			}
			// When everyone left is all-in the new street reopens nobody
			// and the loop advances straight through to the river.
			h.advanceStreet()
			continue
		}

		seat := h.nextActor()
		if seat == -1 {
			panic(newInvariantError("%d actions remaining but no player can act", h.Betting.RemainingActions))
		}

		p := h.Players[seat]
		prompt := ActionPrompt{
			Offered:    h.Betting.LegalActions(p),
			CurrentBet: h.Betting.CurrentBet,
			MinRaise:   h.Betting.MinRaise,
			LastAction: h.Betting.LastAction,
			Hole:       p.Hole,
			Board:      h.Board,
			Stack:      p.Stack,
			Wager:      p.Wager,
			MaxBet:     p.MaxBet(),
		}

		if err := h.Apply(seat, strategies[seat].Decide(prompt)); err != nil {
			return err
		}
	}
}

// showdown resolves every pot independently: each contestant's best cached
// 5-card hand is compared and the pot goes to the highest score. Exact ties
// split the pot evenly, odd cents to the earliest seat.
func (h *HandState) showdown() {
	for i, pot := range h.Pots {
		if len(pot.Contestants) == 0 || pot.Value == 0 {
			continue
		}

		var best poker.Score
		var winners []*Player
		for _, p := range pot.Contestants {
			score, _ := p.BestHand(h.Board)
			switch {
			case len(winners) == 0 || score.Beats(best):
				best = score
				winners = []*Player{p}
			case score == best:
				winners = append(winners, p)
			}
		}

		sort.Slice(winners, func(a, b int) bool { return winners[a].Seat < winners[b].Seat })
		share := pot.Value / Chips(len(winners))
		odd := pot.Value % Chips(len(winners))
		for w, p := range winners {
			amount := share
			if Chips(w) < odd {
				amount++
			}
			p.Stack += amount
			h.publish(PotAwardedEvent{Player: p, Amount: amount, PotIndex: i, Hand: best.String(), timestamp: time.Now()})
		}
	}
}

// awardFoldOut pays every pot to the sole live player
func (h *HandState) awardFoldOut(winner *Player) {
	for i, pot := range h.Pots {
		if pot.Value == 0 {
			continue
		}
		winner.Stack += pot.Value
		h.publish(PotAwardedEvent{Player: winner, Amount: pot.Value, PotIndex: i, timestamp: time.Now()})
	}
}

func (h *HandState) finish(foldOut bool) {
	h.done = true
	board := make([]poker.Card, len(h.Board))
	copy(board, h.Board)
	h.publish(HandEndEvent{FoldOut: foldOut, Board: board, timestamp: time.Now()})
}

// Done reports whether the hand has been resolved
func (h *HandState) Done() bool {
	return h.done
}

func (h *HandState) publish(event Event) {
	if h.bus != nil {
		h.bus.Publish(event)
	}
}

// dump renders the full hand state for invariant failure reports
func (h *HandState) dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "street=%s currentBet=%v minRaise=%v remaining=%d foldsAndAllIns=%d\n",
		h.Street, h.Betting.CurrentBet, h.Betting.MinRaise, h.Betting.RemainingActions, h.Betting.FoldsAndAllIns)
	for _, p := range h.Players {
		fmt.Fprintf(&b, "  seat %d %-10s stack=%v wager=%v threshold=%v folded=%t allin=%t hasAction=%t\n",
			p.Seat, p.Name, p.Stack, p.Wager, p.FullRaiseThreshold, p.Folded, p.AllIn, p.HasAction)
	}
	for i, pot := range h.Pots {
		names := make([]string, len(pot.Contestants))
		for j, c := range pot.Contestants {
			names[j] = c.Name
		}
		fmt.Fprintf(&b, "  pot %d value=%v contestants=[%s]\n", i, pot.Value, strings.Join(names, " "))
	}
	return b.String()
}
