package game

// Street represents the community-card round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river"}[s]
}

// ActionKind identifies a player action
type ActionKind int

const (
	Fold ActionKind = iota
	Call
	Raise
)

func (a ActionKind) String() string {
	return [...]string{"fold", "call", "raise"}[a]
}

// Action is one betting move. For Raise, Amount is the player's new total
// wager this round, not a delta. A call at a zero current bet is a check.
type Action struct {
	Kind   ActionKind
	Amount Chips
}

// FoldAction returns a fold
func FoldAction() Action { return Action{Kind: Fold} }

// CallAction returns a call (or check when nothing is owed)
func CallAction() Action { return Action{Kind: Call} }

// RaiseTo returns a raise to the given total round wager
func RaiseTo(amount Chips) Action { return Action{Kind: Raise, Amount: amount} }

// BettingRound tracks the state of the current betting round plus the two
// counters that persist for the whole hand (FoldsAndAllIns, LastAction).
type BettingRound struct {
	CurrentBet Chips
	MinRaise   Chips

	// RemainingActions reaches zero exactly when the round is closed: every
	// live, non-all-in player has acted since the last full raise.
	RemainingActions int

	// FoldsAndAllIns counts players permanently out of the action cycle.
	// Once it reaches playerCount-1 only one player could still act, so
	// raising stops being offered (nobody remains to call).
	FoldsAndAllIns int
	LastAction     bool

	bigBlind Chips
}

// NewBettingRound creates betting state for a fresh hand
func NewBettingRound(numPlayers int, bigBlind Chips) *BettingRound {
	return &BettingRound{
		MinRaise:         bigBlind,
		RemainingActions: numPlayers,
		bigBlind:         bigBlind,
	}
}

// ResetForNewStreet clears the per-round state. FoldsAndAllIns and
// LastAction persist for the whole hand; RemainingActions is rebuilt by the
// controller as it reopens action for eligible players.
func (br *BettingRound) ResetForNewStreet() {
	br.CurrentBet = 0
	br.MinRaise = br.bigBlind
	br.RemainingActions = 0
}

// LegalActions returns the action kinds currently offered to the player.
// Raising is never offered once LastAction is set or when the player
// already covers the table (CurrentBet >= MaxBet); a player facing a bet
// that has not fully reopened for them may only call or fold.
func (br *BettingRound) LegalActions(p *Player) []ActionKind {
	canRaise := !br.LastAction && br.CurrentBet < p.MaxBet()

	// Unopened betting, or the player already matches the bet (e.g. the big
	// blind's option): checking is free, so folding is not offered.
	if br.CurrentBet == 0 || p.Wager == br.CurrentBet {
		if canRaise {
			return []ActionKind{Raise, Call}
		}
		return []ActionKind{Call}
	}

	if canRaise && br.CurrentBet >= p.FullRaiseThreshold {
		return []ActionKind{Raise, Call, Fold}
	}
	return []ActionKind{Call, Fold}
}

// updateLastAction flips LastAction once all but one player have folded or
// gone all-in. It never flips back within a hand.
func (br *BettingRound) updateLastAction(numPlayers int) {
	if br.FoldsAndAllIns >= numPlayers-1 {
		br.LastAction = true
	}
}

func containsKind(kinds []ActionKind, k ActionKind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}
