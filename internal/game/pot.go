package game

import "sort"

// Pot is a layer of contested chips. Contestants is always a freshly
// allocated slice per pot and never contains a folded player.
type Pot struct {
	Value       Chips
	Contestants []*Player
}

// settlePots converts the round's wagers into pot layers. Players are
// processed in ascending wager order; each distinct wager level peels that
// amount off every player still holding chips in the round and forms one
// pot layer. Chips from folded players are carried into the next layer's
// value without earning the folder a contestant spot. An uncalled bet (the
// highest wager exceeding the second-highest with no caller) is returned to
// its owner's stack before any layer forms.
//
// If a pot is still open from a previous round, the first new layer merges
// into it rather than starting a new pot; the open pot's contestants are
// re-filtered so players who folded since then drop out.
func (h *HandState) settlePots() {
	byWager := h.playersByWager()

	if n := len(byWager); n >= 2 {
		top, second := byWager[n-1], byWager[n-2]
		if excess := top.Wager - second.Wager; excess > 0 {
			top.Wager -= excess
			top.Stack += excess
			h.publish(newBetReturnedEvent(top, excess))
		}
	}

	carry := Chips(0)
	firstLayer := true
	for i, p := range byWager {
		level := p.Wager
		if level == 0 {
			continue
		}
		if p.Folded {
			carry += level
			p.Wager = 0
			continue
		}

		// Everyone from i onward has wager >= level; peel the level off
		// each of them. Folded players at or above the level forfeit their
		// share into the pot value but never contest it.
		value := carry
		carry = 0
		contestants := make([]*Player, 0, len(byWager)-i)
		for _, q := range byWager[i:] {
			q.Wager -= level
			value += level
			if !q.Folded {
				contestants = append(contestants, q)
			}
		}

		if firstLayer && len(h.Pots) > 0 {
			last := &h.Pots[len(h.Pots)-1]
			last.Value += value
			last.Contestants = filterLive(last.Contestants)
		} else {
			h.Pots = append(h.Pots, Pot{Value: value, Contestants: contestants})
		}
		firstLayer = false
		h.publish(newPotSettledEvent(len(h.Pots)-1, h.Pots[len(h.Pots)-1].Value))
	}

	h.audit()
}

// settleFoldOut handles the one-live-player case: the survivor's wager was
// never called at its level, so it is returned in full, and only the folded
// players' forfeited chips feed the pots.
func (h *HandState) settleFoldOut(winner *Player) {
	carry := Chips(0)
	for _, p := range h.Players {
		if p == winner || p.Wager == 0 {
			continue
		}
		carry += p.Wager
		p.Wager = 0
	}

	if winner.Wager > 0 {
		h.publish(newBetReturnedEvent(winner, winner.Wager))
		winner.Stack += winner.Wager
		winner.Wager = 0
	}

	if len(h.Pots) > 0 {
		last := &h.Pots[len(h.Pots)-1]
		last.Value += carry
		last.Contestants = filterLive(last.Contestants)
		h.publish(newPotSettledEvent(len(h.Pots)-1, last.Value))
	} else if carry > 0 {
		h.Pots = append(h.Pots, Pot{Value: carry, Contestants: []*Player{winner}})
		h.publish(newPotSettledEvent(0, carry))
	}

	h.audit()
}

// playersByWager returns the players sorted ascending by round wager.
// Ties keep seat order so layer construction stays deterministic.
func (h *HandState) playersByWager() []*Player {
	sorted := make([]*Player, len(h.Players))
	copy(sorted, h.Players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Wager < sorted[j].Wager
	})
	return sorted
}

func filterLive(players []*Player) []*Player {
	live := make([]*Player, 0, len(players))
	for _, p := range players {
		if !p.Folded {
			live = append(live, p)
		}
	}
	return live
}

// PotTotal returns the chips currently held across all pots
func (h *HandState) PotTotal() Chips {
	total := Chips(0)
	for _, pot := range h.Pots {
		total += pot.Value
	}
	return total
}

// audit verifies chip conservation and contestant sanity after every
// settlement. A failure is a programming defect: fail fast with the state.
func (h *HandState) audit() {
	total := h.PotTotal()
	for _, p := range h.Players {
		if p.Wager < 0 || p.Stack < 0 {
			panic(&InvariantError{
				Reason: "negative chips for " + p.Name,
				Dump:   h.dump(),
			})
		}
		total += p.Stack + p.Wager
	}
	if total != h.startingTotal {
		panic(&InvariantError{
			Reason: "chip conservation broken",
			Dump:   h.dump(),
		})
	}
	for _, pot := range h.Pots {
		for _, c := range pot.Contestants {
			if c.Folded {
				panic(&InvariantError{
					Reason: "folded player " + c.Name + " contests a pot",
					Dump:   h.dump(),
				})
			}
		}
	}
}
