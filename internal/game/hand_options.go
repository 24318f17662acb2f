package game

import (
	"math/rand"
	"time"

	"github.com/8hfv9fwc/poker-sim/poker"
)

// HandOption configures a HandState during creation
type HandOption func(*handConfig)

type handConfig struct {
	stacks       []Chips
	uniformStack Chips
	deck         *poker.Deck
	bus          *EventBus
}

// WithUniformStacks gives every player the same starting stack.
// The default is 200 big blinds.
func WithUniformStacks(stack Chips) HandOption {
	return func(c *handConfig) {
		c.uniformStack = stack
		c.stacks = nil
	}
}

// WithStacks sets individual starting stacks. The length must match the
// number of players.
func WithStacks(stacks []Chips) HandOption {
	return func(c *handConfig) {
		c.stacks = stacks
	}
}

// WithDeck supplies a prepared deck, overriding the RNG-shuffled one.
// Used by tests that need exact deals.
func WithDeck(deck *poker.Deck) HandOption {
	return func(c *handConfig) {
		c.deck = deck
	}
}

// WithEventBus attaches an event bus for narration and logging
func WithEventBus(bus *EventBus) HandOption {
	return func(c *handConfig) {
		c.bus = bus
	}
}

// NewHand seats the named players in order, posts blinds and deals hole
// cards. Seat 0 posts the small blind, seat 1 the big blind, and action
// starts left of the big blind. The RNG is required so randomness stays
// explicit and tests stay deterministic.
func NewHand(rng *rand.Rand, names []string, smallBlind, bigBlind Chips, opts ...HandOption) *HandState {
	if len(names) < 2 {
		panic("at least 2 players required")
	}
	if smallBlind <= 0 || bigBlind <= smallBlind {
		panic("blinds must satisfy 0 < smallBlind < bigBlind")
	}

	cfg := &handConfig{uniformStack: bigBlind * 200}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.stacks != nil && len(cfg.stacks) != len(names) {
		panic("stack counts must match number of players")
	}

	players := make([]*Player, len(names))
	total := Chips(0)
	for i, name := range names {
		stack := cfg.uniformStack
		if cfg.stacks != nil {
			stack = cfg.stacks[i]
		}
		players[i] = &Player{
			Seat:          i,
			Name:          name,
			Stack:         stack,
			StartingStack: stack,
			HasAction:     true,
		}
		total += stack
	}

	deck := cfg.deck
	if deck == nil {
		if rng == nil {
			panic("rng is required unless a deck is provided")
		}
		deck = poker.NewDeck(rng)
	}

	h := &HandState{
		Players:       players,
		Street:        Preflop,
		Deck:          deck,
		Betting:       NewBettingRound(len(players), bigBlind),
		SmallBlind:    smallBlind,
		BigBlind:      bigBlind,
		livePlayers:   len(players),
		startingTotal: total,
		turn:          2 % len(players),
		bus:           cfg.bus,
	}

	h.postBlinds()
	h.dealHoleCards()
	h.publish(HandStartEvent{Players: players, SmallBlind: smallBlind, BigBlind: bigBlind, timestamp: time.Now()})

	return h
}
