// Package game implements the core of a single no-limit hold'em hand: the
// betting state machine, main/side pot settlement and showdown resolution.
//
// The main type is HandState, an explicit per-hand context. Construct one
// with NewHand, then either drive it action by action with Apply or play it
// out with Run against a set of Strategy implementations:
//
//	rng := rand.New(rand.NewSource(seed))
//	h := game.NewHand(rng, []string{"Alan", "Bob", "Charlie"}, 1, 2)
//	err := h.Run(strategies)
//
// Everything inside a hand is strictly single-threaded: exactly one player
// acts at a time in seating order, and the engine blocks on each strategy's
// Decide call. Chip amounts are integer minor units (Chips) throughout.
//
// State transitions are published to an optional EventBus (see
// WithEventBus) for narration and logging; subscribers are a side-channel
// and never affect correctness.
package game
