// Package statistics aggregates simulation outcomes per seat. Results are
// additive, so aggregation order never affects the totals and parallel
// workers can feed a single collector.
package statistics

import (
	"fmt"
	"math"

	"github.com/8hfv9fwc/poker-sim/internal/game"
)

// HandResult represents the outcome of a single simulated hand
type HandResult struct {
	Seed    int64 // RNG seed for this hand (for replay)
	FoldOut bool  // hand ended without a showdown
	Pot     game.Chips
	// Net holds each player's chip delta in canonical seat order. The
	// deltas of one hand always sum to zero.
	Net []game.Chips
}

// SeatStats tracks one player's results across the run
type SeatStats struct {
	Name   string
	Hands  int
	Net    game.Chips
	SumBB  float64
	SumBB2 float64 // sum of squares for variance calculation
	Wins   int     // hands finished with a positive delta
}

// Mean returns the player's average result in big blinds per hand
func (s *SeatStats) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance of the player's results
func (s *SeatStats) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation of the player's results
func (s *SeatStats) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *SeatStats) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *SeatStats) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Statistics tracks the whole simulation run
type Statistics struct {
	BigBlind game.Chips
	Hands    int
	FoldOuts int
	MaxPot   game.Chips
	Seats    []SeatStats
}

// New creates empty statistics for the named players
func New(names []string, bigBlind game.Chips) *Statistics {
	seats := make([]SeatStats, len(names))
	for i, name := range names {
		seats[i].Name = name
	}
	return &Statistics{BigBlind: bigBlind, Seats: seats}
}

// Add incorporates a new hand result into the statistics
func (s *Statistics) Add(result HandResult) {
	s.Hands++
	if result.FoldOut {
		s.FoldOuts++
	}
	if result.Pot > s.MaxPot {
		s.MaxPot = result.Pot
	}

	for i := range s.Seats {
		if i >= len(result.Net) {
			break
		}
		seat := &s.Seats[i]
		netBB := result.Net[i].Float() / s.BigBlind.Float()
		seat.Hands++
		seat.Net += result.Net[i]
		seat.SumBB += netBB
		seat.SumBB2 += netBB * netBB
		if result.Net[i] > 0 {
			seat.Wins++
		}
	}
}

// Validate checks internal consistency: every chip a player won came from
// another player, so the seat deltas must sum to zero.
func (s *Statistics) Validate() error {
	total := game.Chips(0)
	for _, seat := range s.Seats {
		total += seat.Net
		if seat.Hands != s.Hands {
			return fmt.Errorf("seat %s played %d of %d hands", seat.Name, seat.Hands, s.Hands)
		}
	}
	if total != 0 {
		return fmt.Errorf("seat deltas sum to %v, want 0", total)
	}
	return nil
}

// Showdowns returns the number of hands that reached a showdown
func (s *Statistics) Showdowns() int {
	return s.Hands - s.FoldOuts
}
