// Package simulator plays batches of hands and aggregates the results.
// Every hand derives its own RNG from the master seed, so a run is fully
// reproducible regardless of how many workers execute it.
package simulator

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/8hfv9fwc/poker-sim/internal/bot"
	"github.com/8hfv9fwc/poker-sim/internal/config"
	"github.com/8hfv9fwc/poker-sim/internal/game"
	"github.com/8hfv9fwc/poker-sim/internal/randutil"
	"github.com/8hfv9fwc/poker-sim/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Hands      int
	Seed       int64
	Workers    int // 0 means GOMAXPROCS
	Names      []string
	Strategies []string
	Stacks     []game.Chips
	SmallBlind game.Chips
	BigBlind   game.Chips
	Logger     *log.Logger
}

// FromConfig maps a loaded configuration file onto a simulator Config
func FromConfig(cfg *config.Config, logger *log.Logger) Config {
	strategies := make([]string, len(cfg.Players))
	for i, p := range cfg.Players {
		strategies[i] = p.Strategy
	}
	return Config{
		Hands:      cfg.Simulation.Hands,
		Seed:       cfg.Simulation.Seed,
		Workers:    cfg.Simulation.Workers,
		Names:      cfg.Names(),
		Strategies: strategies,
		Stacks:     cfg.Stacks(),
		SmallBlind: cfg.SmallBlindChips(),
		BigBlind:   cfg.BigBlindChips(),
		Logger:     logger,
	}
}

// Simulator runs poker hand simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run executes the simulation and returns aggregated statistics. Hands run
// concurrently across workers; each hand is seeded as master seed plus hand
// index and seating rotates one seat per hand so the blinds circulate.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	n := len(s.config.Names)
	if n < 2 {
		return nil, fmt.Errorf("at least two players required, got %d", n)
	}
	if len(s.config.Strategies) != n || len(s.config.Stacks) != n {
		return nil, fmt.Errorf("names, strategies and stacks must align")
	}
	if s.config.Hands <= 0 {
		return nil, fmt.Errorf("hands must be positive, got %d", s.config.Hands)
	}

	workers := s.config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make(chan statistics.HandResult, s.config.Hands)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for hand := 0; hand < s.config.Hands; hand++ {
		handSeed := s.config.Seed + int64(hand)
		offset := hand % n
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			result, err := s.playHand(handSeed, offset)
			if err != nil {
				return fmt.Errorf("hand with seed %d: %w", handSeed, err)
			}
			results <- result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	stats := statistics.New(s.config.Names, s.config.BigBlind)
	for result := range results {
		stats.Add(result)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// resultObserver captures how the hand ended
type resultObserver struct {
	foldOut bool
}

func (o *resultObserver) OnEvent(e game.Event) {
	if end, ok := e.(game.HandEndEvent); ok {
		o.foldOut = end.FoldOut
	}
}

// playHand plays one hand with its own RNG. Seat j at the table is taken
// by canonical player (j+offset) mod n, so the returned deltas are mapped
// back to canonical order.
func (s *Simulator) playHand(handSeed int64, offset int) (statistics.HandResult, error) {
	rng := randutil.New(handSeed)
	n := len(s.config.Names)

	names := make([]string, n)
	stacks := make([]game.Chips, n)
	strategies := make([]game.Strategy, n)
	for j := 0; j < n; j++ {
		idx := (j + offset) % n
		names[j] = s.config.Names[idx]
		stacks[j] = s.config.Stacks[idx]
		strategy, err := bot.New(s.config.Strategies[idx], rng, s.config.Logger)
		if err != nil {
			return statistics.HandResult{}, err
		}
		strategies[j] = strategy
	}

	observer := &resultObserver{}
	bus := game.NewEventBus()
	bus.Subscribe(observer)

	h := game.NewHand(rng, names, s.config.SmallBlind, s.config.BigBlind,
		game.WithStacks(stacks),
		game.WithEventBus(bus))
	if err := h.Run(strategies); err != nil {
		return statistics.HandResult{}, err
	}

	net := make([]game.Chips, n)
	for j, p := range h.Players {
		net[(j+offset)%n] = p.Stack - p.StartingStack
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("hand complete",
			"seed", handSeed,
			"pot", h.PotTotal(),
			"foldOut", observer.foldOut)
	}

	return statistics.HandResult{
		Seed:    handSeed,
		FoldOut: observer.foldOut,
		Pot:     h.PotTotal(),
		Net:     net,
	}, nil
}
