package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/8hfv9fwc/poker-sim/internal/bot"
	"github.com/8hfv9fwc/poker-sim/internal/config"
	"github.com/8hfv9fwc/poker-sim/internal/game"
	"github.com/8hfv9fwc/poker-sim/internal/randutil"
	"github.com/8hfv9fwc/poker-sim/internal/simulator"
	"github.com/8hfv9fwc/poker-sim/internal/statistics"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	lossStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type CLI struct {
	Config  string `short:"c" default:"pokersim.hcl" type:"path" help:"HCL configuration file"`
	Hands   int    `default:"0" help:"Override number of hands to simulate"`
	Seed    int64  `default:"0" help:"RNG seed (0 for random)"`
	Workers int    `default:"0" help:"Parallel workers (0 for GOMAXPROCS)"`
	Watch   bool   `short:"w" help:"Narrate a single hand instead of running a batch"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli)

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	cfg, err := config.Load(cli.Config)
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}
	if cli.Hands > 0 {
		cfg.Simulation.Hands = cli.Hands
	}
	if cli.Seed != 0 {
		cfg.Simulation.Seed = cli.Seed
	}
	if cli.Workers > 0 {
		cfg.Simulation.Workers = cli.Workers
	}
	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", "error", err)
	}

	fmt.Println(titleStyle.Render(" ♠ ♥ pokersim ♦ ♣ "))
	fmt.Println()

	if cli.Watch {
		if err := watchHand(cfg, logger); err != nil {
			logger.Fatal("Hand failed", "error", err)
		}
		kctx.Exit(0)
	}

	fmt.Printf("Simulating %d hands at %s/%s (seed %d)\n\n",
		cfg.Simulation.Hands, cfg.SmallBlindChips(), cfg.BigBlindChips(), cfg.Simulation.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	stats, err := simulator.New(simulator.FromConfig(cfg, logger)).Run(ctx)
	if err != nil {
		logger.Fatal("Simulation failed", "error", err)
	}
	printResults(stats, time.Since(start))

	kctx.Exit(0)
}

// watchHand plays one hand with every event narrated to stdout
func watchHand(cfg *config.Config, logger *log.Logger) error {
	rng := randutil.New(cfg.Simulation.Seed)

	strategies := make([]game.Strategy, len(cfg.Players))
	for i, p := range cfg.Players {
		strategy, err := bot.New(p.Strategy, rng, logger)
		if err != nil {
			return err
		}
		strategies[i] = strategy
	}

	bus := game.NewEventBus()
	bus.Subscribe(game.NewNarrator(os.Stdout))

	h := game.NewHand(rng, cfg.Names(), cfg.SmallBlindChips(), cfg.BigBlindChips(),
		game.WithStacks(cfg.Stacks()),
		game.WithEventBus(bus))
	return h.Run(strategies)
}

func printResults(stats *statistics.Statistics, duration time.Duration) {
	handsPerSec := float64(stats.Hands) / duration.Seconds()

	fmt.Println(headerStyle.Render("Results"))
	fmt.Printf("%d hands in %s (%.0f hands/sec)\n", stats.Hands, duration.Round(time.Millisecond), handsPerSec)
	fmt.Printf("%d showdowns, %d fold-outs, biggest pot %s\n\n", stats.Showdowns(), stats.FoldOuts, stats.MaxPot)

	fmt.Printf("%-12s %12s %12s %8s %22s\n", "player", "net", "bb/hand", "win%", "95% CI")
	for _, seat := range stats.Seats {
		low, high := seat.ConfidenceInterval95()
		net := seat.Net.String()
		if seat.Net > 0 {
			net = winStyle.Render(net)
		} else if seat.Net < 0 {
			net = lossStyle.Render(net)
		}
		fmt.Printf("%-12s %12s %12.3f %7.1f%% [%8.3f, %8.3f]\n",
			seat.Name, net, seat.Mean(),
			100*float64(seat.Wins)/float64(seat.Hands),
			low, high)
	}
}
