package bot

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/8hfv9fwc/poker-sim/internal/game"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func facingBetPrompt() game.ActionPrompt {
	return game.ActionPrompt{
		Offered:    []game.ActionKind{game.Raise, game.Call, game.Fold},
		CurrentBet: 10,
		MinRaise:   10,
		Stack:      190,
		Wager:      0,
		MaxBet:     190,
	}
}

func TestRandBotStaysInsideOfferedSet(t *testing.T) {
	bot := NewRandBot(rand.New(rand.NewSource(1)), testLogger())
	prompt := facingBetPrompt()

	for i := 0; i < 1000; i++ {
		action := bot.Decide(prompt)
		switch action.Kind {
		case game.Fold, game.Call:
		case game.Raise:
			if action.Amount <= prompt.CurrentBet {
				t.Fatalf("raise to %v does not exceed the current bet", action.Amount)
			}
			if action.Amount > prompt.MaxBet {
				t.Fatalf("raise to %v exceeds max bet %v", action.Amount, prompt.MaxBet)
			}
			if action.Amount < prompt.CurrentBet+prompt.MinRaise && action.Amount != prompt.MaxBet {
				t.Fatalf("raise to %v is below minimum and not all-in", action.Amount)
			}
		default:
			t.Fatalf("unexpected action kind %v", action.Kind)
		}
	}
}

func TestRandBotClampsRaiseToStack(t *testing.T) {
	bot := NewRandBot(rand.New(rand.NewSource(7)), testLogger())
	prompt := facingBetPrompt()
	prompt.Stack = 15
	prompt.MaxBet = 15

	for i := 0; i < 1000; i++ {
		action := bot.Decide(prompt)
		if action.Kind == game.Raise && action.Amount > 15 {
			t.Fatalf("raise to %v exceeds the 15-chip stack", action.Amount)
		}
	}
}

func TestCallBotAlwaysCalls(t *testing.T) {
	bot := NewCallBot(testLogger())
	if got := bot.Decide(facingBetPrompt()); got.Kind != game.Call {
		t.Errorf("Decide() = %v, want call", got.Kind)
	}
}

func TestFoldBotFoldsWhenOffered(t *testing.T) {
	bot := NewFoldBot(testLogger())

	if got := bot.Decide(facingBetPrompt()); got.Kind != game.Fold {
		t.Errorf("Decide() = %v, want fold when facing a bet", got.Kind)
	}

	free := game.ActionPrompt{Offered: []game.ActionKind{game.Raise, game.Call}}
	if got := bot.Decide(free); got.Kind != game.Call {
		t.Errorf("Decide() = %v, want check when nothing is owed", got.Kind)
	}
}

func TestManiacBotNeverFolds(t *testing.T) {
	bot := NewManiacBot(rand.New(rand.NewSource(3)), testLogger())
	prompt := facingBetPrompt()

	for i := 0; i < 1000; i++ {
		action := bot.Decide(prompt)
		if action.Kind == game.Fold {
			t.Fatal("maniac folded")
		}
		if action.Kind == game.Raise && action.Amount != prompt.MaxBet {
			t.Fatalf("maniac raised to %v, want a shove to %v", action.Amount, prompt.MaxBet)
		}
	}
}

func TestNewResolvesKnownNames(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, name := range []string{"rand", "call", "fold", "maniac"} {
		s, err := New(name, rng, testLogger())
		if err != nil {
			t.Errorf("New(%q) error: %v", name, err)
		}
		if s == nil {
			t.Errorf("New(%q) returned nil strategy", name)
		}
	}

	if _, err := New("gto-wizard", rng, testLogger()); err == nil {
		t.Error("New with an unknown name must error")
	}
}
