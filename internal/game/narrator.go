package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/8hfv9fwc/poker-sim/poker"
)

// Narrator subscribes to the event bus and prints a play-by-play of the
// hand. It is purely an observer; the engine never prints.
type Narrator struct {
	w io.Writer

	street  lipgloss.Style
	pot     lipgloss.Style
	fold    lipgloss.Style
	win     lipgloss.Style
	redCard lipgloss.Style
}

// NewNarrator creates a narrator writing to w
func NewNarrator(w io.Writer) *Narrator {
	return &Narrator{
		w:       w,
		street:  lipgloss.NewStyle().Bold(true),
		pot:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		fold:    lipgloss.NewStyle().Faint(true),
		win:     lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
		redCard: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// OnEvent implements Observer
func (n *Narrator) OnEvent(event Event) {
	switch e := event.(type) {
	case HandStartEvent:
		fmt.Fprintf(n.w, "%s %d players • %s/%s\n",
			n.street.Render("--- new hand ---"), len(e.Players), e.SmallBlind, e.BigBlind)
		for _, p := range e.Players {
			fmt.Fprintf(n.w, "%-10s %s stack %s\n", p.Name, n.cards(p.Hole), p.Stack)
		}
	case BlindPostedEvent:
		blind := "small blind"
		if e.Big {
			blind = "big blind"
		}
		fmt.Fprintf(n.w, "%s posts %s %s\n", e.Player.Name, blind, e.Amount)
	case PlayerActionEvent:
		n.action(e)
	case StreetChangeEvent:
		fmt.Fprintf(n.w, "%s %s\n", n.street.Render("--- "+e.Street.String()+" ---"), n.cards(e.Board))
	case BetReturnedEvent:
		fmt.Fprintf(n.w, "uncalled bet %s returned to %s\n", e.Amount, e.Player.Name)
	case PotSettledEvent:
		fmt.Fprintf(n.w, "pot %d now %s\n", e.PotIndex+1, n.pot.Render(e.Value.String()))
	case PotAwardedEvent:
		hand := ""
		if e.Hand != "" {
			hand = " with " + e.Hand
		}
		fmt.Fprintf(n.w, "%s\n", n.win.Render(fmt.Sprintf("%s wins %s%s", e.Player.Name, e.Amount, hand)))
	case HandEndEvent:
		fmt.Fprintln(n.w, n.street.Render("--- hand complete ---"))
	}
}

func (n *Narrator) action(e PlayerActionEvent) {
	switch {
	case e.Kind == Fold:
		fmt.Fprintln(n.w, n.fold.Render(e.Player.Name+" folds"))
	case e.Check:
		fmt.Fprintf(n.w, "%s checks\n", e.Player.Name)
	case e.Kind == Call && e.AllIn:
		fmt.Fprintf(n.w, "%s calls %s and is all in\n", e.Player.Name, e.Amount)
	case e.Kind == Call:
		fmt.Fprintf(n.w, "%s calls %s\n", e.Player.Name, e.Amount)
	case e.AllIn:
		fmt.Fprintf(n.w, "%s bets %s and is all in\n", e.Player.Name, e.Amount)
	default:
		fmt.Fprintf(n.w, "%s bets %s\n", e.Player.Name, e.Amount)
	}
}

func (n *Narrator) cards(cards []poker.Card) string {
	if len(cards) == 0 {
		return "[]"
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.IsRed() {
			parts[i] = n.redCard.Render(c.String())
		} else {
			parts[i] = c.String()
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
