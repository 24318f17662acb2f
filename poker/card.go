package poker

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. Suits carry no ordering; only ranks
// participate in hand comparison.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Aces are high (14); the wheel straight
// treats them as low during evaluation only.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Value returns the numeric rank value (2-14) for comparison.
func (r Rank) Value() int {
	return int(r)
}

// Card represents a playing card. Immutable value type.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Value returns the numeric rank value of the card for comparison.
// Comparing cards compares ranks only; suits never order cards.
func (c Card) Value() int {
	return c.Rank.Value()
}

// ParseCard parses a card from a string such as "A♠" or "Ts". Both suit
// symbols and the letters s/h/d/c are accepted.
func ParseCard(s string) (Card, error) {
	runes := []rune(s)
	if len(runes) != 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	var rank Rank
	switch runes[0] {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = Rank(runes[0] - '0')
	case 'T':
		rank = Ten
	case 'J':
		rank = Jack
	case 'Q':
		rank = Queen
	case 'K':
		rank = King
	case 'A':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid rank %q", string(runes[0]))
	}

	var suit Suit
	switch runes[1] {
	case '♠', 's':
		suit = Spades
	case '♥', 'h':
		suit = Hearts
	case '♦', 'd':
		suit = Diamonds
	case '♣', 'c':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid suit %q", string(runes[1]))
	}

	return NewCard(rank, suit), nil
}

// MustParseCards parses a space-separated card list, panicking on any
// invalid card. Intended for tests and fixtures.
func MustParseCards(s string) []Card {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return cards
}
