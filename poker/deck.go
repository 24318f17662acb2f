package poker

import (
	"fmt"
	"math/rand"
)

// Deck represents a standard 52-card deck
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a new shuffled deck with an explicit RNG. Randomness is
// always injected so tests can run deterministically.
func NewDeck(rng *rand.Rand) *Deck {
	d := newOrdered()
	d.rng = rng
	d.Shuffle()
	return d
}

// NewOrderedDeck creates an unshuffled deck for deterministic tests.
// Cards run Two through Ace within each suit, spades first.
func NewOrderedDeck() *Deck {
	return newOrdered()
}

// NewStackedDeck places the given cards on top in order, with the rest of
// the deck following in its natural order. For tests that need exact deals.
func NewStackedDeck(top []Card) *Deck {
	d := &Deck{}
	onTop := make(map[Card]bool, len(top))
	i := 0
	for _, c := range top {
		if onTop[c] {
			panic(fmt.Sprintf("duplicate card %v in stacked deck", c))
		}
		onTop[c] = true
		d.cards[i] = c
		i++
	}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			c := NewCard(rank, suit)
			if !onTop[c] {
				d.cards[i] = c
				i++
			}
		}
	}
	return d
}

func newOrdered() *Deck {
	d := &Deck{}
	i := 0
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}
	return d
}

// Shuffle reshuffles the full deck using Fisher-Yates
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.Intn(i + 1)
		} else {
			j = rand.Intn(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw deals n cards from the top of the deck. Each card is dealt once per
// shuffle; exhausting the deck is a programming defect.
func (d *Deck) Draw(n int) []Card {
	if d.next+n > len(d.cards) {
		panic(fmt.Sprintf("deck exhausted: %d cards requested, %d remaining", n, d.CardsRemaining()))
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// DrawOne deals a single card from the deck
func (d *Deck) DrawOne() Card {
	return d.Draw(1)[0]
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
