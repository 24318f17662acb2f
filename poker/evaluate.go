package poker

import (
	"fmt"
	"sort"
)

// Category is the poker hand-type ordinal, low to high.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Score is a packed hand strength forming a total order over 5-card hands:
// the category ordinal occupies the bits above 20, and the five rank values
// sit in the low 20 bits as nibbles ordered by (multiplicity desc, rank
// desc). Two hands of the same category therefore compare on the relevant
// group ranks first (quad rank, trip rank, pair ranks high-first) and then
// on kickers, never leaving a comparison undecided.
type Score uint32

// Category returns the hand category encoded in the score
func (s Score) Category() Category {
	return Category(s >> 20)
}

// Beats returns true if s strictly outranks other
func (s Score) Beats(other Score) bool {
	return s > other
}

// TiebreakRanks returns the five encoded rank values, strongest group first.
func (s Score) TiebreakRanks() [5]int {
	var ranks [5]int
	for i := 0; i < 5; i++ {
		ranks[i] = int(s>>(16-4*i)) & 0xF
	}
	return ranks
}

// String returns the category name of the score
func (s Score) String() string {
	return s.Category().String()
}

// Evaluate scores exactly 5 cards. Calling it with any other count is a
// programming defect.
func Evaluate(cards []Card) Score {
	if len(cards) != 5 {
		panic(fmt.Sprintf("evaluate requires exactly 5 cards, got %d", len(cards)))
	}

	var counts [15]int // indexed by rank value 2-14
	lowest, highest := 14, 2
	for _, c := range cards {
		v := c.Value()
		counts[v]++
		if v < lowest {
			lowest = v
		}
		if v > highest {
			highest = v
		}
	}

	flush := true
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			flush = false
			break
		}
	}

	distinct := 0
	pairs, trips, quads := 0, 0, 0
	for _, n := range counts {
		if n > 0 {
			distinct++
		}
		switch n {
		case 2:
			pairs++
		case 3:
			trips++
		case 4:
			quads++
		}
	}

	// Five consecutive distinct ranks, or the wheel: the ace counts high
	// everywhere else, so A-2-3-4-5 needs its own check.
	straight := false
	wheel := false
	if distinct == 5 {
		if highest-lowest == 4 {
			straight = true
		} else if counts[14] == 1 && counts[2] == 1 && counts[3] == 1 && counts[4] == 1 && counts[5] == 1 {
			straight = true
			wheel = true
		}
	}

	var category Category
	switch {
	case straight && flush && lowest == 10:
		category = RoyalFlush
	case straight && flush:
		category = StraightFlush
	case quads == 1:
		category = FourOfAKind
	case trips == 1 && pairs == 1:
		category = FullHouse
	case flush:
		category = Flush
	case straight:
		category = Straight
	case trips == 1:
		category = ThreeOfAKind
	case pairs == 2:
		category = TwoPair
	case pairs == 1:
		category = OnePair
	default:
		category = HighCard
	}

	return Score(uint32(category)<<20 | tiebreak(counts[:], wheel))
}

// tiebreak packs the five rank values into 20 bits, ordered by multiplicity
// descending then rank descending. The wheel encodes as 5-4-3-2-1 so a
// 5-high straight loses to every higher one.
func tiebreak(counts []int, wheel bool) uint32 {
	if wheel {
		return 5<<16 | 4<<12 | 3<<8 | 2<<4 | 1
	}

	type group struct {
		rank  int
		count int
	}
	groups := make([]group, 0, 5)
	for rank := 2; rank <= 14; rank++ {
		if counts[rank] > 0 {
			groups = append(groups, group{rank, counts[rank]})
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	var packed uint32
	shift := 16
	for _, g := range groups {
		for i := 0; i < g.count; i++ {
			packed |= uint32(g.rank) << shift
			shift -= 4
		}
	}
	return packed
}
