package poker

import "fmt"

// BestHand enumerates every 5-card subset of the given cards (21 subsets
// for the 7-card showdown case) and returns the highest score together
// with the winning subset. Pure function; callers cache the result when
// repeated lookups matter.
func BestHand(cards []Card) (Score, []Card) {
	if len(cards) < 5 {
		panic(fmt.Sprintf("best hand requires at least 5 cards, got %d", len(cards)))
	}

	var best Score
	var bestCards []Card
	subset := make([]Card, 5)

	var choose func(start, depth int)
	choose = func(start, depth int) {
		if depth == 5 {
			score := Evaluate(subset)
			if bestCards == nil || score.Beats(best) {
				best = score
				bestCards = append([]Card(nil), subset...)
			}
			return
		}
		for i := start; i <= len(cards)-(5-depth); i++ {
			subset[depth] = cards[i]
			choose(i+1, depth+1)
		}
	}
	choose(0, 0)

	return best, bestCards
}
