package handanalyzer

import (
	"showdown-server/pkg/deck"
)

// checkStraight returns the top rank of a five card straight, or 0 if there isn't one
// The ace plays high (10-J-Q-K-A, top 14) or low (A-2-3-4-5, top 5).
func checkStraight(cards deck.Hand) int {
	filledRanks := make(map[int]bool, len(cards))
	for _, card := range cards {
		filledRanks[card.Rank] = true
		if card.Rank == deck.Ace {
			filledRanks[deck.LowAce] = true
		}
	}

	// going from high to low, the first run found is the best
	for start := deck.Ace - HandSize + 1; start >= deck.LowAce; start-- {
		found := true
		for i := 0; i < HandSize; i++ {
			if !filledRanks[start+i] {
				found = false
				break
			}
		}

		if found {
			return start + HandSize - 1
		}
	}

	return 0
}
