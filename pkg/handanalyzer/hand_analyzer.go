package handanalyzer

import (
	"sort"

	"showdown-server/pkg/deck"
)

// HandSize is the number of cards that make up a poker hand
const HandSize = 5

// HandAnalyzer analyzes exactly five cards
type HandAnalyzer struct {
	cards         deck.Hand
	flush         []int
	quads         []int
	trips         []int
	pairs         []int
	singles       []int
	straightFlush int
	straight      int

	hand     Hand
	strength Strength
}

type sortByRank []*deck.Card

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	return s[i].Rank < s[j].Rank
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// New returns a HandAnalyzer for a five card hand
// It panics if not exactly five cards are given, use Evaluate() for larger sets.
func New(cards []*deck.Card) *HandAnalyzer {
	if len(cards) != HandSize {
		panic("a hand analyzer requires exactly five cards")
	}

	// clone to prevent modifying original
	sortedCards := make(deck.Hand, len(cards))
	copy(sortedCards, cards)
	sort.Stable(sort.Reverse(sortByRank(sortedCards)))

	h := &HandAnalyzer{
		cards: sortedCards,
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()
	h.strength = h.getStrength()

	return h
}

// analyzeHand finds the rank groups, flush, and straights
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	suit := h.cards[0].Suit
	isFlush := true

	// cards are sorted by rank, so equal ranks are adjacent
	for i := 0; i < len(h.cards); {
		j := i
		for j < len(h.cards) && h.cards[j].Rank == h.cards[i].Rank {
			if h.cards[j].Suit != suit {
				isFlush = false
			}
			j++
		}

		rank := h.cards[i].Rank
		switch j - i {
		case 4:
			h.quads = append(h.quads, rank)
		case 3:
			h.trips = append(h.trips, rank)
		case 2:
			h.pairs = append(h.pairs, rank)
		default:
			h.singles = append(h.singles, rank)
		}

		i = j
	}

	h.straight = checkStraight(h.cards)

	if isFlush {
		h.flush = make([]int, len(h.cards))
		for i, card := range h.cards {
			h.flush[i] = card.Rank
		}

		h.straightFlush = h.straight
	}
}

// GetHand will return the best possible hand the cards can make
func (h *HandAnalyzer) GetHand() Hand {
	return h.hand
}

// GetStrength returns the strength vector of the hand
func (h *HandAnalyzer) GetStrength() Strength {
	return h.strength
}

// GetCards returns the cards sorted by descending rank
func (h *HandAnalyzer) GetCards() deck.Hand {
	return h.cards
}

// GetRoyalFlush will return true if there's a royal flush
func (h *HandAnalyzer) GetRoyalFlush() bool {
	return h.straightFlush == deck.Ace
}

// GetStraightFlush will return the best straight flush, if possible
func (h *HandAnalyzer) GetStraightFlush() (int, bool) {
	if h.straightFlush > 0 {
		return h.straightFlush, true
	}

	return 0, false
}

// GetFourOfAKind will return the four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	if len(h.quads) > 0 {
		return h.quads[0], true
	}

	return 0, false
}

// GetFullHouse will return the trips and the pair of a full house, if possible
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	if len(h.trips) == 0 || len(h.pairs) == 0 {
		return nil, false
	}

	return []int{h.trips[0], h.pairs[0]}, true
}

// GetFlush will return the flush ranks, if possible
func (h *HandAnalyzer) GetFlush() ([]int, bool) {
	if h.flush != nil {
		return h.flush, true
	}

	return nil, false
}

// GetStraight will return the top of the straight, if possible
// A wheel (A-2-3-4-5) has a top of 5
func (h *HandAnalyzer) GetStraight() (int, bool) {
	if h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetThreeOfAKind will return the three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	if len(h.trips) > 0 {
		return h.trips[0], true
	}

	return 0, false
}

// GetTwoPair will return both pairs, highest first, if possible
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	if len(h.pairs) >= 2 {
		return h.pairs[0:2], true
	}

	return nil, false
}

// GetPair will return the pair, if possible
func (h *HandAnalyzer) GetPair() (int, bool) {
	if len(h.pairs) > 0 {
		return h.pairs[0], true
	}

	return 0, false
}

// GetHighCard will return the ranks in descending order
func (h *HandAnalyzer) GetHighCard() ([]int, bool) {
	cards := make([]int, len(h.cards))
	for i, card := range h.cards {
		cards[i] = card.Rank
	}

	return cards, true
}

// calculateHand will determine the best hand
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	if _, ok := h.GetStraightFlush(); ok {
		h.hand = StraightFlush
	} else if _, ok := h.GetFourOfAKind(); ok {
		h.hand = FourOfAKind
	} else if _, ok := h.GetFullHouse(); ok {
		h.hand = FullHouse
	} else if _, ok := h.GetFlush(); ok {
		h.hand = Flush
	} else if _, ok := h.GetStraight(); ok {
		h.hand = Straight
	} else if _, ok := h.GetThreeOfAKind(); ok {
		h.hand = ThreeOfAKind
	} else if _, ok := h.GetTwoPair(); ok {
		h.hand = TwoPair
	} else if _, ok := h.GetPair(); ok {
		h.hand = OnePair
	} else {
		h.hand = HighCard
	}
}

// kickers returns the unmatched ranks, highest first
func (h *HandAnalyzer) kickers() []int {
	return h.singles
}

func (h *HandAnalyzer) getStrength() Strength {
	hand := h.GetHand()
	s := Strength{int(hand)}

	switch hand {
	case StraightFlush:
		top, _ := h.GetStraightFlush()
		return append(s, top)
	case FourOfAKind:
		quads, _ := h.GetFourOfAKind()
		return append(s, quads, h.kickers()[0])
	case FullHouse:
		fh, _ := h.GetFullHouse()
		return append(s, fh...)
	case Flush:
		f, _ := h.GetFlush()
		return append(s, f...)
	case Straight:
		top, _ := h.GetStraight()
		return append(s, top)
	case ThreeOfAKind:
		trips, _ := h.GetThreeOfAKind()
		return append(append(s, trips), h.kickers()...)
	case TwoPair:
		twoPair, _ := h.GetTwoPair()
		return append(append(s, twoPair...), h.kickers()...)
	case OnePair:
		pair, _ := h.GetPair()
		return append(append(s, pair), h.kickers()...)
	case HighCard:
		hc, _ := h.GetHighCard()
		return append(s, hc...)
	}

	panic("unknown hand")
}
