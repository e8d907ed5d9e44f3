package handanalyzer

import (
	"encoding/json"

	"showdown-server/pkg/deck"
)

// Result is the best five card hand found in a set of cards
// An incomplete result has no strength and no cards. It is returned when
// fewer than five cards are available, i.e., before the flop.
type Result struct {
	Strength Strength  `json:"strength"`
	Cards    deck.Hand `json:"cards"`
}

// Incomplete returns true if there were not enough cards to make a hand
func (r *Result) Incomplete() bool {
	return r == nil || len(r.Strength) == 0
}

// Hand returns the hand category
func (r *Result) Hand() Hand {
	return r.Strength.Hand()
}

// Name returns the display name of the hand
// A straight flush to the ace is reported as a royal flush.
func (r *Result) Name() string {
	if r.Incomplete() {
		return ""
	}

	if r.Hand() == StraightFlush && r.Strength.at(1) == deck.Ace {
		return "Royal flush"
	}

	return r.Hand().String()
}

// Compare compares two results, an incomplete result is weaker than any hand
func (r *Result) Compare(other *Result) int {
	switch {
	case r.Incomplete() && other.Incomplete():
		return 0
	case r.Incomplete():
		return -1
	case other.Incomplete():
		return 1
	}

	return r.Strength.Compare(other.Strength)
}

// MarshalJSON includes the display name of the hand
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Strength Strength  `json:"strength"`
		Cards    deck.Hand `json:"cards"`
		Name     string    `json:"name"`
	}{
		Strength: r.Strength,
		Cards:    r.Cards,
		Name:     r.Name(),
	})
}

// HasCard returns true if the physical card (by index) is part of the hand
func (r *Result) HasCard(card *deck.Card) bool {
	if r == nil {
		return false
	}

	for _, c := range r.Cards {
		if c.Index == card.Index {
			return true
		}
	}

	return false
}

// Evaluate returns the best five card hand that can be made from the cards
// Every five card subset is analyzed. On ties, the first subset found is kept.
func Evaluate(cards []*deck.Card) *Result {
	if len(cards) < HandSize {
		return &Result{}
	}

	var best *HandAnalyzer
	var bestCards deck.Hand
	for _, combo := range Combinations(cards, HandSize) {
		h := New(combo)
		if best == nil || h.GetStrength().Compare(best.GetStrength()) > 0 {
			best = h
			bestCards = combo
		}
	}

	return &Result{
		Strength: best.GetStrength(),
		Cards:    deck.Hand(bestCards).SortForReveal(),
	}
}
