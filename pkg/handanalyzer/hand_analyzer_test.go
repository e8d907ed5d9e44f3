package handanalyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"showdown-server/pkg/deck"
)

func strengthOf(s string) Strength {
	return New(deck.CardsFromString(s)).GetStrength()
}

func TestNew_RequiresFiveCards(t *testing.T) {
	assert.PanicsWithValue(t, "a hand analyzer requires exactly five cards", func() {
		New(deck.CardsFromString("2c,3c,4c,5c"))
	})
}

func TestHandAnalyzer_GetFourOfAKind(t *testing.T) {
	h := New(deck.CardsFromString("2c,3c,3d,3h,3s"))
	r, ok := h.GetFourOfAKind()
	assert.True(t, ok)
	assert.Equal(t, 3, r)
	_, ok = h.GetThreeOfAKind()
	assert.False(t, ok)
	_, ok = h.GetPair()
	assert.False(t, ok)
	assert.Equal(t, Strength{7, 3, 2}, h.GetStrength())

	h = New(deck.CardsFromString("9s,4h,5c,4d,4c"))
	r, ok = h.GetFourOfAKind()
	assert.False(t, ok)
	assert.Equal(t, 0, r)
}

func TestHandAnalyzer_GetFullHouse(t *testing.T) {
	h := New(deck.CardsFromString("2c,14d,2d,14h,14c"))
	r, ok := h.GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, []int{14, 2}, r)
	assert.Equal(t, FullHouse, h.GetHand())

	h = New(deck.CardsFromString("3c,3d,3h,4c,5d"))
	r, ok = h.GetFullHouse()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetHighCard(t *testing.T) {
	h := New(deck.CardsFromString("14c,2c,5c,8d,3h"))
	r, ok := h.GetHighCard()
	assert.Equal(t, []int{14, 8, 5, 3, 2}, r)
	assert.True(t, ok)
	assert.Equal(t, HighCard, h.GetHand())
	assert.Equal(t, "14c,8d,5c,3h,2c", h.GetCards().String())
}

func TestHandAnalyzer_GetTwoPair(t *testing.T) {
	h := New(deck.CardsFromString("5c,5d,6h,6d,3h"))
	r, ok := h.GetTwoPair()
	assert.True(t, ok)
	assert.Equal(t, []int{6, 5}, r)

	h = New(deck.CardsFromString("2c,2d,3h,4h,5d"))
	r, ok = h.GetTwoPair()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetFlush(t *testing.T) {
	h := New(deck.CardsFromString("2c,9c,4c,5c,6c"))
	r, ok := h.GetFlush()
	assert.True(t, ok)
	assert.Equal(t, []int{9, 6, 5, 4, 2}, r)

	h = New(deck.CardsFromString("2c,3c,4c,5c,7d"))
	r, ok = h.GetFlush()
	assert.False(t, ok)
	assert.Nil(t, r)
}

// nolint:dupl
func TestHandAnalyzer_GetStraight(t *testing.T) {
	h := New(deck.CardsFromString("2c,3d,4h,5s,6c"))
	r, ok := h.GetStraight()
	assert.True(t, ok)
	assert.Equal(t, 6, r)

	h = New(deck.CardsFromString("2c,3d,4s,5h,14s"))
	r, ok = h.GetStraight()
	assert.True(t, ok)
	assert.Equal(t, 5, r)

	h = New(deck.CardsFromString("10c,11d,12s,13h,14s"))
	r, ok = h.GetStraight()
	assert.True(t, ok)
	assert.Equal(t, 14, r)

	// no wrap-around
	h = New(deck.CardsFromString("12c,13d,14s,2h,3s"))
	r, ok = h.GetStraight()
	assert.False(t, ok)
	assert.Equal(t, 0, r)
}

// nolint:dupl
func TestHandAnalyzer_GetStraightFlush(t *testing.T) {
	h := New(deck.CardsFromString("2c,3c,4c,5c,6c"))
	r, ok := h.GetStraightFlush()
	assert.True(t, ok)
	assert.Equal(t, 6, r)
	assert.False(t, h.GetRoyalFlush())

	h = New(deck.CardsFromString("2s,3s,4s,5s,14s"))
	r, ok = h.GetStraightFlush()
	assert.True(t, ok)
	assert.Equal(t, 5, r)

	h = New(deck.CardsFromString("10s,11s,12s,13s,14s"))
	assert.True(t, h.GetRoyalFlush())
	assert.Equal(t, Strength{8, 14}, h.GetStrength())
}

func TestHandAnalyzer_GetHand(t *testing.T) {
	for _, tc := range []struct {
		cards    string
		hand     Hand
		strength Strength
	}{
		{"10c,11c,12c,13c,14c", StraightFlush, Strength{8, 14}},
		{"9h,10h,11h,12h,13h", StraightFlush, Strength{8, 13}},
		{"14d,2d,3d,4d,5d", StraightFlush, Strength{8, 5}},
		{"7c,7d,7h,7s,13c", FourOfAKind, Strength{7, 7, 13}},
		{"13c,13d,13h,2s,2c", FullHouse, Strength{6, 13, 2}},
		{"12c,12d,12h,14s,14c", FullHouse, Strength{6, 12, 14}},
		{"2h,4h,8h,11h,13h", Flush, Strength{5, 13, 11, 8, 4, 2}},
		{"14c,2d,3h,4s,5c", Straight, Strength{4, 5}},
		{"2d,3h,4s,5c,6c", Straight, Strength{4, 6}},
		{"9c,9d,9h,14s,2c", ThreeOfAKind, Strength{3, 9, 14, 2}},
		{"14c,14d,13h,13s,2c", TwoPair, Strength{2, 14, 13, 2}},
		{"14c,14d,13h,13s,3c", TwoPair, Strength{2, 14, 13, 3}},
		{"10c,10d,14h,4s,2c", OnePair, Strength{1, 10, 14, 4, 2}},
		{"14c,9d,7h,4s,2c", HighCard, Strength{0, 14, 9, 7, 4, 2}},
	} {
		h := New(deck.CardsFromString(tc.cards))
		assert.Equal(t, tc.hand, h.GetHand(), tc.cards)
		assert.Equal(t, tc.strength, h.GetStrength(), tc.cards)
	}
}

func TestHandAnalyzer_Ordering(t *testing.T) {
	a := assert.New(t)

	// wheel loses to a six-high straight
	a.Equal(-1, strengthOf("14c,2d,3h,4s,5c").Compare(strengthOf("2d,3h,4s,5c,6c")))

	// royal flush beats any other straight flush
	a.Equal(1, strengthOf("10s,11s,12s,13s,14s").Compare(strengthOf("9h,10h,11h,12h,13h")))

	// trips decide a full house regardless of the pair
	a.Equal(1, strengthOf("13c,13d,13h,2s,2c").Compare(strengthOf("12c,12d,12h,14s,14c")))

	// two pair falls back to the kicker
	a.Equal(-1, strengthOf("14c,14d,13h,13s,2c").Compare(strengthOf("14h,14s,13c,13d,3c")))

	// suits never break a tie
	a.Equal(0, strengthOf("14c,14d,9h,7s,2c").Compare(strengthOf("14h,14s,9c,7d,2h")))

	// category beats tiebreaks
	a.Equal(1, strengthOf("2c,2d,3h,4s,5c").Compare(strengthOf("14c,13d,11h,9s,7c")))
}

func BenchmarkNew(b *testing.B) {
	cards := deck.CardsFromString("3s,5s,6h,7h,11c")
	for i := 0; i < b.N; i++ {
		New(cards).GetHand()
	}
}
