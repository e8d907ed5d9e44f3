package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♡", NewCard(2, Hearts).String())
	assert.Equal(t, "J♣", NewCard(11, Clubs).String())
	assert.Equal(t, "Q♢", NewCard(12, Diamonds).String())
	assert.Equal(t, "K♠", NewCard(13, Spades).String())
	assert.Equal(t, "A♠", NewCard(14, Spades).String())
}

func TestNewCard_Index(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, NewCard(2, Clubs).Index)
	a.Equal(12, NewCard(Ace, Clubs).Index)
	a.Equal(13, NewCard(2, Diamonds).Index)
	a.Equal(51, NewCard(Ace, Spades).Index)

	a.PanicsWithValue("unknown suit: stars", func() {
		NewCard(2, Suit("stars"))
	})
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)
	a.Nil(CardFromString(""))
	a.Equal(NewCard(10, Hearts), CardFromString("10h"))
	a.Equal(NewCard(Ace, Spades), CardFromString("14S"))

	a.PanicsWithValue("could not parse card: 1s", func() {
		CardFromString("1s")
	})

	a.PanicsWithValue("could not parse card: 15s", func() {
		CardFromString("15s")
	})

	cards := CardsFromString("2c,13d,14s")
	a.Len(cards, 3)
	a.Equal("2c,13d,14s", CardsToString(cards))
	a.Equal(0, len(CardsFromString("")))
	a.Equal("", CardToString(nil))
}

func TestCard_RevealsBefore(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("14c").RevealsBefore(CardFromString("13s")))
	a.True(CardFromString("9s").RevealsBefore(CardFromString("9h")))
	a.True(CardFromString("9h").RevealsBefore(CardFromString("9d")))
	a.True(CardFromString("9d").RevealsBefore(CardFromString("9c")))
	a.False(CardFromString("9c").RevealsBefore(CardFromString("9s")))
}

func TestCard_AceLowRank(t *testing.T) {
	assert.Equal(t, 1, CardFromString("14d").AceLowRank())
	assert.Equal(t, 13, CardFromString("13d").AceLowRank())
}

func TestCard_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(CardFromString("12d"))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"rank":12,"suit":"diamonds","index":23,"label":"Q♢"}`, string(b))
}
