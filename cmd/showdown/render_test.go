package main

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"showdown-server/pkg/deck"
	"showdown-server/pkg/table"
	"showdown-server/pkg/texasholdem"
)

func TestFormatMessage(t *testing.T) {
	a := assert.New(t)
	names := map[int64]string{1: "Alice", 2: "Bob", 3: "Carol"}

	a.Equal("The turn is 9♢", formatMessage("The turn is 9♢", nil, names))
	a.Equal("Alice was dealt A♢", formatMessage("{} was dealt A♢", []int64{1}, names))
	a.Equal("Alice and Bob won with Pair", formatMessage("{} won with Pair", []int64{1, 2}, names))
	a.Equal("Alice, Bob and Carol won with Pair", formatMessage("{} won with Pair", []int64{1, 2, 3}, names))
}

func TestScoreboardData(t *testing.T) {
	players := []*table.Player{
		{ID: 1, Name: "Alice", Points: 3},
		{ID: 2, Name: "Bob", Points: 1},
	}

	result := &texasholdem.ShowdownResult{Winners: []int64{2}}
	assert.Equal(t, pterm.TableData{
		{"Player", "Points", ""},
		{"Alice", "3", ""},
		{"Bob", "1", "+1"},
	}, scoreboardData(players, result))
}

func TestCardLabels(t *testing.T) {
	assert.Equal(t, "A♠ 10♡ 2♣", cardLabels(deck.CardsFromString("14s,10h,2c")))
}
