package texasholdem

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"showdown-server/internal/rng"
	"showdown-server/pkg/deck"
)

func setupNewRound(playerIDs ...int64) *Round {
	round, err := NewRound(logrus.StandardLogger(), playerIDs, rng.Seeded(1))
	if err != nil {
		panic(err)
	}

	return round
}

// setupStackedRound returns a round that will deal the cards in the order given
func setupStackedRound(cards string, playerIDs ...int64) *Round {
	round := setupNewRound(playerIDs...)
	round.deck.Cards = deck.CardsFromString(cards)

	return round
}

func advanceTo(t *testing.T, round *Round, phase Phase) {
	t.Helper()
	for round.Phase() < phase {
		if !assert.NoError(t, round.Advance()) {
			return
		}
	}
}

func eventTypes(events []*Event) []EventType {
	types := make([]EventType, len(events))
	for i, e := range events {
		types[i] = e.Type
	}

	return types
}
