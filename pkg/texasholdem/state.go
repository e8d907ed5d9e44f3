package texasholdem

import (
	"showdown-server/pkg/deck"
)

// State is a JSON friendly view of the round
type State struct {
	Phase        Phase              `json:"phase"`
	Participants []*participantJSON `json:"participants"`
	Board        deck.Hand          `json:"board"`
	DeckPosition int                `json:"deckPosition"`
	Leaders      *Leaders           `json:"leaders"`
	Winners      []int64            `json:"winners"`
}

// State returns the current state of the round
func (r *Round) State() *State {
	participants := make([]*participantJSON, len(r.participantOrder))
	for i, id := range r.participantOrder {
		participants[i] = r.participants[id].participantJSON()
	}

	var winners []int64
	if r.showdown != nil {
		winners = r.showdown.Winners
	}

	return &State{
		Phase:        r.phase,
		Participants: participants,
		Board:        r.board,
		DeckPosition: r.deck.Position(),
		Leaders:      r.leaders,
		Winners:      winners,
	}
}
