package texasholdem

import (
	"fmt"

	"showdown-server/pkg/deck"
	"showdown-server/pkg/handanalyzer"
)

// ShowdownResult is the outcome of a round
// Every participant tied for the best hand is a winner.
type ShowdownResult struct {
	Winners               []int64                        `json:"winners"`
	PerPlayer             map[int64]*handanalyzer.Result `json:"perPlayer"`
	HighlightedBoardCards deck.Hand                      `json:"highlightedBoardCards"`
}

// IsWinner returns true if the player is one of the winners
func (s *ShowdownResult) IsWinner(playerID int64) bool {
	for _, id := range s.Winners {
		if id == playerID {
			return true
		}
	}

	return false
}

func (r *Round) revealWinner() {
	ranked := rank(r.Participants(), r.board)
	if ranked.best == nil {
		// seven cards are always available at the river
		panic("could not rank participants at showdown")
	}

	result := &ShowdownResult{
		Winners:               ranked.tied,
		PerPlayer:             ranked.results,
		HighlightedBoardCards: make(deck.Hand, 0, len(r.board)),
	}

	for _, id := range r.participantOrder {
		p := r.participants[id]
		res := ranked.results[id]
		p.handName = res.Name()

		if result.IsWinner(id) {
			p.result = resultWon
			p.winningCards = res.Cards
		} else {
			p.result = resultLost
		}
	}

	for _, c := range r.board {
		for _, id := range result.Winners {
			if ranked.results[id].HasCard(c) {
				result.HighlightedBoardCards.AddCard(c)
				break
			}
		}
	}

	r.showdown = result
	r.phase = PhaseShowdown

	r.emit(newEvent(EventShowdown, result.Winners, result.HighlightedBoardCards, "{} won with %s", ranked.best.Name()))
}

// ShowdownResult returns the winners and every participant's best hand
func (r *Round) ShowdownResult() (*ShowdownResult, error) {
	if r.phase != PhaseShowdown {
		return nil, fmt.Errorf("showdown result is not available during %s: %w", r.phase, ErrWrongPhase)
	}

	return r.showdown, nil
}
