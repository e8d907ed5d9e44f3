package texasholdem

import (
	"showdown-server/pkg/deck"
	"showdown-server/pkg/handanalyzer"
)

// Leaders are the participants with the best hand so far
type Leaders struct {
	// Incomplete is true when there are not enough cards to make a hand
	Incomplete bool                  `json:"incomplete"`
	PlayerIDs  []int64               `json:"playerIds"`
	Cards      map[int64]deck.Hand   `json:"cards"`
	Strength   handanalyzer.Strength `json:"strength"`
}

// ranking is every participant's best hand and who holds the strongest one
type ranking struct {
	results map[int64]*handanalyzer.Result
	best    *handanalyzer.Result
	tied    []int64
}

func rank(participants []*Participant, board deck.Hand) *ranking {
	r := &ranking{
		results: make(map[int64]*handanalyzer.Result, len(participants)),
	}

	for _, p := range participants {
		res := p.evaluate(board)
		r.results[p.PlayerID] = res

		if res.Incomplete() {
			continue
		}

		switch cmp := res.Compare(r.best); {
		case r.best == nil || cmp > 0:
			r.best = res
			r.tied = []int64{p.PlayerID}
		case cmp == 0:
			r.tied = append(r.tied, p.PlayerID)
		}
	}

	return r
}

// EvaluateLeaders returns the participants tied for the best hand using their hole cards and the board
// If fewer than five cards are available, the result is incomplete and there are no leaders.
func EvaluateLeaders(participants []*Participant, board deck.Hand) *Leaders {
	r := rank(participants, board)
	if r.best == nil {
		return &Leaders{Incomplete: true}
	}

	l := &Leaders{
		PlayerIDs: r.tied,
		Cards:     make(map[int64]deck.Hand, len(r.tied)),
		Strength:  r.best.Strength,
	}

	for _, id := range r.tied {
		l.Cards[id] = r.results[id].Cards
	}

	return l
}

// IsLeader returns true if the player is one of the leaders
func (l *Leaders) IsLeader(playerID int64) bool {
	if l == nil {
		return false
	}

	for _, id := range l.PlayerIDs {
		if id == playerID {
			return true
		}
	}

	return false
}
