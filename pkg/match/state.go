package match

import (
	"showdown-server/pkg/table"
	"showdown-server/pkg/texasholdem"
)

// State is a JSON friendly view of the match
type State struct {
	Players     []table.Player     `json:"players"`
	Options     Options            `json:"options"`
	RoundNumber int                `json:"roundNumber"`
	Round       *texasholdem.State `json:"round"`
	Champion    *Champion          `json:"champion"`
}

// State returns a copy of the current match state
func (m *Match) State() *State {
	players := make([]table.Player, len(m.players))
	for i, p := range m.players {
		players[i] = *p
	}

	var round *texasholdem.State
	if m.round != nil {
		round = m.round.State()
	}

	return &State{
		Players:     players,
		Options:     m.options,
		RoundNumber: m.roundNumber,
		Round:       round,
		Champion:    m.champion,
	}
}
