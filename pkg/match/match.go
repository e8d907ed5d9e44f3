package match

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"showdown-server/internal/rng"
	"showdown-server/pkg/handanalyzer"
	"showdown-server/pkg/table"
	"showdown-server/pkg/texasholdem"
)

// ErrMatchOver is returned when a champion has already been decided
var ErrMatchOver = errors.New("match is over")

// ErrAlreadyScored is returned when the current round has already been scored
var ErrAlreadyScored = errors.New("round has already been scored")

// ErrNoRound is returned when scoring before any round has started
var ErrNoRound = errors.New("no round has been started")

// Champion is the player that won the match
type Champion struct {
	PlayerID int64                `json:"playerId"`
	Name     string               `json:"name"`
	Points   int                  `json:"points"`
	Hand     *handanalyzer.Result `json:"hand"`
}

// Match tracks points across rounds until there is a champion
// A Match is not safe for concurrent use.
type Match struct {
	logger      logrus.FieldLogger
	gen         rng.Generator
	options     Options
	players     []*table.Player
	round       *texasholdem.Round
	roundNumber int
	scored      bool
	champion    *Champion
}

// NewMatch returns a new match for the names
// If no usable names are given, the default two player roster is seated.
func NewMatch(logger logrus.FieldLogger, names []string, opts Options, gen rng.Generator) (*Match, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if n := len(table.CleanNames(names)); n > table.MaxPlayers {
		logger.WithField("players", n).Warnf("only the first %d players are seated", table.MaxPlayers)
	}

	players, err := table.NewRoster(names)
	if err != nil {
		if !errors.Is(err, table.ErrEmptyRoster) {
			return nil, err
		}

		logger.WithError(err).Warn("using the default roster")
		players = table.DefaultRoster()
	}

	return &Match{
		logger:  logger,
		gen:     gen,
		options: opts,
		players: players,
	}, nil
}

// Options returns the match options
func (m *Match) Options() Options {
	return m.options
}

// Players returns the players in seat order
func (m *Match) Players() []*table.Player {
	return m.players
}

// Player returns the player with the ID
func (m *Match) Player(id int64) (*table.Player, bool) {
	for _, p := range m.players {
		if p.ID == id {
			return p, true
		}
	}

	return nil, false
}

// Round returns the current round, or nil if no round has started
func (m *Match) Round() *texasholdem.Round {
	return m.round
}

// RoundNumber returns how many rounds have started
func (m *Match) RoundNumber() int {
	return m.roundNumber
}

// Champion returns the champion, or nil if the match continues
func (m *Match) Champion() *Champion {
	return m.champion
}

// IsOver returns true if there is a champion
func (m *Match) IsOver() bool {
	return m.champion != nil
}

// StartRound shuffles a new deck and deals the hole cards
func (m *Match) StartRound() (*texasholdem.Round, error) {
	if m.IsOver() {
		return nil, ErrMatchOver
	}

	ids := make([]int64, len(m.players))
	for i, p := range m.players {
		ids[i] = p.ID
	}

	round, err := texasholdem.NewRound(m.logger.WithField("round", m.roundNumber+1), ids, m.gen)
	if err != nil {
		return nil, err
	}

	if err := round.Start(); err != nil {
		return nil, err
	}

	m.roundNumber++
	m.round = round
	m.scored = false

	return round, nil
}

// ApplyScoring gives a point to every winner and checks for a champion
// The champion is returned once decided.
func (m *Match) ApplyScoring(result *texasholdem.ShowdownResult) (*Champion, error) {
	if m.IsOver() {
		return nil, ErrMatchOver
	}

	if m.round == nil {
		return nil, ErrNoRound
	}

	if m.scored {
		return nil, ErrAlreadyScored
	}

	if result == nil || len(result.Winners) == 0 {
		return nil, errors.New("showdown result has no winners")
	}

	winners := make([]*table.Player, len(result.Winners))
	for i, id := range result.Winners {
		p, ok := m.Player(id)
		if !ok {
			return nil, fmt.Errorf("winner %d is not in the match", id)
		}

		winners[i] = p
	}

	for _, p := range winners {
		p.AddPoints(1)
	}
	m.scored = true

	m.logger.WithFields(logrus.Fields{
		"round":   m.roundNumber,
		"winners": result.Winners,
	}).Debug("scored round")

	if leader := m.soleLeaderAtTarget(); leader != nil {
		m.champion = &Champion{
			PlayerID: leader.ID,
			Name:     leader.Name,
			Points:   leader.Points,
			Hand:     result.PerPlayer[leader.ID],
		}

		m.logger.WithFields(logrus.Fields{
			"playerID": leader.ID,
			"points":   leader.Points,
			"rounds":   m.roundNumber,
		}).Infof("%s is the champion", leader.Name)
	}

	return m.champion, nil
}

// soleLeaderAtTarget returns the player with the most points if nobody shares the lead and the target is reached
func (m *Match) soleLeaderAtTarget() *table.Player {
	if !m.options.TargetEnabled {
		return nil
	}

	var leader *table.Player
	tied := false
	for _, p := range m.players {
		switch {
		case leader == nil || p.Points > leader.Points:
			leader = p
			tied = false
		case p.Points == leader.Points:
			tied = true
		}
	}

	if leader == nil || tied || leader.Points < m.options.Target {
		return nil
	}

	return leader
}

// PlayRound deals a complete round, scores it, and returns the showdown
func (m *Match) PlayRound() (*texasholdem.ShowdownResult, error) {
	round, err := m.StartRound()
	if err != nil {
		return nil, err
	}

	for round.Phase() != texasholdem.PhaseShowdown {
		if err := round.Advance(); err != nil {
			return nil, err
		}
	}

	result, err := round.ShowdownResult()
	if err != nil {
		return nil, err
	}

	if _, err := m.ApplyScoring(result); err != nil {
		return nil, err
	}

	return result, nil
}

// Reset starts the match over with the same players
func (m *Match) Reset() {
	for _, p := range m.players {
		p.ResetPoints()
	}

	m.round = nil
	m.roundNumber = 0
	m.scored = false
	m.champion = nil
}
