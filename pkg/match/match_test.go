package match

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"showdown-server/internal/rng"
	"showdown-server/pkg/deck"
	"showdown-server/pkg/handanalyzer"
	"showdown-server/pkg/texasholdem"
)

func setupMatch(opts Options, names ...string) *Match {
	m, err := NewMatch(logrus.StandardLogger(), names, opts, rng.Seeded(1))
	if err != nil {
		panic(err)
	}

	return m
}

// showdown returns a result won by the players
func showdown(winners ...int64) *texasholdem.ShowdownResult {
	perPlayer := make(map[int64]*handanalyzer.Result)
	for _, id := range winners {
		perPlayer[id] = handanalyzer.Evaluate(deck.CardsFromString("14s,13s,12s,11s,10s,2c,3d"))
	}

	return &texasholdem.ShowdownResult{
		Winners:   winners,
		PerPlayer: perPlayer,
	}
}

func setPoints(m *Match, points ...int) {
	for i, p := range points {
		m.players[i].Points = p
	}
}

func scoreRound(t *testing.T, m *Match, winners ...int64) *Champion {
	t.Helper()
	_, err := m.StartRound()
	if !assert.NoError(t, err) {
		return nil
	}

	champion, err := m.ApplyScoring(showdown(winners...))
	assert.NoError(t, err)

	return champion
}

func TestNewMatch(t *testing.T) {
	a := assert.New(t)

	m := setupMatch(DefaultOptions(), " Alice", "Bob ", "Alice")
	a.Len(m.Players(), 2)
	a.Equal("Alice", m.Players()[0].Name)
	a.Equal("Bob", m.Players()[1].Name)
	a.Equal(0, m.RoundNumber())
	a.Nil(m.Round())
	a.False(m.IsOver())

	m, err := NewMatch(logrus.StandardLogger(), []string{"Alice"}, Options{TargetEnabled: true, Target: 0}, rng.Seeded(1))
	a.Nil(m)
	var optsErr OptionsError
	a.True(errors.As(err, &optsErr))
}

func TestNewMatch_defaultRoster(t *testing.T) {
	a := assert.New(t)

	logger, hook := test.NewNullLogger()
	m, err := NewMatch(logger, []string{"", "   "}, DefaultOptions(), rng.Seeded(1))
	a.NoError(err)
	a.Equal("Player 1", m.Players()[0].Name)
	a.Equal("Player 2", m.Players()[1].Name)

	if a.Len(hook.Entries, 1) {
		a.Equal(logrus.WarnLevel, hook.LastEntry().Level)
		a.Equal("using the default roster", hook.LastEntry().Message)
	}
}

func TestNewMatch_tooManyPlayers(t *testing.T) {
	a := assert.New(t)

	logger, hook := test.NewNullLogger()
	m, err := NewMatch(logger, []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}, DefaultOptions(), rng.Seeded(1))
	a.NoError(err)
	a.Len(m.Players(), 9)
	a.Equal(logrus.WarnLevel, hook.LastEntry().Level)
	a.Equal("only the first 9 players are seated", hook.LastEntry().Message)
}

func TestMatch_StartRound(t *testing.T) {
	a := assert.New(t)

	m := setupMatch(DefaultOptions(), "Alice", "Bob", "Carol")
	round, err := m.StartRound()
	a.NoError(err)
	a.Equal(texasholdem.PhaseDealing, round.Phase())
	a.Equal(1, m.RoundNumber())
	a.Same(round, m.Round())
	a.Len(round.Participants(), 3)

	next, err := m.StartRound()
	a.NoError(err)
	a.NotSame(round, next)
	a.Equal(2, m.RoundNumber())
	a.Empty(next.Board())
}

func TestMatch_ApplyScoring_errors(t *testing.T) {
	a := assert.New(t)

	m := setupMatch(DefaultOptions(), "Alice", "Bob")
	_, err := m.ApplyScoring(showdown(1))
	a.Equal(ErrNoRound, err)

	_, err = m.StartRound()
	a.NoError(err)

	_, err = m.ApplyScoring(nil)
	a.EqualError(err, "showdown result has no winners")

	_, err = m.ApplyScoring(showdown(1, 7))
	a.EqualError(err, "winner 7 is not in the match")
	a.Equal(0, m.Players()[0].Points, "no points for a rejected result")

	_, err = m.ApplyScoring(showdown(1))
	a.NoError(err)
	_, err = m.ApplyScoring(showdown(1))
	a.Equal(ErrAlreadyScored, err)
	a.Equal(1, m.Players()[0].Points)
}

func TestMatch_ApplyScoring_tiesAreNotSplit(t *testing.T) {
	a := assert.New(t)

	m := setupMatch(DefaultOptions(), "Alice", "Bob", "Carol")
	a.Nil(scoreRound(t, m, 1, 3))
	a.Equal(1, m.Players()[0].Points)
	a.Equal(0, m.Players()[1].Points)
	a.Equal(1, m.Players()[2].Points)
}

func TestMatch_ApplyScoring_champion(t *testing.T) {
	a := assert.New(t)

	m := setupMatch(Options{TargetEnabled: true, Target: 10}, "A", "B")
	setPoints(m, 9, 9)

	champion := scoreRound(t, m, 1)
	if a.NotNil(champion) {
		a.Equal(int64(1), champion.PlayerID)
		a.Equal("A", champion.Name)
		a.Equal(10, champion.Points)
		a.Equal("Royal flush", champion.Hand.Name())
	}

	a.True(m.IsOver())
	a.Equal(9, m.Players()[1].Points)

	_, err := m.StartRound()
	a.Equal(ErrMatchOver, err)
	_, err = m.ApplyScoring(showdown(2))
	a.Equal(ErrMatchOver, err)
}

func TestMatch_ApplyScoring_tieAtTargetContinues(t *testing.T) {
	a := assert.New(t)

	m := setupMatch(Options{TargetEnabled: true, Target: 10}, "A", "B")
	setPoints(m, 9, 9)

	a.Nil(scoreRound(t, m, 1, 2))
	a.False(m.IsOver())
	a.Equal(10, m.Players()[0].Points)
	a.Equal(10, m.Players()[1].Points)

	champion := scoreRound(t, m, 1)
	if a.NotNil(champion) {
		a.Equal(int64(1), champion.PlayerID)
		a.Equal(11, champion.Points)
	}
	a.Equal(10, m.Players()[1].Points)
}

func TestMatch_ApplyScoring_unbrokenTieNeverEnds(t *testing.T) {
	a := assert.New(t)

	m := setupMatch(Options{TargetEnabled: true, Target: 1}, "A", "B")
	for i := 0; i < 100; i++ {
		a.Nil(scoreRound(t, m, 1, 2))
	}

	a.False(m.IsOver())
	a.Equal(100, m.RoundNumber())
	a.Equal(100, m.Players()[0].Points)
}

func TestMatch_ApplyScoring_targetDisabled(t *testing.T) {
	a := assert.New(t)

	m := setupMatch(Options{TargetEnabled: false, Target: 1}, "A", "B")
	for i := 0; i < 20; i++ {
		a.Nil(scoreRound(t, m, 1))
	}

	a.False(m.IsOver())
	a.Equal(20, m.Players()[0].Points)
}

func TestMatch_PlayRound(t *testing.T) {
	a := assert.New(t)

	m := setupMatch(Options{TargetEnabled: true, Target: 3}, "Alice", "Bob", "Carol", "Dave")
	for i := 0; i < 1000 && !m.IsOver(); i++ {
		result, err := m.PlayRound()
		if !a.NoError(err) {
			return
		}

		a.NotEmpty(result.Winners)
		a.Equal(texasholdem.PhaseShowdown, m.Round().Phase())
	}

	champion := m.Champion()
	if !a.NotNil(champion) {
		return
	}

	a.GreaterOrEqual(champion.Points, 3)
	a.False(champion.Hand.Incomplete())
	for _, p := range m.Players() {
		if p.ID != champion.PlayerID {
			a.Less(p.Points, champion.Points)
		}
	}

	_, err := m.PlayRound()
	a.Equal(ErrMatchOver, err)
}

func TestMatch_Reset(t *testing.T) {
	a := assert.New(t)

	m := setupMatch(Options{TargetEnabled: true, Target: 1}, "A", "B")
	a.NotNil(scoreRound(t, m, 2))

	m.Reset()
	a.False(m.IsOver())
	a.Nil(m.Champion())
	a.Nil(m.Round())
	a.Equal(0, m.RoundNumber())
	for _, p := range m.Players() {
		a.Equal(0, p.Points)
	}

	_, err := m.StartRound()
	a.NoError(err)
}

func TestMatch_State(t *testing.T) {
	a := assert.New(t)

	m := setupMatch(Options{TargetEnabled: true, Target: 5}, "A", "B")
	state := m.State()
	a.Nil(state.Round)
	a.Nil(state.Champion)

	scoreRound(t, m, 2)
	state = m.State()
	a.Equal(1, state.RoundNumber)
	a.Equal(1, state.Players[1].Points)
	a.Equal(texasholdem.PhaseDealing, state.Round.Phase)

	// the state is a copy
	state.Players[1].Points = 50
	a.Equal(1, m.Players()[1].Points)

	b, err := json.Marshal(state)
	a.NoError(err)
	a.Contains(string(b), `"options":{"targetEnabled":true,"target":5}`)
	a.Contains(string(b), `{"id":2,"name":"B","points":1}`)
}
