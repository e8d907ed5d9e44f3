package texasholdem

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"showdown-server/internal/rng"
	"showdown-server/pkg/deck"
	"showdown-server/pkg/table"
)

// HoleCards is the number of private cards each participant receives
const HoleCards = 2

// ErrRoundNotStarted is returned when advancing a round that has not been dealt
var ErrRoundNotStarted = errors.New("round has not started")

// ErrRoundOver is returned when advancing past the showdown
var ErrRoundOver = errors.New("round is over")

// ErrWrongPhase is returned when a query or action is not valid for the current phase
var ErrWrongPhase = errors.New("not valid in the current phase")

// Round is a single deal of Texas Hold'em where every participant reaches the showdown
// A Round is not safe for concurrent use.
type Round struct {
	logger           logrus.FieldLogger
	gen              rng.Generator
	deck             *deck.Deck
	participants     map[int64]*Participant
	participantOrder []int64
	phase            Phase
	board            deck.Hand
	leaders          *Leaders
	showdown         *ShowdownResult
	events           []*Event
}

// NewRound returns an idle round with a shuffled deck
func NewRound(logger logrus.FieldLogger, playerIDs []int64, gen rng.Generator) (*Round, error) {
	if len(playerIDs) == 0 {
		return nil, errors.New("there must be at least one player")
	}

	if len(playerIDs) > table.MaxPlayers {
		return nil, fmt.Errorf("there cannot be more than %d players", table.MaxPlayers)
	}

	participants := make(map[int64]*Participant, len(playerIDs))
	participantOrder := make([]int64, len(playerIDs))
	for i, id := range playerIDs {
		if _, ok := participants[id]; ok {
			return nil, fmt.Errorf("player %d is already seated", id)
		}

		participants[id] = newParticipant(id)
		participantOrder[i] = id
	}

	d := deck.New()
	d.Shuffle(gen)

	return &Round{
		logger:           logger,
		gen:              gen,
		deck:             d,
		participants:     participants,
		participantOrder: participantOrder,
		phase:            PhaseIdle,
		board:            make(deck.Hand, 0, 5),
	}, nil
}

// Phase returns the current phase
func (r *Round) Phase() Phase {
	return r.phase
}

// Board returns the community cards
func (r *Round) Board() deck.Hand {
	return r.board.Clone()
}

// DeckPosition returns how many cards have been drawn from the deck, burns included
func (r *Round) DeckPosition() int {
	return r.deck.Position()
}

// Participants returns the participants in seat order
func (r *Round) Participants() []*Participant {
	p := make([]*Participant, len(r.participantOrder))
	for i, id := range r.participantOrder {
		p[i] = r.participants[id]
	}

	return p
}

// Participant returns the participant for the player
func (r *Round) Participant(playerID int64) (*Participant, bool) {
	p, ok := r.participants[playerID]
	return p, ok
}

// Start deals the hole cards
// Starting a round after its showdown reshuffles the deck and deals a fresh round to the same players.
func (r *Round) Start() error {
	switch r.phase {
	case PhaseIdle:
	case PhaseShowdown:
		r.reset()
	default:
		return fmt.Errorf("cannot start round from %s: %w", r.phase, ErrWrongPhase)
	}

	r.dealHoleCards()
	r.phase = PhaseDealing
	r.logger.WithField("deck", r.deck.HashCode()).Debug("dealt hole cards")

	return nil
}

func (r *Round) reset() {
	r.deck.Shuffle(r.gen)
	r.board = make(deck.Hand, 0, 5)
	r.leaders = nil
	r.showdown = nil
	for _, p := range r.participants {
		p.reset()
	}

	r.phase = PhaseIdle
}

type dealtCard struct {
	playerID int64
	card     *deck.Card
}

func (r *Round) dealHoleCards() {
	dealt := make([]dealtCard, 0, HoleCards*len(r.participantOrder))
	for i := 0; i < HoleCards; i++ {
		for _, id := range r.participantOrder {
			card := r.deck.Draw(1)[0]
			r.participants[id].cards.AddCard(card)
			dealt = append(dealt, dealtCard{playerID: id, card: card})
		}
	}

	// reveal order only, ownership is already set
	sort.SliceStable(dealt, func(i, j int) bool {
		return dealt[i].card.RevealsBefore(dealt[j].card)
	})

	for _, d := range dealt {
		r.emit(newEvent(EventCardDealt, []int64{d.playerID}, []*deck.Card{d.card}, "{} was dealt %s", d.card))
	}
}

// Advance moves the round to the next phase
func (r *Round) Advance() error {
	switch r.phase {
	case PhaseIdle:
		return ErrRoundNotStarted
	case PhaseDealing:
		r.dealFlop()
	case PhaseFlop:
		r.dealTurn()
	case PhaseTurn:
		r.dealRiver()
	case PhaseRiver:
		r.revealWinner()
	case PhaseShowdown:
		return ErrRoundOver
	default:
		panic(fmt.Sprintf("unknown phase: %d", r.phase))
	}

	r.logger.WithFields(logrus.Fields{
		"phase": r.phase.String(),
		"board": r.board.String(),
	}).Debug("advanced round")

	return nil
}

func (r *Round) drawToBoard(n int) []*deck.Card {
	r.deck.Burn()
	cards := r.deck.Draw(n)
	r.board = append(r.board, cards...)

	return cards
}

func (r *Round) dealFlop() {
	cards := r.drawToBoard(3)
	r.phase = PhaseFlop
	r.emit(newEvent(EventFlop, nil, cards, "The flop is %s", labels(cards)))
	r.updateLeaders()
}

func (r *Round) dealTurn() {
	cards := r.drawToBoard(1)
	r.phase = PhaseTurn
	r.emit(newEvent(EventTurn, nil, cards, "The turn is %s", cards[0]))
	r.updateLeaders()
}

func (r *Round) dealRiver() {
	cards := r.drawToBoard(1)
	r.phase = PhaseRiver
	r.emit(newEvent(EventRiver, nil, cards, "The river is %s", cards[0]))
	r.clearLeaders()
}

func (r *Round) updateLeaders() {
	r.clearLeaders()

	r.leaders = EvaluateLeaders(r.Participants(), r.board)
	if r.leaders.Incomplete {
		return
	}

	for _, id := range r.leaders.PlayerIDs {
		r.participants[id].leadingCards = r.leaders.Cards[id]
	}

	cards := make(deck.Hand, 0)
	for _, id := range r.leaders.PlayerIDs {
		for _, c := range r.leaders.Cards[id] {
			if !cards.HasCard(c) {
				cards.AddCard(c)
			}
		}
	}

	r.emit(newEvent(EventLeaders, r.leaders.PlayerIDs, cards, "{} leading with %s", r.leaders.Strength.Hand()))
}

func (r *Round) clearLeaders() {
	r.leaders = nil
	for _, p := range r.participants {
		p.leadingCards = nil
	}
}

// Leaders returns who is ahead on the flop or turn
// While dealing it returns an incomplete answer with no leaders.
func (r *Round) Leaders() (*Leaders, error) {
	switch r.phase {
	case PhaseDealing:
		return EvaluateLeaders(r.Participants(), r.board), nil
	case PhaseFlop, PhaseTurn:
		return r.leaders, nil
	}

	return nil, fmt.Errorf("leaders are not available during %s: %w", r.phase, ErrWrongPhase)
}
