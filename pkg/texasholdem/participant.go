package texasholdem

import (
	"showdown-server/pkg/deck"
	"showdown-server/pkg/handanalyzer"
)

type result string

const (
	resultPending result = ""
	resultLost    result = "lost"
	resultWon     result = "won"
)

// Participant is a player's view of a single round
type Participant struct {
	PlayerID int64

	cards  deck.Hand
	result result

	handName     string
	winningCards deck.Hand
	leadingCards deck.Hand
}

type participantJSON struct {
	PlayerID     int64     `json:"playerId"`
	Cards        deck.Hand `json:"cards"`
	Hand         string    `json:"hand"`
	Result       result    `json:"result"`
	WinningCards deck.Hand `json:"winningCards"`
	LeadingCards deck.Hand `json:"leadingCards"`
}

func newParticipant(id int64) *Participant {
	return &Participant{
		PlayerID: id,
		cards:    make(deck.Hand, 0, 2),
		result:   resultPending,
	}
}

// reset clears everything from a previous deal
func (p *Participant) reset() {
	p.cards = make(deck.Hand, 0, 2)
	p.result = resultPending
	p.handName = ""
	p.winningCards = nil
	p.leadingCards = nil
}

// Cards returns the hole cards
func (p *Participant) Cards() deck.Hand {
	return p.cards.Clone()
}

// Won returns true if the participant won the showdown
func (p *Participant) Won() bool {
	return p.result == resultWon
}

// Lost returns true if the participant lost the showdown
func (p *Participant) Lost() bool {
	return p.result == resultLost
}

// HandName returns the name of the hand at showdown
func (p *Participant) HandName() string {
	return p.handName
}

// WinningCards returns the five cards of the winning hand, empty unless the participant won
func (p *Participant) WinningCards() deck.Hand {
	return p.winningCards
}

// LeadingCards returns the cards of the leading hand on the flop or turn
func (p *Participant) LeadingCards() deck.Hand {
	return p.leadingCards
}

func (p *Participant) evaluate(board deck.Hand) *handanalyzer.Result {
	cards := make([]*deck.Card, 0, len(p.cards)+len(board))
	cards = append(cards, p.cards...)
	cards = append(cards, board...)

	return handanalyzer.Evaluate(cards)
}

func (p *Participant) participantJSON() *participantJSON {
	return &participantJSON{
		PlayerID:     p.PlayerID,
		Cards:        p.cards,
		Hand:         p.handName,
		Result:       p.result,
		WinningCards: p.winningCards,
		LeadingCards: p.leadingCards,
	}
}
