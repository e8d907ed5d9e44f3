package texasholdem

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"showdown-server/pkg/deck"
)

// EventType identifies what happened in the round
type EventType string

// event types
const (
	EventCardDealt EventType = "card-dealt"
	EventFlop      EventType = "flop"
	EventTurn      EventType = "turn"
	EventRiver     EventType = "river"
	EventLeaders   EventType = "leaders"
	EventShowdown  EventType = "showdown"
)

// Event is a discrete thing that happened in the round
// If PlayerIDs is empty, the event concerns the whole table.
type Event struct {
	UUID      string       `json:"uuid"`
	Type      EventType    `json:"type"`
	PlayerIDs []int64      `json:"playerIds"`
	Cards     []*deck.Card `json:"cards"`
	Message   string       `json:"message"`
	Time      time.Time    `json:"time"`
}

func newEvent(eventType EventType, playerIDs []int64, cards []*deck.Card, format string, a ...interface{}) *Event {
	return &Event{
		UUID:      uuid.New().String(),
		Type:      eventType,
		PlayerIDs: playerIDs,
		Cards:     cards,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

func (r *Round) emit(e *Event) {
	r.events = append(r.events, e)
}

// Events returns the events since the last call and clears them
func (r *Round) Events() []*Event {
	events := r.events
	r.events = nil

	return events
}

// labels formats the cards for display, i.e., "A♡, 7♠, 2♣"
func labels(cards []*deck.Card) string {
	l := make([]string, len(cards))
	for i, c := range cards {
		l[i] = c.String()
	}

	return strings.Join(l, ", ")
}
