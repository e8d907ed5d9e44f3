package room

import (
	"showdown-server/pkg/texasholdem"
)

const logMessageLimit = 25

// addLogMessages keeps the most recent round events for newly connected clients
// Note: d.lock must be held
func (d *Dealer) addLogMessages(events []*texasholdem.Event) {
	m := append(d.logMessages, events...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}

func (d *Dealer) recentLogMessages() []*texasholdem.Event {
	m := make([]*texasholdem.Event, len(d.logMessages))
	copy(m, d.logMessages)

	return m
}
