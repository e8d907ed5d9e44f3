package room

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"showdown-server/internal/rng"
	"showdown-server/pkg/match"
	"showdown-server/pkg/texasholdem"
)

// Pacing is how long the dealer waits between steps
type Pacing struct {
	// Deal is the wait after the hole cards are dealt
	Deal time.Duration
	// Street is the wait after the flop, turn, and river
	Street time.Duration
	// Showdown is the wait after a round is scored, before the next round
	Showdown time.Duration
	// NextRound is the wait before the first round of a match
	NextRound time.Duration
}

// wakeup asks the run loop to schedule the next step
type wakeup struct {
	after time.Duration
	ok    bool
}

// Dealer drives a match: it deals, advances, and scores rounds with the configured pacing
// All engine calls happen in the run loop. State() may be called from any goroutine.
type Dealer struct {
	logger logrus.FieldLogger
	gen    rng.Generator
	pacing Pacing

	lock        sync.RWMutex
	match       *match.Match
	paused      bool
	clients     map[*Client]bool
	logMessages []*texasholdem.Event

	execInRunLoop chan func() wakeup
}

// State is a JSON friendly view of the dealer and its match
type State struct {
	*match.State
	Paused bool                 `json:"paused"`
	Events []*texasholdem.Event `json:"events"`
}

// NewDealer returns a dealer for the match
// The generator must only be used by the dealer once Run() is called.
func NewDealer(logger logrus.FieldLogger, m *match.Match, gen rng.Generator, pacing Pacing) *Dealer {
	return &Dealer{
		logger:        logger,
		gen:           gen,
		pacing:        pacing,
		match:         m,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func() wakeup, 256),
	}
}

// Run runs the dealer until the context is done
func (d *Dealer) Run(ctx context.Context) {
	d.logger.Debug("starting dealer run loop")
	timer := time.NewTimer(d.pacing.NextRound)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Debug("terminating dealer run loop")
			return
		case fn := <-d.execInRunLoop:
			if w := fn(); w.ok {
				timer.Reset(w.after)
			}
		case <-timer.C:
			if w := d.tick(); w.ok {
				timer.Reset(w.after)
			}
		}
	}
}

// tick performs the next step of the match
// NOTE: must only be called from the run loop
func (d *Dealer) tick() wakeup {
	d.lock.Lock()
	w, events, champion := d.step()
	d.addLogMessages(events)
	d.lock.Unlock()

	if len(events) > 0 {
		d.broadcast(&Response{Key: "events", Data: events})
	}

	if champion != nil {
		d.broadcast(&Response{Key: "champion", Data: champion})
	}

	d.broadcastState()

	return w
}

// step must be called with d.lock held
func (d *Dealer) step() (wakeup, []*texasholdem.Event, *match.Champion) {
	if d.paused || d.match.IsOver() {
		return wakeup{}, nil, nil
	}

	round := d.match.Round()
	if round == nil || round.Phase() == texasholdem.PhaseShowdown {
		round, err := d.match.StartRound()
		if err != nil {
			return d.fail(err), nil, nil
		}

		return wakeup{after: d.pacing.Deal, ok: true}, round.Events(), nil
	}

	if err := round.Advance(); err != nil {
		return d.fail(err), round.Events(), nil
	}

	events := round.Events()
	if round.Phase() != texasholdem.PhaseShowdown {
		return wakeup{after: d.pacing.Street, ok: true}, events, nil
	}

	result, err := round.ShowdownResult()
	if err != nil {
		return d.fail(err), events, nil
	}

	champion, err := d.match.ApplyScoring(result)
	if err != nil {
		return d.fail(err), events, nil
	}

	if champion != nil {
		return wakeup{}, events, champion
	}

	return wakeup{after: d.pacing.Showdown, ok: true}, events, nil
}

// fail pauses the dealer, a scheduling error would otherwise repeat on every tick
func (d *Dealer) fail(err error) wakeup {
	d.logger.WithError(err).Error("could not advance the match")
	d.paused = true

	return wakeup{}
}

// Pause stops the dealer after the current step
// The round is left as it is and continues from the same phase on Resume()
func (d *Dealer) Pause() {
	d.execInRunLoop <- func() wakeup {
		d.lock.Lock()
		d.paused = true
		d.lock.Unlock()

		d.logger.Info("paused")
		d.broadcastState()
		return wakeup{}
	}
}

// Resume continues a paused match
func (d *Dealer) Resume() {
	d.execInRunLoop <- func() wakeup {
		d.lock.Lock()
		wasPaused := d.paused
		d.paused = false
		d.lock.Unlock()

		if !wasPaused {
			return wakeup{}
		}

		d.logger.Info("resumed")
		d.broadcastState()
		return wakeup{after: 0, ok: true}
	}
}

// NewMatch replaces the current match
// Only the options are validated here. The roster falls back to the defaults.
func (d *Dealer) NewMatch(names []string, opts match.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	d.execInRunLoop <- func() wakeup {
		m, err := match.NewMatch(d.logger, names, opts, d.gen)
		if err != nil {
			d.logger.WithError(err).Error("could not create match")
			return wakeup{}
		}

		d.lock.Lock()
		d.match = m
		d.paused = false
		d.logMessages = nil
		d.lock.Unlock()

		d.logger.WithField("players", len(m.Players())).Info("new match")
		d.broadcastState()
		return wakeup{after: d.pacing.NextRound, ok: true}
	}

	return nil
}

// State returns the current state
func (d *Dealer) State() *State {
	d.lock.RLock()
	defer d.lock.RUnlock()

	return &State{
		State:  d.match.State(),
		Paused: d.paused,
		Events: d.recentLogMessages(),
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// AddClient subscribes the client to the dealer's broadcasts
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	client.Send(&Response{Key: "state", Data: d.State()})
}

// RemoveClient unsubscribes the client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	return nClients == 0
}

func (d *Dealer) broadcast(msg *Response) {
	for _, client := range d.Clients() {
		if !client.Send(msg) {
			d.logger.WithField("client", client.String()).Warn("client is not keeping up, dropped message")
		}
	}
}

func (d *Dealer) broadcastState() {
	d.broadcast(&Response{Key: "state", Data: d.State()})
}
