package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"showdown-server/internal/rng"
	"showdown-server/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	dealer  *room.Dealer

	// names anonymous websocket clients
	gen      rng.Generator
	wsTiming wsTiming
}

// NewMux returns a new HTTP mux for the dealer
func NewMux(version string, dealer *room.Dealer) *Mux {
	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		dealer:   dealer,
		gen:      rng.Crypto{},
		wsTiming: defaultWSTiming,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())

	mr := r.PathPrefix("/match").Subrouter()
	mr.Methods(http.MethodGet).Path("").Handler(this.getMatch())
	mr.Methods(http.MethodPost).Path("").Handler(this.postMatch())
	mr.Methods(http.MethodPost).Path("/pause").Handler(this.postMatchPause())
	mr.Methods(http.MethodPost).Path("/resume").Handler(this.postMatchResume())
	mr.Methods(http.MethodGet).Path("/ws").Handler(this.getMatchWS())

	return this
}
