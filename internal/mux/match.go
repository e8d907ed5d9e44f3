package mux

import (
	"net/http"

	"showdown-server/pkg/match"
	"showdown-server/pkg/table"
)

type statusResponse struct {
	Status string `json:"status"`
}

var statusOK = statusResponse{Status: "OK"}

type postMatchPayload struct {
	Players       []string `json:"players"`
	TargetEnabled *bool    `json:"targetEnabled"`
	Target        *int     `json:"target"`
}

// options fills in anything missing from the payload with the defaults
func (p postMatchPayload) options() match.Options {
	opts := match.DefaultOptions()
	if p.TargetEnabled != nil {
		opts.TargetEnabled = *p.TargetEnabled
	}

	if p.Target != nil {
		opts.Target = *p.Target
	}

	return opts
}

func (m *Mux) getMatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.dealer.State())
	}
}

func (m *Mux) postMatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postMatchPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		if err := m.dealer.NewMatch(payload.Players, payload.options()); err != nil {
			if table.IsUserError(err) {
				writeJSONError(w, http.StatusBadRequest, err)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusAccepted, statusOK)
	}
}

func (m *Mux) postMatchPause() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.dealer.Pause()
		writeJSON(w, http.StatusAccepted, statusOK)
	}
}

func (m *Mux) postMatchResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.dealer.Resume()
		writeJSON(w, http.StatusAccepted, statusOK)
	}
}
