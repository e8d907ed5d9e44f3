package mux

import "net/http"

type healthResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Paused      bool   `json:"paused"`
	RoundNumber int    `json:"roundNumber"`
	Clients     int    `json:"clients"`
}

func (m *Mux) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := m.dealer.State()
		writeJSON(w, http.StatusOK, healthResponse{
			Status:      "OK",
			Version:     m.version,
			Paused:      state.Paused,
			RoundNumber: state.RoundNumber,
			Clients:     len(m.dealer.Clients()),
		})
	}
}
