package api

import (
	"net/http"
)

func (cfg *APIConfig) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	type rspSchema struct {
		Status      string `json:"status"`
		IsConnected bool   `json:"isConnected"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{
		Status:      "ok",
		IsConnected: cfg.Connected(r.Context()),
	})
}
