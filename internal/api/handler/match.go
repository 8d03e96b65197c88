package handler

import (
	"net/http"

	"github.com/jlattimer/skillrank/internal/api/response"
	"github.com/jlattimer/skillrank/internal/services/match"
	"github.com/jlattimer/skillrank/internal/services/roster"
)

// MatchHandler handles match endpoints
type MatchHandler struct {
	roster *roster.Controller
	match  *match.Controller
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(roster *roster.Controller, match *match.Controller) *MatchHandler {
	return &MatchHandler{
		roster: roster,
		match:  match,
	}
}

// Predict handles GET /api/v1/match
func (h *MatchHandler) Predict(w http.ResponseWriter, r *http.Request) {
	prediction := h.match.Predict()
	response.JSON(w, http.StatusOK, prediction)
}

// Finalize handles POST /api/v1/match
//
// Applies the assembled teams as a match outcome in team order (first
// team won), clears the assembly and returns the re-ranked roster.
func (h *MatchHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	players, err := h.match.Finalize(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RosterFromModel(players, h.roster.Ordinal))
}
