package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jlattimer/skillrank/internal/api/request"
	"github.com/jlattimer/skillrank/internal/api/response"
	"github.com/jlattimer/skillrank/internal/model"
	"github.com/jlattimer/skillrank/internal/services/roster"
)

// RosterHandler handles roster endpoints
type RosterHandler struct {
	roster *roster.Controller
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(roster *roster.Controller) *RosterHandler {
	return &RosterHandler{roster: roster}
}

// List handles GET /api/v1/roster
func (h *RosterHandler) List(w http.ResponseWriter, r *http.Request) {
	players := h.roster.Players()
	response.JSON(w, http.StatusOK, response.RosterFromModel(players, h.roster.Ordinal))
}

// Add handles POST /api/v1/roster
func (h *RosterHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.roster.AddPlayer(r.Context(), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player, h.roster.Ordinal))
}

// Remove handles DELETE /api/v1/roster/{id}
//
// Removal cascades into the team assembly and is idempotent: deleting an
// unknown player still returns 204.
func (h *RosterHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])
	h.roster.RemovePlayer(r.Context(), id)
	response.NoContent(w)
}
