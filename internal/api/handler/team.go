package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jlattimer/skillrank/internal/api/request"
	"github.com/jlattimer/skillrank/internal/api/response"
	"github.com/jlattimer/skillrank/internal/model"
	"github.com/jlattimer/skillrank/internal/services/assembly"
	"github.com/jlattimer/skillrank/internal/services/match"
	"github.com/jlattimer/skillrank/internal/services/roster"
)

// TeamHandler handles team assembly endpoints
type TeamHandler struct {
	roster   *roster.Controller
	assembly *assembly.Controller
	match    *match.Controller
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(roster *roster.Controller, assembly *assembly.Controller, match *match.Controller) *TeamHandler {
	return &TeamHandler{
		roster:   roster,
		assembly: assembly,
		match:    match,
	}
}

// Get handles GET /api/v1/teams
//
// Returns the assembly with the virtual trailing empty slot index and,
// once two or more teams exist, live win/draw probabilities.
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	teams := h.assembly.Teams()
	prediction := h.match.Predict()
	response.JSON(w, http.StatusOK, response.AssemblyFromModel(teams, prediction, h.playerNames()))
}

// Set handles PUT /api/v1/teams/{index}
func (h *TeamHandler) Set(w http.ResponseWriter, r *http.Request) {
	index, err := teamIndex(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.SetTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	members := make([]model.PlayerID, len(req.Members))
	for i, id := range req.Members {
		members[i] = model.PlayerID(id)
	}

	if err := h.assembly.SetTeamAt(index, members); err != nil {
		WriteError(w, err)
		return
	}

	h.Get(w, r)
}

// Selectable handles GET /api/v1/teams/{index}/selectable
func (h *TeamHandler) Selectable(w http.ResponseWriter, r *http.Request) {
	index, err := teamIndex(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	players, err := h.assembly.SelectableFor(index)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SelectableFromModel(players))
}

// CreatePlayer handles POST /api/v1/teams/{index}/players
//
// Creates a brand-new roster player and appends it to the team at index
// as a single logical step.
func (h *TeamHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	index, err := teamIndex(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.CreateTeamPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.assembly.CreatePlayerAt(r.Context(), index, req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player, h.roster.Ordinal))
}

func (h *TeamHandler) playerNames() map[model.PlayerID]string {
	names := make(map[model.PlayerID]string)
	for _, p := range h.roster.Players() {
		names[p.ID] = p.Name
	}
	return names
}

func teamIndex(r *http.Request) (int, error) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		return 0, NewInvalidRequestError("team index must be an integer")
	}
	return index, nil
}
