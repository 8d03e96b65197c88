package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlattimer/skillrank/internal/api"
	"github.com/jlattimer/skillrank/internal/api/apierr"
	"github.com/jlattimer/skillrank/internal/api/response"
	"github.com/jlattimer/skillrank/internal/factory"
	"github.com/jlattimer/skillrank/internal/model"
	"github.com/jlattimer/skillrank/internal/storage/memory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	storage *memory.Storage
	app     *factory.App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real ident/clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		RosterController:   app.RosterController,
		AssemblyController: app.AssemblyController,
		MatchController:    app.MatchController,
	})

	return &testServer{
		handler: router,
		storage: app.Storage.(*memory.Storage),
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) addPlayer(t *testing.T, name string) response.Player {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/roster", map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, rr.Code)

	var player response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &player))
	return player
}

func (ts *testServer) setTeam(t *testing.T, index int, members ...string) {
	t.Helper()

	rr := ts.request(http.MethodPut, fmt.Sprintf("/api/v1/teams/%d", index), map[string]any{"members": members})
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestAddPlayer(t *testing.T) {
	ts := newTestServer(t)

	player := ts.addPlayer(t, "Alice")
	assert.Equal(t, "Alice", player.Name)
	assert.NotEmpty(t, player.ID)
	assert.InDelta(t, 25.0, player.Mu, 1e-9)
	assert.InDelta(t, 25.0/3.0, player.Sigma, 1e-9)
	assert.InDelta(t, 0.0, player.Ordinal, 1e-9)
}

func TestAddPlayerEmptyName(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/roster", map[string]string{"name": ""})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var errResp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
	assert.Equal(t, apierr.CodeEmptyName, errResp.Error.Code)
}

func TestListRosterRanked(t *testing.T) {
	ts := newTestServer(t)

	ts.addPlayer(t, "Alice")
	ts.addPlayer(t, "Bob")

	rr := ts.request(http.MethodGet, "/api/v1/roster", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var roster response.Roster
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &roster))
	require.Len(t, roster.Players, 2)
	assert.Equal(t, 1, roster.Players[0].Rank)
	assert.Equal(t, 2, roster.Players[1].Rank)
	assert.Equal(t, "Alice", roster.Players[0].Name)
	assert.Equal(t, "Bob", roster.Players[1].Name)
}

func TestRemovePlayer(t *testing.T) {
	ts := newTestServer(t)

	player := ts.addPlayer(t, "Alice")

	rr := ts.request(http.MethodDelete, "/api/v1/roster/"+player.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/roster", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var roster response.Roster
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &roster))
	assert.Empty(t, roster.Players)

	// Deletion is idempotent
	rr = ts.request(http.MethodDelete, "/api/v1/roster/"+player.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestSetTeam(t *testing.T) {
	ts := newTestServer(t)

	alice := ts.addPlayer(t, "Alice")
	bob := ts.addPlayer(t, "Bob")

	rr := ts.request(http.MethodPut, "/api/v1/teams/0", map[string]any{"members": []string{alice.ID}})
	require.Equal(t, http.StatusOK, rr.Code)

	var assembly response.Assembly
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &assembly))
	require.Len(t, assembly.Teams, 1)
	assert.Equal(t, 1, assembly.NextIndex)
	require.Len(t, assembly.Teams[0].Members, 1)
	assert.Equal(t, alice.ID, assembly.Teams[0].Members[0].ID)
	assert.Equal(t, "Alice", assembly.Teams[0].Members[0].Name)

	// Single team: no outcome estimate yet
	assert.Nil(t, assembly.Teams[0].WinProbability)
	assert.Nil(t, assembly.DrawProbability)

	ts.setTeam(t, 1, bob.ID)

	rr = ts.request(http.MethodGet, "/api/v1/teams", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &assembly))
	require.Len(t, assembly.Teams, 2)
	require.NotNil(t, assembly.Teams[0].WinProbability)
	require.NotNil(t, assembly.Teams[1].WinProbability)
	require.NotNil(t, assembly.DrawProbability)
	assert.InDelta(t, *assembly.Teams[0].WinProbability, *assembly.Teams[1].WinProbability, 1e-9)
}

func TestSetTeamErrors(t *testing.T) {
	ts := newTestServer(t)

	alice := ts.addPlayer(t, "Alice")
	bob := ts.addPlayer(t, "Bob")
	ts.setTeam(t, 0, alice.ID)

	cases := []struct {
		name    string
		path    string
		members []string
		status  int
		code    string
	}{
		{"gap index", "/api/v1/teams/2", []string{alice.ID}, http.StatusBadRequest, apierr.CodeTeamIndexOutOfRange},
		{"bad index", "/api/v1/teams/banana", []string{alice.ID}, http.StatusBadRequest, apierr.CodeInvalidRequest},
		{"unknown player", "/api/v1/teams/1", []string{"missing"}, http.StatusNotFound, apierr.CodePlayerNotFound},
		{"duplicate member", "/api/v1/teams/1", []string{bob.ID, bob.ID}, http.StatusConflict, apierr.CodeDuplicatePlayer},
		{"already selected", "/api/v1/teams/1", []string{alice.ID}, http.StatusConflict, apierr.CodePlayerAlreadySelected},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := ts.request(http.MethodPut, tc.path, map[string]any{"members": tc.members})
			assert.Equal(t, tc.status, rr.Code)

			var errResp apierr.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
			assert.Equal(t, tc.code, errResp.Error.Code)
		})
	}
}

func TestClearTeamRemovesIt(t *testing.T) {
	ts := newTestServer(t)

	alice := ts.addPlayer(t, "Alice")
	bob := ts.addPlayer(t, "Bob")
	ts.setTeam(t, 0, alice.ID)
	ts.setTeam(t, 1, bob.ID)

	rr := ts.request(http.MethodPut, "/api/v1/teams/0", map[string]any{"members": []string{}})
	require.Equal(t, http.StatusOK, rr.Code)

	var assembly response.Assembly
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &assembly))
	require.Len(t, assembly.Teams, 1)
	assert.Equal(t, bob.ID, assembly.Teams[0].Members[0].ID)
}

func TestSelectable(t *testing.T) {
	ts := newTestServer(t)

	alice := ts.addPlayer(t, "Alice")
	bob := ts.addPlayer(t, "Bob")
	ts.setTeam(t, 0, alice.ID)

	rr := ts.request(http.MethodGet, "/api/v1/teams/1/selectable", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var selectable response.SelectablePlayers
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &selectable))
	require.Len(t, selectable.Players, 1)
	assert.Equal(t, bob.ID, selectable.Players[0].ID)
}

func TestCreatePlayerInTeam(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/teams/0/players", map[string]string{"name": "Alice"})
	require.Equal(t, http.StatusCreated, rr.Code)

	var player response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &player))
	assert.Equal(t, "Alice", player.Name)

	// The new player is on the roster and already selected into team 0
	rr = ts.request(http.MethodGet, "/api/v1/teams", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var assembly response.Assembly
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &assembly))
	require.Len(t, assembly.Teams, 1)
	require.Len(t, assembly.Teams[0].Members, 1)
	assert.Equal(t, player.ID, assembly.Teams[0].Members[0].ID)
}

func TestDeletePlayerCascadesIntoTeams(t *testing.T) {
	ts := newTestServer(t)

	alice := ts.addPlayer(t, "Alice")
	bob := ts.addPlayer(t, "Bob")
	carol := ts.addPlayer(t, "Carol")
	ts.setTeam(t, 0, alice.ID)
	ts.setTeam(t, 1, bob.ID, carol.ID)

	rr := ts.request(http.MethodDelete, "/api/v1/roster/"+alice.ID, nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/teams", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var assembly response.Assembly
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &assembly))
	require.Len(t, assembly.Teams, 1)
	assert.Equal(t, bob.ID, assembly.Teams[0].Members[0].ID)
}

func TestPredict(t *testing.T) {
	ts := newTestServer(t)

	alice := ts.addPlayer(t, "Alice")
	bob := ts.addPlayer(t, "Bob")
	ts.setTeam(t, 0, alice.ID)
	ts.setTeam(t, 1, bob.ID)

	rr := ts.request(http.MethodGet, "/api/v1/match", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var prediction model.Prediction
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &prediction))
	require.Len(t, prediction.Wins, 2)
	assert.InDelta(t, 1.0, prediction.Wins[0]+prediction.Wins[1]+prediction.Draw, 1e-9)
}

func TestFinalize(t *testing.T) {
	ts := newTestServer(t)

	alice := ts.addPlayer(t, "Alice")
	bob := ts.addPlayer(t, "Bob")
	ts.setTeam(t, 0, alice.ID)
	ts.setTeam(t, 1, bob.ID)

	rr := ts.request(http.MethodPost, "/api/v1/match", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var roster response.Roster
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &roster))
	require.Len(t, roster.Players, 2)
	assert.Equal(t, alice.ID, roster.Players[0].ID)
	assert.Equal(t, bob.ID, roster.Players[1].ID)
	assert.Greater(t, roster.Players[0].Mu, 25.0)
	assert.Less(t, roster.Players[1].Mu, 25.0)

	// The assembly is cleared after finalization
	rr = ts.request(http.MethodGet, "/api/v1/teams", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var assembly response.Assembly
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &assembly))
	assert.Empty(t, assembly.Teams)
	assert.Equal(t, 0, assembly.NextIndex)
}

func TestFinalizeWithoutEnoughTeams(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/match", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)

	var errResp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
	assert.Equal(t, apierr.CodeInsufficientTeams, errResp.Error.Code)
}

func TestRosterPersistedTeamsNot(t *testing.T) {
	ts := newTestServer(t)

	alice := ts.addPlayer(t, "Alice")
	ts.addPlayer(t, "Bob")
	ts.setTeam(t, 0, alice.ID)
	ts.app.RosterController.Flush()

	// Only roster players cross the storage boundary; the team assembly
	// is transient and never written.
	players, err := ts.storage.LoadRoster(context.Background())
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Alice", players[0].Name)
	assert.Equal(t, "Bob", players[1].Name)
}
