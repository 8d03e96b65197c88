package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jlattimer/skillrank/internal/api/handler"
	apimiddleware "github.com/jlattimer/skillrank/internal/api/middleware"
	"github.com/jlattimer/skillrank/internal/middleware"
	"github.com/jlattimer/skillrank/internal/services/assembly"
	"github.com/jlattimer/skillrank/internal/services/match"
	"github.com/jlattimer/skillrank/internal/services/roster"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	RosterController   *roster.Controller
	AssemblyController *assembly.Controller
	MatchController    *match.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	rosterHandler := handler.NewRosterHandler(cfg.RosterController)
	teamHandler := handler.NewTeamHandler(cfg.RosterController, cfg.AssemblyController, cfg.MatchController)
	matchHandler := handler.NewMatchHandler(cfg.RosterController, cfg.MatchController)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Roster routes
	api.HandleFunc("/roster", rosterHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/roster", rosterHandler.Add).Methods(http.MethodPost)
	api.HandleFunc("/roster/{id}", rosterHandler.Remove).Methods(http.MethodDelete)

	// Team assembly routes
	api.HandleFunc("/teams", teamHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/teams/{index}", teamHandler.Set).Methods(http.MethodPut)
	api.HandleFunc("/teams/{index}/selectable", teamHandler.Selectable).Methods(http.MethodGet)
	api.HandleFunc("/teams/{index}/players", teamHandler.CreatePlayer).Methods(http.MethodPost)

	// Match routes
	api.HandleFunc("/match", matchHandler.Predict).Methods(http.MethodGet)
	api.HandleFunc("/match", matchHandler.Finalize).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
