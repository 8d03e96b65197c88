package factory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jlattimer/skillrank/internal/dependencies/clock"
	"github.com/jlattimer/skillrank/internal/dependencies/ident"
	"github.com/jlattimer/skillrank/internal/rating"
	"github.com/jlattimer/skillrank/internal/services/assembly"
	"github.com/jlattimer/skillrank/internal/services/match"
	"github.com/jlattimer/skillrank/internal/services/roster"
	"github.com/jlattimer/skillrank/internal/storage"
	"github.com/jlattimer/skillrank/internal/storage/memory"
	redisstorage "github.com/jlattimer/skillrank/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Ident  ident.Ident
	Rating rating.Model

	// Services
	RosterController   *roster.Controller
	AssemblyController *assembly.Controller
	MatchController    *match.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Clock and Ident override the real dependencies (for tests)
	Clock clock.Clock
	Ident ident.Ident
}

// New creates a new application with all dependencies wired. The roster
// deletion cascade into the team assembly is registered here, so player
// removal is always a single atomic operation for callers.
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("redis storage requires a redis config")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("create redis storage: %w", err)
		}
		store = redisStore
	default:
		return nil, fmt.Errorf("unknown storage type %q", storageType)
	}

	appClock := cfg.Clock
	if appClock == nil {
		appClock = clock.New()
	}
	appIdent := cfg.Ident
	if appIdent == nil {
		appIdent = ident.New()
	}

	return newWithDependencies(store, appClock, appIdent, logger), nil
}

func newWithDependencies(store storage.Storage, appClock clock.Clock, appIdent ident.Ident, logger *slog.Logger) *App {
	ratingModel := rating.NewPlackettLuce()

	rosterController := roster.NewController(store, ratingModel, appIdent, appClock, logger)
	assemblyController := assembly.NewController(rosterController)
	matchController := match.NewController(rosterController, assemblyController, ratingModel, logger)

	// Deleting a roster player must atomically drop it from every team.
	rosterController.AddDeletionHook(assemblyController.OnPlayerDeleted)

	return &App{
		Storage:            store,
		Clock:              appClock,
		Ident:              appIdent,
		Rating:             ratingModel,
		RosterController:   rosterController,
		AssemblyController: assemblyController,
		MatchController:    matchController,
	}
}
