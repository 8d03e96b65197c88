package roster

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/jlattimer/skillrank/internal/dependencies/clock"
	"github.com/jlattimer/skillrank/internal/dependencies/ident"
	"github.com/jlattimer/skillrank/internal/model"
	"github.com/jlattimer/skillrank/internal/rating"
	"github.com/jlattimer/skillrank/internal/storage"
)

// Controller holds the canonical player list and its rating state.
//
// The in-memory list is authoritative; every mutation is written through
// to storage as a full snapshot on a background goroutine so persistence
// never blocks the mutating call. Roster order is a derived property: it
// is recomputed from the ranking rule after every rating replacement,
// while plain insertions keep insertion order until the next match.
type Controller struct {
	storage     storage.Storage
	ratingModel rating.Model
	ident       ident.Ident
	clock       clock.Clock
	logger      *slog.Logger

	mu      sync.RWMutex
	players []model.Player
	version uint64

	// deletionHooks run after a player leaves the roster, outside the
	// roster lock, so dependent structures can drop their references.
	deletionHooks []func(model.PlayerID)

	pending      sync.WaitGroup
	saveMu       sync.Mutex
	savedVersion uint64
}

// NewController creates a new roster controller
func NewController(
	storage storage.Storage,
	ratingModel rating.Model,
	ident ident.Ident,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:     storage,
		ratingModel: ratingModel,
		ident:       ident,
		clock:       clock,
		logger:      logger,
	}
}

// AddDeletionHook registers a callback invoked whenever a player is
// removed from the roster. Hooks run synchronously within RemovePlayer.
func (c *Controller) AddDeletionHook(hook func(model.PlayerID)) {
	c.deletionHooks = append(c.deletionHooks, hook)
}

// Load populates the roster from the persisted snapshot. An absent or
// unreadable snapshot degrades to an empty roster: that is a valid
// starting state, so startup never fails on it.
func (c *Controller) Load(ctx context.Context) {
	players, err := c.storage.LoadRoster(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrSnapshotNotFound) {
			c.logger.Warn("could not load roster snapshot, starting empty",
				slog.String("error", err.Error()))
		}
		players = nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.players = players
}

// AddPlayer creates a player with a fresh unique ID and the rating
// model's initial skill state, and appends it to the roster. Duplicate
// names are legal; players remain distinguishable by ID.
func (c *Controller) AddPlayer(ctx context.Context, name string) (model.Player, error) {
	if name == "" {
		return model.Player{}, model.ErrEmptyName
	}

	player := model.Player{
		ID:        model.PlayerID(c.ident.NewID()),
		Name:      name,
		Skill:     c.ratingModel.NewRating(),
		CreatedAt: c.clock.Now(),
	}

	c.mu.Lock()
	c.players = append(c.players, player)
	snapshot, version := c.snapshotLocked()
	c.mu.Unlock()

	c.persist(snapshot, version)
	return player, nil
}

// RemovePlayer removes the player with the given ID if present. Removing
// an unknown ID is a no-op. Registered deletion hooks run afterwards so
// any team referencing the player is updated within the same operation.
func (c *Controller) RemovePlayer(ctx context.Context, id model.PlayerID) {
	c.mu.Lock()
	removed := false
	for i, p := range c.players {
		if p.ID == id {
			c.players = append(c.players[:i], c.players[i+1:]...)
			removed = true
			break
		}
	}
	var snapshot []model.Player
	var version uint64
	if removed {
		snapshot, version = c.snapshotLocked()
	}
	c.mu.Unlock()

	if !removed {
		return
	}

	for _, hook := range c.deletionHooks {
		hook(id)
	}

	c.persist(snapshot, version)
}

// ReplaceRatings replaces the skill state of every player whose ID
// appears in updates; other players are untouched. The roster is then
// re-sorted per the ranking rule.
func (c *Controller) ReplaceRatings(ctx context.Context, updates map[model.PlayerID]model.Skill) {
	c.mu.Lock()
	for i := range c.players {
		if skill, ok := updates[c.players[i].ID]; ok {
			c.players[i].Skill = skill
		}
	}
	c.rankLocked()
	snapshot, version := c.snapshotLocked()
	c.mu.Unlock()

	c.persist(snapshot, version)
}

// Players returns the roster in its current order
func (c *Controller) Players() []model.Player {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyPlayersLocked()
}

// GetPlayer returns the player with the given ID
func (c *Controller) GetPlayer(id model.PlayerID) (model.Player, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.players {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Player{}, model.ErrPlayerNotFound
}

// HasPlayer reports whether a player with the given ID exists
func (c *Controller) HasPlayer(id model.PlayerID) bool {
	_, err := c.GetPlayer(id)
	return err == nil
}

// Ordinal returns the ranking projection of a skill state
func (c *Controller) Ordinal(skill model.Skill) float64 {
	return c.ratingModel.Ordinal(skill)
}

// Flush waits for in-flight snapshot writes to finish. Mutations never
// wait on persistence; this exists for shutdown and tests.
func (c *Controller) Flush() {
	c.pending.Wait()
}

// rankLocked sorts the roster by ordinal descending, then mean
// descending, then uncertainty ascending, then name ascending. The name
// key makes the order deterministic even for identical ratings.
func (c *Controller) rankLocked() {
	sort.SliceStable(c.players, func(i, j int) bool {
		a, b := c.players[i], c.players[j]
		ao, bo := c.ratingModel.Ordinal(a.Skill), c.ratingModel.Ordinal(b.Skill)
		if ao != bo {
			return ao > bo
		}
		if a.Skill.Mu != b.Skill.Mu {
			return a.Skill.Mu > b.Skill.Mu
		}
		if a.Skill.Sigma != b.Skill.Sigma {
			return a.Skill.Sigma < b.Skill.Sigma
		}
		return a.Name < b.Name
	})
}

func (c *Controller) copyPlayersLocked() []model.Player {
	snapshot := make([]model.Player, len(c.players))
	copy(snapshot, c.players)
	return snapshot
}

// snapshotLocked copies the player list and bumps the roster version.
// The version lets a slow write be discarded if a newer one already landed.
func (c *Controller) snapshotLocked() ([]model.Player, uint64) {
	c.version++
	return c.copyPlayersLocked(), c.version
}

// persist writes the snapshot on a background goroutine. A crash before
// the write completes loses at most this one mutation; each write is a
// full overwrite, so stored state is never left half-updated.
func (c *Controller) persist(snapshot []model.Player, version uint64) {
	c.pending.Add(1)
	go func() {
		defer c.pending.Done()

		c.saveMu.Lock()
		defer c.saveMu.Unlock()
		if version <= c.savedVersion {
			return
		}

		if err := c.storage.SaveRoster(context.Background(), snapshot); err != nil {
			c.logger.Error("failed to persist roster snapshot",
				slog.String("error", err.Error()))
			return
		}
		c.savedVersion = version
	}()
}
