package assembly

import (
	"context"
	"sync"

	"github.com/jlattimer/skillrank/internal/model"
)

// Roster is the slice of the roster service the assembly depends on.
// Players must exist in the roster before any team may reference them.
type Roster interface {
	HasPlayer(id model.PlayerID) bool
	Players() []model.Player
	AddPlayer(ctx context.Context, name string) (model.Player, error)
}

// Controller holds the transient, per-session grouping of roster players
// into competing teams. Invariants it enforces on every mutation:
//
//   - a player belongs to at most one team across the whole assembly
//   - no player appears twice within one team
//   - a team with zero members does not exist (it is removed)
//   - every referenced player exists in the roster
//
// A mutation that would break an invariant is rejected outright, leaving
// the assembly unchanged.
type Controller struct {
	roster Roster

	mu    sync.RWMutex
	teams []model.Team
}

// NewController creates a new assembly controller
func NewController(roster Roster) *Controller {
	return &Controller{roster: roster}
}

// SetTeamAt replaces the membership of the team at index. Index equal to
// the current team count appends a new team; an empty member list deletes
// the team at index instead. An index past the append slot is rejected.
func (c *Controller) SetTeamAt(index int, members []model.PlayerID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setTeamAtLocked(index, members)
}

func (c *Controller) setTeamAtLocked(index int, members []model.PlayerID) error {
	if index < 0 || index > len(c.teams) {
		return model.ErrTeamIndexOutOfRange
	}

	if len(members) == 0 {
		// Empty teams collapse rather than existing as distinct entities.
		if index < len(c.teams) {
			c.teams = append(c.teams[:index], c.teams[index+1:]...)
		}
		return nil
	}

	seen := make(map[model.PlayerID]struct{}, len(members))
	for _, id := range members {
		if !c.roster.HasPlayer(id) {
			return model.ErrPlayerNotFound
		}
		if _, dup := seen[id]; dup {
			return model.ErrDuplicatePlayer
		}
		seen[id] = struct{}{}

		for t, team := range c.teams {
			if t != index && team.Contains(id) {
				return model.ErrPlayerAlreadySelected
			}
		}
	}

	team := model.Team{Members: append([]model.PlayerID(nil), members...)}
	if index == len(c.teams) {
		c.teams = append(c.teams, team)
	} else {
		c.teams[index] = team
	}
	return nil
}

// CreatePlayerAt registers a brand-new player and appends it to the team
// at index as one logical step. The player is added to the roster first,
// so at every observable point the team only references roster players.
func (c *Controller) CreatePlayerAt(ctx context.Context, index int, name string) (model.Player, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index > len(c.teams) {
		return model.Player{}, model.ErrTeamIndexOutOfRange
	}

	player, err := c.roster.AddPlayer(ctx, name)
	if err != nil {
		return model.Player{}, err
	}

	var members []model.PlayerID
	if index < len(c.teams) {
		members = append(members, c.teams[index].Members...)
	}
	members = append(members, player.ID)

	if err := c.setTeamAtLocked(index, members); err != nil {
		return model.Player{}, err
	}
	return player, nil
}

// Teams returns a copy of the current team sequence
func (c *Controller) Teams() []model.Team {
	c.mu.RLock()
	defer c.mu.RUnlock()

	teams := make([]model.Team, len(c.teams))
	for i, t := range c.teams {
		teams[i] = model.Team{Members: append([]model.PlayerID(nil), t.Members...)}
	}
	return teams
}

// SelectableFor returns the roster players eligible to be added to the
// team at index: everyone not already selected into any team. Index may
// be the trailing append slot.
func (c *Controller) SelectableFor(index int) ([]model.Player, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if index < 0 || index > len(c.teams) {
		return nil, model.ErrTeamIndexOutOfRange
	}

	selected := c.selectedLocked()
	var eligible []model.Player
	for _, p := range c.roster.Players() {
		if _, taken := selected[p.ID]; !taken {
			eligible = append(eligible, p)
		}
	}
	return eligible, nil
}

// Selected returns the set of players currently in any team
func (c *Controller) Selected() map[model.PlayerID]struct{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selectedLocked()
}

func (c *Controller) selectedLocked() map[model.PlayerID]struct{} {
	selected := make(map[model.PlayerID]struct{})
	for _, team := range c.teams {
		for _, id := range team.Members {
			selected[id] = struct{}{}
		}
	}
	return selected
}

// OnPlayerDeleted removes the player from every team; teams left with no
// members are dropped, surviving teams keep their relative order. Wired
// as a roster deletion hook so the cascade happens within RemovePlayer.
func (c *Controller) OnPlayerDeleted(id model.PlayerID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	teams := c.teams[:0]
	for _, team := range c.teams {
		remaining := team.WithoutPlayer(id)
		if len(remaining.Members) > 0 {
			teams = append(teams, remaining)
		}
	}
	c.teams = teams
}

// Clear empties the assembly, returning it to the idle state
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.teams = nil
}
