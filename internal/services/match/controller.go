package match

import (
	"context"
	"log/slog"

	"github.com/jlattimer/skillrank/internal/model"
	"github.com/jlattimer/skillrank/internal/rating"
)

// Roster is the slice of the roster service the reconciler depends on
type Roster interface {
	GetPlayer(id model.PlayerID) (model.Player, error)
	ReplaceRatings(ctx context.Context, updates map[model.PlayerID]model.Skill)
	Players() []model.Player
}

// Assembly is the slice of the assembly service the reconciler depends on
type Assembly interface {
	Teams() []model.Team
	Clear()
}

// Controller bridges the team assembly and the rating model: it produces
// live outcome estimates and finalizes matches by merging a batch rating
// update back into the roster.
type Controller struct {
	roster      Roster
	assembly    Assembly
	ratingModel rating.Model
	logger      *slog.Logger
}

// NewController creates a new match controller
func NewController(roster Roster, assembly Assembly, ratingModel rating.Model, logger *slog.Logger) *Controller {
	return &Controller{
		roster:      roster,
		assembly:    assembly,
		ratingModel: ratingModel,
		logger:      logger,
	}
}

// Predict returns the current outcome estimate: one win probability per
// assembled team plus the draw probability, scaled into a single
// distribution that sums to 1. With fewer than two teams there is no
// meaningful estimate and the zero value is returned.
func (c *Controller) Predict() model.Prediction {
	teams := c.assembly.Teams()
	if len(teams) < 2 {
		return model.Prediction{}
	}

	skills, err := c.teamSkills(teams)
	if err != nil {
		// A team referencing an unknown player means a cascade raced
		// this read; report no estimate rather than failing.
		return model.Prediction{}
	}

	wins := c.ratingModel.PredictWin(skills)
	draw := c.ratingModel.PredictDraw(skills)

	for i := range wins {
		wins[i] *= 1 - draw
	}
	return model.Prediction{Wins: wins, Draw: draw}
}

// Finalize treats the current assembly as a match result in team order
// (first team won), computes new ratings for every participant, merges
// them into the roster all-or-nothing, and clears the assembly.
//
// Returns the re-ranked roster.
func (c *Controller) Finalize(ctx context.Context) ([]model.Player, error) {
	teams := c.assembly.Teams()
	if len(teams) < 2 {
		return nil, model.ErrInsufficientTeams
	}
	for _, team := range teams {
		if len(team.Members) == 0 {
			return nil, model.ErrEmptyTeam
		}
	}

	skills, err := c.teamSkills(teams)
	if err != nil {
		return nil, err
	}

	rated := c.ratingModel.Rate(skills)

	// The model is trusted to preserve the input shape, but a mismatch
	// would corrupt ratings if merged; verify before touching the roster.
	if len(rated) != len(teams) {
		return nil, model.ErrShapeMismatch
	}
	updates := make(map[model.PlayerID]model.Skill)
	for i, team := range teams {
		if len(rated[i]) != len(team.Members) {
			return nil, model.ErrShapeMismatch
		}
		for j, id := range team.Members {
			updates[id] = rated[i][j]
		}
	}

	c.roster.ReplaceRatings(ctx, updates)
	c.assembly.Clear()

	c.logger.Info("match finalized",
		slog.Int("teams", len(teams)),
		slog.Int("players", len(updates)),
	)

	return c.roster.Players(), nil
}

// teamSkills resolves each team member's current skill state from the
// roster, preserving the team/slot shape.
func (c *Controller) teamSkills(teams []model.Team) ([][]model.Skill, error) {
	skills := make([][]model.Skill, len(teams))
	for i, team := range teams {
		skills[i] = make([]model.Skill, len(team.Members))
		for j, id := range team.Members {
			player, err := c.roster.GetPlayer(id)
			if err != nil {
				return nil, err
			}
			skills[i][j] = player.Skill
		}
	}
	return skills, nil
}
