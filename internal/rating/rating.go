package rating

import "github.com/jlattimer/skillrank/internal/model"

// Model is the skill-rating model consumed by the roster and match
// services. Teams are ordered slices of skill states; wherever a model
// operation takes teams, the first team is the match winner and team order
// is placement order.
type Model interface {
	// NewRating returns the initial skill state for a new player.
	NewRating() model.Skill

	// Ordinal projects a skill state onto a single scalar for ranking.
	Ordinal(skill model.Skill) float64

	// PredictWin returns one win probability per team, in team order.
	// The probabilities sum to 1 across teams. Returns nil for fewer
	// than two teams.
	PredictWin(teams [][]model.Skill) []float64

	// PredictDraw returns the probability of an overall draw. Returns 0
	// for fewer than two teams.
	PredictDraw(teams [][]model.Skill) float64

	// Rate computes post-match skill states. The result has exactly the
	// same team/slot shape as the input.
	Rate(teams [][]model.Skill) [][]model.Skill
}

// Default model constants, following the usual Weng-Lin parameterisation:
// sigma is mu over z, beta is half of sigma.
const (
	defaultZ     = 3.0
	defaultMu    = 25.0
	defaultSigma = defaultMu / defaultZ
	defaultBeta  = defaultSigma / 2.0
	epsilon      = 0.0001
)
