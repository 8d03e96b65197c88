package rating

import (
	"math"

	"github.com/jlattimer/skillrank/internal/model"
)

// PlackettLuce is a Bayesian skill-rating model over ranked team
// outcomes. Team placements follow a Plackett-Luce distribution over the
// teams' combined skill; win and draw estimates come from pairwise normal
// comparisons of team performance.
type PlackettLuce struct {
	mu    float64
	sigma float64
	beta  float64
}

// NewPlackettLuce creates a model with the default parameters.
func NewPlackettLuce() *PlackettLuce {
	return &PlackettLuce{
		mu:    defaultMu,
		sigma: defaultSigma,
		beta:  defaultBeta,
	}
}

// Ensure PlackettLuce implements the interface
var _ Model = (*PlackettLuce)(nil)

// NewRating returns the initial skill state for a new player.
func (m *PlackettLuce) NewRating() model.Skill {
	return model.Skill{Mu: m.mu, Sigma: m.sigma}
}

// Ordinal returns mu minus z sigma: a conservative scalar estimate of
// skill used for ranking.
func (m *PlackettLuce) Ordinal(skill model.Skill) float64 {
	return skill.Mu - defaultZ*skill.Sigma
}

// teamSummary aggregates one team's members for the team-level math.
type teamSummary struct {
	mu      float64 // sum of member means
	sigmaSq float64 // sum of member variances
}

func summarise(teams [][]model.Skill) []teamSummary {
	summaries := make([]teamSummary, len(teams))
	for i, team := range teams {
		for _, p := range team {
			summaries[i].mu += p.Mu
			summaries[i].sigmaSq += p.Sigma * p.Sigma
		}
	}
	return summaries
}

// PredictWin returns each team's probability of winning, from pairwise
// comparisons of team performance distributions. Probabilities sum to 1
// across teams.
func (m *PlackettLuce) PredictWin(teams [][]model.Skill) []float64 {
	n := len(teams)
	if n < 2 {
		return nil
	}

	summaries := summarise(teams)
	betaSq := m.beta * m.beta
	denom := float64(n*(n-1)) / 2

	probs := make([]float64, n)
	for i, a := range summaries {
		var total float64
		for q, b := range summaries {
			if q == i {
				continue
			}
			sigmaBar := math.Sqrt(float64(n)*betaSq + a.sigmaSq + b.sigmaSq)
			total += phi((a.mu - b.mu) / sigmaBar)
		}
		probs[i] = total / denom
	}
	return probs
}

// PredictDraw returns the probability that the match ends in an overall
// draw, averaged over all team pairs. The draw margin shrinks as more
// players take part.
func (m *PlackettLuce) PredictDraw(teams [][]model.Skill) float64 {
	n := len(teams)
	if n < 2 {
		return 0
	}

	totalPlayers := 0
	for _, team := range teams {
		totalPlayers += len(team)
	}
	if totalPlayers == 0 {
		return 0
	}

	drawProbability := 1 / float64(totalPlayers)
	drawMargin := math.Sqrt(float64(totalPlayers)) * m.beta * phiInverse((1+drawProbability)/2)

	summaries := summarise(teams)
	betaSq := m.beta * m.beta

	var total float64
	var pairs int
	for i, a := range summaries {
		for _, b := range summaries[i+1:] {
			sigmaBar := math.Sqrt(float64(n)*betaSq + a.sigmaSq + b.sigmaSq)
			total += phi((drawMargin-a.mu+b.mu)/sigmaBar) - phi((b.mu-a.mu-drawMargin)/sigmaBar)
			pairs++
		}
	}
	return total / float64(pairs)
}

// Rate computes post-match skill states for every player. The input team
// order is the placement order (first team won); the output preserves the
// input team/slot shape exactly.
func (m *PlackettLuce) Rate(teams [][]model.Skill) [][]model.Skill {
	summaries := summarise(teams)
	betaSq := m.beta * m.beta

	// c aggregates overall performance variance across the match.
	var cSq float64
	for _, s := range summaries {
		cSq += s.sigmaSq + betaSq
	}
	c := math.Sqrt(cSq)

	// sumQ[q] is the sum of exp(mu/c) over teams placed at or below team q.
	sumQ := make([]float64, len(summaries))
	for q := range summaries {
		for i := q; i < len(summaries); i++ {
			sumQ[q] += math.Exp(summaries[i].mu / c)
		}
	}

	result := make([][]model.Skill, len(teams))
	for i, team := range teams {
		iMuOverCe := math.Exp(summaries[i].mu / c)

		var omegaSum, deltaSum float64
		for q := 0; q <= i; q++ {
			quotient := iMuOverCe / sumQ[q]
			if q == i {
				omegaSum += 1 - quotient
			} else {
				omegaSum -= quotient
			}
			deltaSum += quotient * (1 - quotient)
		}

		iSigmaSq := summaries[i].sigmaSq
		iGamma := math.Sqrt(iSigmaSq) / c
		iOmega := omegaSum * iSigmaSq / c
		iDelta := iGamma * deltaSum * iSigmaSq / cSq

		result[i] = make([]model.Skill, len(team))
		for j, p := range team {
			playerVar := p.Sigma * p.Sigma
			result[i][j] = model.Skill{
				Mu:    p.Mu + playerVar/iSigmaSq*iOmega,
				Sigma: p.Sigma * math.Sqrt(math.Max(1-playerVar/iSigmaSq*iDelta, epsilon)),
			}
		}
	}
	return result
}
