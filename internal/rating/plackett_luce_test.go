package rating

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/jlattimer/skillrank/internal/model"
)

type PlackettLuceSuite struct {
	suite.Suite
	model *PlackettLuce
}

func TestPlackettLuceSuite(t *testing.T) {
	suite.Run(t, new(PlackettLuceSuite))
}

func (s *PlackettLuceSuite) SetupTest() {
	s.model = NewPlackettLuce()
}

func (s *PlackettLuceSuite) TestNewRating() {
	skill := s.model.NewRating()

	s.InDelta(25.0, skill.Mu, 1e-9)
	s.InDelta(25.0/3.0, skill.Sigma, 1e-9)
}

func (s *PlackettLuceSuite) TestOrdinalDefaultIsZero() {
	s.InDelta(0.0, s.model.Ordinal(s.model.NewRating()), 1e-9)
}

func (s *PlackettLuceSuite) TestOrdinalRewardsCertainty() {
	confident := model.Skill{Mu: 25, Sigma: 1}
	uncertain := model.Skill{Mu: 25, Sigma: 8}

	s.Greater(s.model.Ordinal(confident), s.model.Ordinal(uncertain))
}

func (s *PlackettLuceSuite) TestPredictWinEvenMatch() {
	a := s.model.NewRating()
	b := s.model.NewRating()

	wins := s.model.PredictWin([][]model.Skill{{a}, {b}})

	s.Require().Len(wins, 2)
	s.InDelta(0.5, wins[0], 1e-9)
	s.InDelta(0.5, wins[1], 1e-9)
}

func (s *PlackettLuceSuite) TestPredictWinFavorsStrongerTeam() {
	strong := model.Skill{Mu: 32, Sigma: 4}
	weak := model.Skill{Mu: 20, Sigma: 4}

	wins := s.model.PredictWin([][]model.Skill{{strong}, {weak}})

	s.Require().Len(wins, 2)
	s.Greater(wins[0], wins[1])
	s.InDelta(1.0, wins[0]+wins[1], 1e-9)
}

func (s *PlackettLuceSuite) TestPredictWinThreeTeamsSumsToOne() {
	teams := [][]model.Skill{
		{{Mu: 28, Sigma: 6}},
		{{Mu: 25, Sigma: 7}, {Mu: 24, Sigma: 5}},
		{{Mu: 22, Sigma: 8}},
	}

	wins := s.model.PredictWin(teams)

	s.Require().Len(wins, 3)
	var total float64
	for _, w := range wins {
		total += w
	}
	s.InDelta(1.0, total, 1e-9)
}

func (s *PlackettLuceSuite) TestPredictWinFewerThanTwoTeams() {
	s.Nil(s.model.PredictWin(nil))
	s.Nil(s.model.PredictWin([][]model.Skill{{s.model.NewRating()}}))
}

func (s *PlackettLuceSuite) TestPredictDrawEvenMatch() {
	a := s.model.NewRating()
	b := s.model.NewRating()

	draw := s.model.PredictDraw([][]model.Skill{{a}, {b}})

	s.Greater(draw, 0.0)
	s.Less(draw, 1.0)
}

func (s *PlackettLuceSuite) TestPredictDrawLowerForMismatch() {
	even := s.model.PredictDraw([][]model.Skill{
		{{Mu: 25, Sigma: 4}},
		{{Mu: 25, Sigma: 4}},
	})
	mismatched := s.model.PredictDraw([][]model.Skill{
		{{Mu: 35, Sigma: 4}},
		{{Mu: 15, Sigma: 4}},
	})

	s.Greater(even, mismatched)
}

func (s *PlackettLuceSuite) TestPredictDrawFewerThanTwoTeams() {
	s.InDelta(0.0, s.model.PredictDraw(nil), 1e-9)
	s.InDelta(0.0, s.model.PredictDraw([][]model.Skill{{s.model.NewRating()}}), 1e-9)
}

func (s *PlackettLuceSuite) TestRateHeadToHead() {
	winner := s.model.NewRating()
	loser := s.model.NewRating()

	rated := s.model.Rate([][]model.Skill{{winner}, {loser}})

	s.Require().Len(rated, 2)
	s.Require().Len(rated[0], 1)
	s.Require().Len(rated[1], 1)

	s.Greater(rated[0][0].Mu, winner.Mu)
	s.Less(rated[1][0].Mu, loser.Mu)
	s.Less(rated[0][0].Sigma, winner.Sigma)
	s.Less(rated[1][0].Sigma, loser.Sigma)

	// A symmetric result between equal default ratings
	s.InDelta(rated[0][0].Mu-25, 25-rated[1][0].Mu, 1e-9)
}

func (s *PlackettLuceSuite) TestRatePreservesShape() {
	teams := [][]model.Skill{
		{{Mu: 27, Sigma: 5}, {Mu: 23, Sigma: 6}},
		{{Mu: 25, Sigma: 7}},
		{{Mu: 24, Sigma: 4}, {Mu: 26, Sigma: 5}, {Mu: 22, Sigma: 8}},
	}

	rated := s.model.Rate(teams)

	s.Require().Len(rated, len(teams))
	for i := range teams {
		s.Len(rated[i], len(teams[i]))
	}
}

func (s *PlackettLuceSuite) TestRatePlacementOrderMatters() {
	a := s.model.NewRating()
	b := s.model.NewRating()
	c := s.model.NewRating()

	rated := s.model.Rate([][]model.Skill{{a}, {b}, {c}})

	// First placed gains the most, last placed loses the most
	s.Greater(rated[0][0].Mu, rated[1][0].Mu)
	s.Greater(rated[1][0].Mu, rated[2][0].Mu)
}

func (s *PlackettLuceSuite) TestRateSigmaNeverNegative() {
	sharp := model.Skill{Mu: 25, Sigma: 0.001}

	rated := s.model.Rate([][]model.Skill{{sharp}, {sharp}})

	s.Greater(rated[0][0].Sigma, 0.0)
	s.Greater(rated[1][0].Sigma, 0.0)
}
