package model

// Team is an ordered set of distinct players drawn from the roster,
// referenced by ID so a team can never hold a stale copy of a player.
type Team struct {
	Members []PlayerID `json:"members"`
}

// Contains reports whether the team includes the given player.
func (t Team) Contains(id PlayerID) bool {
	for _, m := range t.Members {
		if m == id {
			return true
		}
	}
	return false
}

// WithoutPlayer returns a copy of the team with the given player removed.
func (t Team) WithoutPlayer(id PlayerID) Team {
	members := make([]PlayerID, 0, len(t.Members))
	for _, m := range t.Members {
		if m != id {
			members = append(members, m)
		}
	}
	return Team{Members: members}
}

// Prediction is a per-team win probability read-out plus the probability
// of an overall draw. Wins is in team order; Wins plus Draw sum to 1 when
// at least two teams are assembled.
type Prediction struct {
	Wins []float64 `json:"wins"`
	Draw float64   `json:"draw"`
}
