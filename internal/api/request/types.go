package request

// AddPlayerRequest is the request body for adding a roster player
type AddPlayerRequest struct {
	Name string `json:"name"`
}

// SetTeamRequest is the request body for setting a team's membership.
// An empty member list deletes the team.
type SetTeamRequest struct {
	Members []string `json:"members"`
}

// CreateTeamPlayerRequest is the request body for creating a new player
// directly into a team
type CreateTeamPlayerRequest struct {
	Name string `json:"name"`
}
