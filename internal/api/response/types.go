package response

import "github.com/jlattimer/skillrank/internal/model"

// Player represents a roster player in API responses. Rank is 1-based
// position in the current roster order.
type Player struct {
	Rank    int     `json:"rank,omitempty"`
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Ordinal float64 `json:"ordinal"`
	Mu      float64 `json:"mu"`
	Sigma   float64 `json:"sigma"`
}

// PlayerFromModel converts a single player, without a rank position
func PlayerFromModel(p model.Player, ordinal func(model.Skill) float64) Player {
	return Player{
		ID:      string(p.ID),
		Name:    p.Name,
		Ordinal: ordinal(p.Skill),
		Mu:      p.Skill.Mu,
		Sigma:   p.Skill.Sigma,
	}
}

// Roster is the ranked player list
type Roster struct {
	Players []Player `json:"players"`
}

// RosterFromModel converts an ordered player list to a response Roster.
// ordinal derives the ranking scalar for each player's skill state.
func RosterFromModel(players []model.Player, ordinal func(model.Skill) float64) Roster {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = Player{
			Rank:    i + 1,
			ID:      string(p.ID),
			Name:    p.Name,
			Ordinal: ordinal(p.Skill),
			Mu:      p.Skill.Mu,
			Sigma:   p.Skill.Sigma,
		}
	}
	return Roster{Players: out}
}

// TeamMember identifies one player inside a team
type TeamMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Team represents one assembled team. WinProbability is absent when
// fewer than two teams are assembled.
type Team struct {
	Index          int          `json:"index"`
	Members        []TeamMember `json:"members"`
	WinProbability *float64     `json:"win_probability,omitempty"`
}

// Assembly is the current team assembly. NextIndex is the virtual
// trailing empty slot a new team can be created at. DrawProbability is
// absent when fewer than two teams are assembled.
type Assembly struct {
	Teams           []Team   `json:"teams"`
	NextIndex       int      `json:"next_index"`
	DrawProbability *float64 `json:"draw_probability,omitempty"`
}

// AssemblyFromModel converts teams plus a prediction to a response
// Assembly. names resolves player IDs to display names.
func AssemblyFromModel(teams []model.Team, prediction model.Prediction, names map[model.PlayerID]string) Assembly {
	out := Assembly{
		Teams:     make([]Team, len(teams)),
		NextIndex: len(teams),
	}

	for i, team := range teams {
		members := make([]TeamMember, len(team.Members))
		for j, id := range team.Members {
			members[j] = TeamMember{ID: string(id), Name: names[id]}
		}
		out.Teams[i] = Team{Index: i, Members: members}
	}

	if len(prediction.Wins) == len(teams) && len(teams) >= 2 {
		for i := range out.Teams {
			win := prediction.Wins[i]
			out.Teams[i].WinProbability = &win
		}
		draw := prediction.Draw
		out.DrawProbability = &draw
	}

	return out
}

// SelectablePlayers lists the roster players eligible for a team slot
type SelectablePlayers struct {
	Players []TeamMember `json:"players"`
}

// SelectableFromModel converts eligible players to a response
func SelectableFromModel(players []model.Player) SelectablePlayers {
	out := SelectablePlayers{Players: make([]TeamMember, len(players))}
	for i, p := range players {
		out.Players[i] = TeamMember{ID: string(p.ID), Name: p.Name}
	}
	return out
}
