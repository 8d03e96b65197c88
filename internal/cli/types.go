package cli

// API response shapes mirrored for decoding and display

// Player is a ranked roster entry
type Player struct {
	Rank    int     `json:"rank"`
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Ordinal float64 `json:"ordinal"`
	Mu      float64 `json:"mu"`
	Sigma   float64 `json:"sigma"`
}

// Roster is the ranked player list
type Roster struct {
	Players []Player `json:"players"`
}

// TeamMember identifies one player inside a team
type TeamMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Team is one assembled team
type Team struct {
	Index          int          `json:"index"`
	Members        []TeamMember `json:"members"`
	WinProbability *float64     `json:"win_probability,omitempty"`
}

// Assembly is the current team assembly
type Assembly struct {
	Teams           []Team   `json:"teams"`
	NextIndex       int      `json:"next_index"`
	DrawProbability *float64 `json:"draw_probability,omitempty"`
}

// SelectablePlayers lists eligible players for a team slot
type SelectablePlayers struct {
	Players []TeamMember `json:"players"`
}

// Prediction is the match outcome estimate
type Prediction struct {
	Wins []float64 `json:"wins"`
	Draw float64   `json:"draw"`
}
