package model

import "time"

// PlayerID uniquely identifies a player across the system.
// IDs are assigned at creation and never reused, even after deletion.
type PlayerID string

// Skill is a player's rating state: a mean estimate and an uncertainty
// estimate. It is owned by the rating model; the rest of the system only
// ever replaces it wholesale.
type Skill struct {
	Mu    float64 `json:"mu"`
	Sigma float64 `json:"sigma"`
}

// Player represents a tracked competitor.
// Names are display labels only; identity is always the ID, and two live
// players may legally share a name.
type Player struct {
	ID        PlayerID  `json:"id"`
	Name      string    `json:"name"`
	Skill     Skill     `json:"skill"`
	CreatedAt time.Time `json:"created_at"`
}
