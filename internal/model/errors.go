package model

import "errors"

// Common errors used across the application
var (
	// Roster errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrEmptyName      = errors.New("player name must not be empty")

	// Storage errors
	ErrSnapshotNotFound = errors.New("roster snapshot not found")

	// Team assembly errors
	ErrTeamIndexOutOfRange   = errors.New("team index out of range")
	ErrDuplicatePlayer       = errors.New("player listed more than once in team")
	ErrPlayerAlreadySelected = errors.New("player already selected into another team")

	// Match errors
	ErrInsufficientTeams = errors.New("at least two teams are required")
	ErrEmptyTeam         = errors.New("every team needs at least one member")
	ErrShapeMismatch     = errors.New("rating update shape does not match input teams")
)
