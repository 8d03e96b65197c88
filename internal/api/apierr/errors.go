package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jlattimer/skillrank/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodePlayerNotFound        = "PLAYER_NOT_FOUND"
	CodeEmptyName             = "EMPTY_NAME"
	CodeTeamIndexOutOfRange   = "TEAM_INDEX_OUT_OF_RANGE"
	CodeDuplicatePlayer       = "DUPLICATE_PLAYER"
	CodePlayerAlreadySelected = "PLAYER_ALREADY_SELECTED"
	CodeInsufficientTeams     = "INSUFFICIENT_TEAMS"
	CodeEmptyTeam             = "EMPTY_TEAM"
	CodeInternalError         = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrEmptyName):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyName, "Player name must not be empty"}}
	case errors.Is(err, model.ErrTeamIndexOutOfRange):
		return &httpError{http.StatusBadRequest, APIError{CodeTeamIndexOutOfRange, "Team index out of range"}}
	case errors.Is(err, model.ErrDuplicatePlayer):
		return &httpError{http.StatusConflict, APIError{CodeDuplicatePlayer, "Player listed more than once in team"}}
	case errors.Is(err, model.ErrPlayerAlreadySelected):
		return &httpError{http.StatusConflict, APIError{CodePlayerAlreadySelected, "Player already selected into another team"}}
	case errors.Is(err, model.ErrInsufficientTeams):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientTeams, "At least two teams are required"}}
	case errors.Is(err, model.ErrEmptyTeam):
		return &httpError{http.StatusConflict, APIError{CodeEmptyTeam, "Every team needs at least one member"}}
	case errors.Is(err, model.ErrShapeMismatch):
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Rating update failed"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "An internal error occurred"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "An internal error occurred"}}
}
