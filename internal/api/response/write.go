package response

import (
	"encoding/json"
	"net/http"
)

// JSON serializes data onto w with the given status code. A nil data
// value sends headers only.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// NoContent replies 204, used by the idempotent roster delete
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
