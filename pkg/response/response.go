// Package response writes JSON responses in the wire format the shop API
// speaks: record payloads are returned bare, errors carry a message array.
package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Messages writes an error body of the form {"message": [...]}.
func Messages(w http.ResponseWriter, status int, msgs ...string) {
	JSON(w, status, map[string][]string{"message": msgs})
}

// NotFound writes the 404 body the API uses for missing records.
func NotFound(w http.ResponseWriter) {
	Messages(w, http.StatusNotFound, "Not found")
}

// Unauthorized writes a 401.
func Unauthorized(w http.ResponseWriter, msg string) {
	Messages(w, http.StatusUnauthorized, msg)
}

// NoContent writes a bare 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
