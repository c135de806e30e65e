package middleware

import (
	"encoding/json"
	"net/http"
)

// Error codes emitted by middleware responses.
const (
	ErrorCodeInternal    = "INTERNAL_ERROR"
	ErrorCodeRateLimited = "RATE_LIMIT_EXCEEDED"
	ErrorCodeTimeout     = "REQUEST_TIMEOUT"
)

// WriteError writes a JSON error body with the given status code.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   code,
		"message": message,
	})
}
