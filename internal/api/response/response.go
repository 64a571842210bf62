// Package response provides utilities for sending consistent HTTP responses.
// It includes helpers for JSON responses and standardized error responses.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// ErrorResponse represents a structured error response returned by the API.
// Details holds either a message or, for validation failures, a map of field
// errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// RespondJSON sends a JSON response with the given status code.
// If data is nil, only the status code is sent (useful for 204 No Content).
// Encoding errors are logged to the request logger but do not fail the response.
func RespondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	if data == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode JSON response")
	}
}

// RespondError sends a structured error response with the given status code.
// The message should be a user-friendly error description.
//
// Example:
//
//	response.RespondError(w, r, http.StatusBadRequest, "validation failed", valErr.Fields)
//	response.RespondError(w, r, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), err.Error())
func RespondError(w http.ResponseWriter, r *http.Request, status int, message string, details any) {
	RespondJSON(w, r, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
