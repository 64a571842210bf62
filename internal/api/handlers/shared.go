package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/api/response"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/apperrors"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/validation"
	"github.com/rs/zerolog"
)

// maxBodyBytes caps the size of JSON request bodies.
const maxBodyBytes = 1 << 20

// parseJSON decodes the request body into T. Unknown fields are rejected.
func parseJSON[T any](r *http.Request) (T, error) {
	var v T
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("invalid JSON body: %w", err)
	}
	return v, nil
}

// errorStatus maps a service error onto an HTTP status code.
func errorStatus(err error) int {
	var valErr *validation.Error
	switch {
	case errors.As(err, &valErr),
		errors.Is(err, apperrors.ErrInvalidDeposit),
		errors.Is(err, apperrors.ErrInvalidTimeframe),
		errors.Is(err, apperrors.ErrInvalidDateRange),
		errors.Is(err, apperrors.ErrInvalidUUID):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrFundNotFound),
		errors.Is(err, apperrors.ErrArticleNotFound),
		errors.Is(err, apperrors.ErrHeroContentNotFound),
		errors.Is(err, apperrors.ErrCMSNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrCMSNetwork):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError writes err as a JSON error envelope. Validation errors
// carry their field map as details. fallback names the failed operation for
// server errors.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, fallback error) {
	status := errorStatus(err)

	var valErr *validation.Error
	if errors.As(err, &valErr) {
		response.RespondError(w, r, status, "validation failed", valErr.Fields)
		return
	}

	message := fallback.Error()
	switch status {
	case http.StatusBadRequest:
		message = "invalid request"
	case http.StatusNotFound:
		message = "not found"
	case http.StatusBadGateway:
		message = apperrors.ErrCMSNetwork.Error()
	case http.StatusInternalServerError:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg(fallback.Error())
	}

	response.RespondError(w, r, status, message, err.Error())
}
