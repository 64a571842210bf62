package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/apperrors"
)

// DateLayout is the accepted format of day-resolution dates.
const DateLayout = "2006-01-02"

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidUUID, id)
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD date as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t.UTC(), nil
}

// ValidateDateRange parses optional start and end query values. Empty values
// yield zero times. Start must not be after end.
func ValidateDateRange(start, end string) (time.Time, time.Time, error) {
	errors := make(map[string]string)
	var startDate, endDate time.Time
	var err error

	if strings.TrimSpace(start) != "" {
		if startDate, err = ParseDate(start); err != nil {
			errors["start"] = err.Error()
		}
	}
	if strings.TrimSpace(end) != "" {
		if endDate, err = ParseDate(end); err != nil {
			errors["end"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return time.Time{}, time.Time{}, &Error{Fields: errors}
	}

	if !startDate.IsZero() && !endDate.IsZero() && startDate.After(endDate) {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidDateRange
	}

	return startDate, endDate, nil
}

// ValidateLimit parses an optional positive page size. An empty value yields
// def; values above maxLimit are capped.
func ValidateLimit(value string, def, maxLimit int) (int, error) {
	if strings.TrimSpace(value) == "" {
		return def, nil
	}

	limit, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || limit <= 0 {
		return 0, &Error{Fields: map[string]string{"limit": "limit must be a positive integer"}}
	}
	return min(limit, maxLimit), nil
}
