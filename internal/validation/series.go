package validation

import (
	"fmt"
	"math"
	"slices"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/apperrors"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/api/request"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
)

// ValidateNavRecords converts NAV file records into a NAV series sorted by
// date. Every date must parse, every NAV must be a finite positive number
// and no date may appear twice.
func ValidateNavRecords(records []request.NavRecord) ([]model.NavObservation, error) {
	navs := make([]model.NavObservation, 0, len(records))
	for i, r := range records {
		date, err := ParseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if !(r.Nav > 0) || math.IsInf(r.Nav, 1) {
			return nil, fmt.Errorf("record %d (%s): %w", i, r.Date, apperrors.ErrNonPositiveNav)
		}
		navs = append(navs, model.NavObservation{Date: date, NAV: r.Nav})
	}

	slices.SortStableFunc(navs, func(a, b model.NavObservation) int {
		return a.Date.Compare(b.Date)
	})

	for i := 1; i < len(navs); i++ {
		if !navs[i].Date.After(navs[i-1].Date) {
			return nil, fmt.Errorf("nav date %s: %w", navs[i].Date.Format(DateLayout), apperrors.ErrDuplicateEntry)
		}
	}

	return navs, nil
}

// ValidateDividendRecords converts dividend file records into a dividend
// series sorted by date. Amounts must be finite and not negative; dates may
// repeat.
func ValidateDividendRecords(records []request.DividendRecord) ([]model.DividendObservation, error) {
	dividends := make([]model.DividendObservation, 0, len(records))
	for i, r := range records {
		date, err := ParseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if !(r.Amount >= 0) || math.IsInf(r.Amount, 1) {
			return nil, fmt.Errorf("record %d (%s): %w", i, r.Date, apperrors.ErrNegativeAmount)
		}
		dividends = append(dividends, model.DividendObservation{Date: date, Amount: r.Amount})
	}

	slices.SortStableFunc(dividends, func(a, b model.DividendObservation) int {
		return a.Date.Compare(b.Date)
	})

	return dividends, nil
}
