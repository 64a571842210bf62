package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/api/request"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/growth"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
)

// ParseTimeframe matches a timeframe case-insensitively against the lookback
// periods, so "10y" and "inception" are accepted.
func ParseTimeframe(value string) (model.LookbackPeriod, bool) {
	value = strings.TrimSpace(value)
	for _, p := range model.LookbackPeriods {
		if strings.EqualFold(value, string(p)) {
			return p, true
		}
	}
	return "", false
}

// ValidateCalculatorRequest converts a calculator body into calculator input.
// Omitted fields take the calculator defaults.
func ValidateCalculatorRequest(req request.CalculatorRequest) (model.CalculatorInput, error) {
	errors := make(map[string]string)
	input := growth.DefaultInput()

	if req.Deposit != nil {
		if !validDeposit(*req.Deposit) {
			errors["deposit"] = "deposit must be a positive number"
		} else {
			input.Deposit = *req.Deposit
		}
	}

	if strings.TrimSpace(req.Timeframe) != "" {
		p, ok := ParseTimeframe(req.Timeframe)
		if !ok {
			errors["timeframe"] = "timeframe must be one of 1Y, 3Y, 5Y, 10Y, Inception"
		} else {
			input.Timeframe = p
		}
	}

	if len(errors) > 0 {
		return model.CalculatorInput{}, &Error{Fields: errors}
	}
	return input, nil
}

// ValidateCalculatorQuery converts calculator query parameters into calculator input.
func ValidateCalculatorQuery(q request.CalculatorQuery) (model.CalculatorInput, error) {
	req := request.CalculatorRequest{Timeframe: q.Timeframe}

	if raw := strings.TrimSpace(q.Deposit); raw != "" {
		deposit, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.CalculatorInput{}, &Error{Fields: map[string]string{"deposit": "deposit is not a valid number"}}
		}
		req.Deposit = &deposit
	}

	return ValidateCalculatorRequest(req)
}

func validDeposit(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
