package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/api/request"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
)

var isinPattern = regexp.MustCompile(`^([A-Z]{2})([A-Z0-9]{9})([0-9]{1})$`)

// ValidateSeedFund validates the fund that imported series are attached to.
func ValidateSeedFund(req request.SeedFund) error {
	errors := make(map[string]string)

	// Required field
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if strings.TrimSpace(req.Isin) == "" {
		errors["isin"] = "isin is required"
	} else if !isinPattern.MatchString(req.Isin) {
		errors["isin"] = "isin structure is not correct"
	}

	if strings.TrimSpace(req.Currency) == "" {
		errors["currency"] = "currency is required"
	} else if len(req.Currency) > 3 {
		errors["currency"] = "currency must be 3 characters or less (SAR, USD)"
	}

	// optional
	if len(req.Symbol) > 20 {
		errors["symbol"] = "symbol must be 20 characters or less"
	}

	if utf8.RuneCountInString(req.NameAr) > 100 {
		errors["nameAr"] = "nameAr must be 100 characters or less"
	}

	switch req.RiskLevel {
	case "", model.RiskLow, model.RiskMedium, model.RiskHigh:
	default:
		errors["riskLevel"] = "riskLevel must be one of low, medium, high"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
