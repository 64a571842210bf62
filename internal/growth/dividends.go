package growth

import (
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
)

// SumDividends totals the distributions dated within [start, end] (inclusive).
func SumDividends(dividends []model.DividendObservation, start, end time.Time) float64 {
	amounts := make([]float64, 0, len(dividends))
	for _, d := range dividends {
		if d.Date.Before(start) || d.Date.After(end) {
			continue
		}
		amounts = append(amounts, d.Amount)
	}
	return floats.Sum(amounts)
}
