package growth

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func nav(t *testing.T, date string, value float64) model.NavObservation {
	t.Helper()
	return model.NavObservation{Date: day(t, date), NAV: value}
}

func dividend(t *testing.T, date string, amount float64) model.DividendObservation {
	t.Helper()
	return model.DividendObservation{Date: day(t, date), Amount: amount}
}

// sampleSeries is the three-point series used throughout the calculator docs.
func sampleSeries(t *testing.T) []model.NavObservation {
	t.Helper()
	return []model.NavObservation{
		nav(t, "2015-01-01", 100),
		nav(t, "2020-01-01", 150),
		nav(t, "2025-01-01", 200),
	}
}

// randomSeries builds a strictly increasing series with positive NAVs.
func randomSeries(r *rand.Rand, size int) []model.NavObservation {
	date := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	value := 10 + r.Float64()*90
	navs := make([]model.NavObservation, 0, size)
	for range size {
		navs = append(navs, model.NavObservation{Date: date, NAV: value})
		date = date.AddDate(0, 0, 1+r.IntN(60))
		value *= 0.9 + r.Float64()*0.25
	}
	return navs
}
