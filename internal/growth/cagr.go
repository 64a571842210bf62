// Package growth implements the investment growth calculator: CAGR over
// lookback periods, compound projection, yearly chart reduction and the
// orchestrator that derives a CalculatorOutput from user input.
//
// Every function in this package is pure. Series passed in are never modified.
package growth

import (
	"math"
	"slices"
	"time"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
)

// DaysPerYear is the average calendar year length used for inception windows.
const DaysPerYear = 365.25

// lookbackYears are the fixed-length windows resolved after Inception, in output order.
var lookbackYears = []struct {
	period model.LookbackPeriod
	years  int
}{
	{model.Period1Y, 1},
	{model.Period3Y, 3},
	{model.Period5Y, 5},
	{model.Period10Y, 10},
}

// CalculateCAGR returns the constant annual rate that grows startNav into endNav
// over the given number of years. Degenerate inputs (startNav <= 0 or years <= 0)
// yield 0 instead of NaN or Inf.
func CalculateCAGR(startNav, endNav, years float64) float64 {
	if startNav <= 0 || years <= 0 {
		return 0
	}
	return math.Pow(endNav/startNav, 1/years) - 1
}

// ComputePeriods derives a CagrResult for Inception and for every fixed
// lookback window the series reaches back to, all ending at the latest observation.
//
// The Inception result is always first. 1Y, 3Y, 5Y and 10Y follow in that order.
// A window starts at the first observation dated on or after endDate minus n
// years and is omitted when the series does not reach back to that date.
// An empty series returns an empty slice.
func ComputePeriods(navs []model.NavObservation) []model.CagrResult {
	if len(navs) == 0 {
		return []model.CagrResult{}
	}

	sorted := sortedNavs(navs)
	end := sorted[len(sorted)-1]
	inception := sorted[0]

	results := make([]model.CagrResult, 0, len(lookbackYears)+1)

	inceptionYears := end.Date.Sub(inception.Date).Hours() / 24 / DaysPerYear
	results = append(results, model.CagrResult{
		Period:    model.PeriodInception,
		StartDate: inception.Date,
		EndDate:   end.Date,
		StartNav:  inception.NAV,
		EndNav:    end.NAV,
		Years:     inceptionYears,
		CAGR:      CalculateCAGR(inception.NAV, end.NAV, inceptionYears),
	})

	for _, lb := range lookbackYears {
		target := subtractYears(end.Date, lb.years)
		if inception.Date.After(target) {
			continue
		}
		idx := slices.IndexFunc(sorted, func(o model.NavObservation) bool {
			return !o.Date.Before(target)
		})
		if idx == -1 {
			continue
		}
		start := sorted[idx]
		years := float64(lb.years)
		results = append(results, model.CagrResult{
			Period:    lb.period,
			StartDate: start.Date,
			EndDate:   end.Date,
			StartNav:  start.NAV,
			EndNav:    end.NAV,
			Years:     years,
			CAGR:      CalculateCAGR(start.NAV, end.NAV, years),
		})
	}

	return results
}

// FindPeriod returns the result for period, if it resolved.
func FindPeriod(results []model.CagrResult, period model.LookbackPeriod) (model.CagrResult, bool) {
	for _, r := range results {
		if r.Period == period {
			return r, true
		}
	}
	return model.CagrResult{}, false
}

// subtractYears moves t back n calendar years keeping month and day.
// Feb 29 lands on Feb 28 when the target year is not a leap year.
func subtractYears(t time.Time, n int) time.Time {
	year := t.Year() - n
	month := t.Month()
	day := t.Day()
	if last := daysInMonth(year, month, t.Location()); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// sortedNavs returns navs ordered ascending by date, copying only when needed.
func sortedNavs(navs []model.NavObservation) []model.NavObservation {
	cmp := func(a, b model.NavObservation) int { return a.Date.Compare(b.Date) }
	if slices.IsSortedFunc(navs, cmp) {
		return navs
	}
	sorted := slices.Clone(navs)
	slices.SortStableFunc(sorted, cmp)
	return sorted
}
