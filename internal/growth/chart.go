package growth

import (
	"math"
	"slices"
	"time"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
)

// maxInteriorTicks bounds the labels chosen between the first and last year.
const maxInteriorTicks = 4

// ReduceToYearly keeps one observation per calendar year within
// [start, end] (inclusive): the latest one of that year. Points are
// returned in ascending year order.
func ReduceToYearly(navs []model.NavObservation, start, end time.Time) []model.ChartPoint {
	points := []model.ChartPoint{}

	for _, o := range sortedNavs(navs) {
		if o.Date.Before(start) || o.Date.After(end) {
			continue
		}
		year := o.Date.Year()
		if n := len(points); n > 0 && points[n-1].Year == year {
			points[n-1].Value = o.NAV
			continue
		}
		points = append(points, model.ChartPoint{Year: year, Value: o.NAV})
	}

	return points
}

// SelectTickYears picks the years worth labelling on a chart axis.
// Up to four distinct years are all returned. Denser series keep the first
// and last year plus at most four evenly spaced years in between.
func SelectTickYears(series []model.ChartPoint) []int {
	years := make([]int, 0, len(series))
	for _, p := range series {
		if !slices.Contains(years, p.Year) {
			years = append(years, p.Year)
		}
	}

	n := len(years)
	if n <= maxInteriorTicks {
		return years
	}

	ticks := []int{years[0]}
	steps := min(maxInteriorTicks, n-2)
	for i := 1; i <= steps; i++ {
		idx := int(math.Round(float64(i*(n-1)) / float64(steps+1)))
		if !slices.Contains(ticks, years[idx]) {
			ticks = append(ticks, years[idx])
		}
	}
	if !slices.Contains(ticks, years[n-1]) {
		ticks = append(ticks, years[n-1])
	}

	return ticks
}
