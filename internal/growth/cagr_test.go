package growth

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
)

func TestCalculateCAGR(t *testing.T) {
	tests := []struct {
		name     string
		startNav float64
		endNav   float64
		years    float64
		want     float64
	}{
		{name: "doubling over ten years", startNav: 100, endNav: 200, years: 10, want: 0.0717735},
		{name: "decline", startNav: 200, endNav: 100, years: 1, want: -0.5},
		{name: "flat", startNav: 100, endNav: 100, years: 3, want: 0},
		{name: "zero start nav falls back to zero", startNav: 0, endNav: 100, years: 5, want: 0},
		{name: "negative start nav falls back to zero", startNav: -1, endNav: 100, years: 5, want: 0},
		{name: "zero years falls back to zero", startNav: 100, endNav: 150, years: 0, want: 0},
		{name: "negative years falls back to zero", startNav: 100, endNav: 150, years: -2, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CalculateCAGR(tt.startNav, tt.endNav, tt.years), 1e-6)
		})
	}
}

func TestComputePeriods(t *testing.T) {
	t.Run("empty series returns empty result", func(t *testing.T) {
		got := ComputePeriods(nil)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("sample series resolves every period in order", func(t *testing.T) {
		got := ComputePeriods(sampleSeries(t))

		require.Len(t, got, 5)
		order := make([]model.LookbackPeriod, len(got))
		for i, r := range got {
			order[i] = r.Period
		}
		assert.Equal(t, []model.LookbackPeriod{
			model.PeriodInception, model.Period1Y, model.Period3Y, model.Period5Y, model.Period10Y,
		}, order)
	})

	t.Run("inception spans the whole series", func(t *testing.T) {
		got := ComputePeriods(sampleSeries(t))

		inception := got[0]
		assert.Equal(t, day(t, "2015-01-01"), inception.StartDate)
		assert.Equal(t, day(t, "2025-01-01"), inception.EndDate)
		assert.InDelta(t, 10.0, inception.Years, 0.01)
		assert.InDelta(t, 0.0718, inception.CAGR, 0.0005)
	})

	t.Run("10Y starts on the exact target date", func(t *testing.T) {
		r, ok := FindPeriod(ComputePeriods(sampleSeries(t)), model.Period10Y)

		require.True(t, ok)
		assert.Equal(t, day(t, "2015-01-01"), r.StartDate)
		assert.Equal(t, 10.0, r.Years)
		assert.InDelta(t, 0.0717735, r.CAGR, 1e-6)
	})

	t.Run("5Y uses the middle observation", func(t *testing.T) {
		r, ok := FindPeriod(ComputePeriods(sampleSeries(t)), model.Period5Y)

		require.True(t, ok)
		assert.Equal(t, 150.0, r.StartNav)
		assert.Equal(t, 200.0, r.EndNav)
		assert.InDelta(t, 0.0592, r.CAGR, 0.0001)
	})

	t.Run("sparse 3Y window starts at the latest observation", func(t *testing.T) {
		r, ok := FindPeriod(ComputePeriods(sampleSeries(t)), model.Period3Y)

		require.True(t, ok)
		assert.Equal(t, day(t, "2025-01-01"), r.StartDate)
		assert.Equal(t, 200.0, r.StartNav)
		assert.Equal(t, 3.0, r.Years)
		assert.Equal(t, 0.0, r.CAGR)
	})

	t.Run("periods beyond the available history are omitted", func(t *testing.T) {
		navs := []model.NavObservation{
			nav(t, "2023-01-01", 100),
			nav(t, "2025-01-01", 120),
		}

		got := ComputePeriods(navs)

		require.Len(t, got, 2)
		assert.Equal(t, model.PeriodInception, got[0].Period)
		assert.Equal(t, model.Period1Y, got[1].Period)
		_, ok := FindPeriod(got, model.Period3Y)
		assert.False(t, ok)
	})

	t.Run("leap day end date subtracts to Feb 28", func(t *testing.T) {
		navs := []model.NavObservation{
			nav(t, "2023-02-27", 100),
			nav(t, "2023-02-28", 110),
			nav(t, "2024-02-29", 121),
		}

		r, ok := FindPeriod(ComputePeriods(navs), model.Period1Y)

		require.True(t, ok)
		assert.Equal(t, day(t, "2023-02-28"), r.StartDate)
		assert.InDelta(t, 0.1, r.CAGR, 1e-9)
	})

	t.Run("unsorted input is sorted without touching the caller's slice", func(t *testing.T) {
		navs := []model.NavObservation{
			nav(t, "2025-01-01", 200),
			nav(t, "2015-01-01", 100),
			nav(t, "2020-01-01", 150),
		}

		got := ComputePeriods(navs)

		assert.Equal(t, day(t, "2015-01-01"), got[0].StartDate)
		assert.Equal(t, day(t, "2025-01-01"), navs[0].Date)
	})

	t.Run("single observation has zero growth", func(t *testing.T) {
		got := ComputePeriods([]model.NavObservation{nav(t, "2024-05-05", 42)})

		require.Len(t, got, 1)
		assert.Equal(t, 0.0, got[0].Years)
		assert.Equal(t, 0.0, got[0].CAGR)
	})
}

func TestComputePeriods_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))

	for i := range 200 {
		navs := randomSeries(r, 1+r.IntN(400))
		results := ComputePeriods(navs)

		inceptions := 0
		for _, res := range results {
			assert.False(t, res.StartDate.After(res.EndDate), "iteration %d: %s starts after it ends", i, res.Period)
			assert.Equal(t, navs[len(navs)-1].Date, res.EndDate)

			switch res.Period {
			case model.PeriodInception:
				inceptions++
				assert.Equal(t, navs[0].Date, res.StartDate)
			case model.Period1Y:
				assert.Equal(t, 1.0, res.Years)
			case model.Period3Y:
				assert.Equal(t, 3.0, res.Years)
			case model.Period5Y:
				assert.Equal(t, 5.0, res.Years)
			case model.Period10Y:
				assert.Equal(t, 10.0, res.Years)
			}
		}
		assert.Equal(t, 1, inceptions, "iteration %d", i)
		assert.Equal(t, model.PeriodInception, results[0].Period)
	}
}
