package growth

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/apperrors"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
)

func sampleDividends(t *testing.T) []model.DividendObservation {
	t.Helper()
	return []model.DividendObservation{
		dividend(t, "2019-06-01", 5),
		dividend(t, "2021-06-01", 7),
	}
}

func TestNewCalculator(t *testing.T) {
	c := NewCalculator(sampleSeries(t), sampleDividends(t))

	assert.Equal(t, DefaultInput(), c.Input())

	out := c.Output()
	assert.Equal(t, model.StatusOK, out.Status)
	assert.Equal(t, model.Period10Y, out.Period)
	assert.Equal(t, "10Y", out.PeriodLabel)
	assert.InDelta(t, 0.0717735, out.CAGR, 1e-6)
	assert.InDelta(t, 100000, out.ProjectedValue, 1)
	assert.InDelta(t, 50000, out.TotalGain, 1)
	assert.InDelta(t, 1.0, out.TotalReturn, 1e-4)
	assert.Equal(t, 12.0, out.DividendSum)
	assert.Equal(t, []model.ChartPoint{
		{Year: 2015, Value: 100},
		{Year: 2020, Value: 150},
		{Year: 2025, Value: 200},
	}, out.ChartSeries)
	assert.Equal(t, []int{2015, 2020, 2025}, out.TickYears)
}

func TestCalculator_SetDeposit(t *testing.T) {
	t.Run("recomputes projection", func(t *testing.T) {
		c := NewCalculator(sampleSeries(t), nil)

		require.NoError(t, c.SetDeposit(1000))

		assert.Equal(t, 1000.0, c.Input().Deposit)
		assert.InDelta(t, 2000, c.Output().ProjectedValue, 0.01)
	})

	for _, bad := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		t.Run("rejects invalid deposit", func(t *testing.T) {
			c := NewCalculator(sampleSeries(t), nil)
			before := c.Output()

			err := c.SetDeposit(bad)

			assert.ErrorIs(t, err, apperrors.ErrInvalidDeposit)
			assert.Equal(t, DefaultDeposit, c.Input().Deposit)
			assert.Equal(t, before, c.Output())
		})
	}
}

func TestCalculator_SetTimeframe(t *testing.T) {
	t.Run("switches to inception", func(t *testing.T) {
		c := NewCalculator(sampleSeries(t), sampleDividends(t))

		require.NoError(t, c.SetTimeframe(model.PeriodInception))

		out := c.Output()
		assert.Equal(t, model.PeriodInception, out.Period)
		assert.Equal(t, "since inception", out.PeriodLabel)
		assert.InDelta(t, 10.0, out.Years, 0.01)
	})

	t.Run("window restricts dividends and chart", func(t *testing.T) {
		c := NewCalculator(sampleSeries(t), sampleDividends(t))

		require.NoError(t, c.SetTimeframe(model.Period5Y))

		out := c.Output()
		assert.Equal(t, 7.0, out.DividendSum)
		assert.Equal(t, []model.ChartPoint{{Year: 2020, Value: 150}, {Year: 2025, Value: 200}}, out.ChartSeries)
		assert.InDelta(t, 50000*math.Pow(200.0/150.0, 1), out.ProjectedValue, 1e-6)
	})

	t.Run("rejects unknown period", func(t *testing.T) {
		c := NewCalculator(sampleSeries(t), nil)

		err := c.SetTimeframe("7Y")

		assert.ErrorIs(t, err, apperrors.ErrInvalidTimeframe)
		assert.Equal(t, model.Period10Y, c.Input().Timeframe)
	})

	t.Run("unavailable period clears previous output", func(t *testing.T) {
		navs := []model.NavObservation{
			nav(t, "2023-01-01", 100),
			nav(t, "2025-01-01", 121),
		}
		c := NewCalculator(navs, nil)
		require.NoError(t, c.SetTimeframe(model.PeriodInception))
		require.Equal(t, model.StatusOK, c.Output().Status)

		require.NoError(t, c.SetTimeframe(model.Period5Y))

		out := c.Output()
		assert.Equal(t, model.StatusPeriodUnavailable, out.Status)
		assert.Equal(t, model.Period5Y, out.Period)
		assert.Zero(t, out.CAGR)
		assert.Zero(t, out.ProjectedValue)
		assert.Nil(t, out.StartDate)
		assert.Empty(t, out.ChartSeries)
	})
}

func TestCompute(t *testing.T) {
	t.Run("empty series reports no history", func(t *testing.T) {
		out := Compute(nil, nil, DefaultInput())

		assert.Equal(t, model.StatusNoHistory, out.Status)
		assert.Zero(t, out.ProjectedValue)
		assert.NotNil(t, out.ChartSeries)
		assert.NotNil(t, out.TickYears)
	})

	t.Run("is deterministic", func(t *testing.T) {
		r := rand.New(rand.NewPCG(42, 43))
		for range 50 {
			navs := randomSeries(r, 1+r.IntN(500))
			input := model.CalculatorInput{
				Deposit:   1 + r.Float64()*1e6,
				Timeframe: model.LookbackPeriods[r.IntN(len(model.LookbackPeriods))],
			}

			first := Compute(navs, nil, input)
			second := Compute(navs, nil, input)

			assert.Equal(t, first, second)
			assert.Equal(t, math.Float64bits(first.ProjectedValue), math.Float64bits(second.ProjectedValue))
		}
	})
}
