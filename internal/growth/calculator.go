package growth

import (
	"fmt"
	"math"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/apperrors"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
)

// Calculator defaults used when no user input has been given yet.
const (
	DefaultDeposit   = 50000.0
	DefaultTimeframe = model.Period10Y
)

// DefaultInput returns the calculator state shown before any user edit.
func DefaultInput() model.CalculatorInput {
	return model.CalculatorInput{
		Deposit:   DefaultDeposit,
		Timeframe: DefaultTimeframe,
	}
}

// Calculator owns the user input for one fund and keeps its output in sync.
// The NAV and dividend series are shared read-only; a Calculator itself is
// not safe for concurrent mutation.
type Calculator struct {
	navs      []model.NavObservation
	dividends []model.DividendObservation
	input     model.CalculatorInput
	output    model.CalculatorOutput
}

// NewCalculator creates a calculator with the default input and computes its first output.
func NewCalculator(navs []model.NavObservation, dividends []model.DividendObservation) *Calculator {
	c := &Calculator{
		navs:      navs,
		dividends: dividends,
		input:     DefaultInput(),
	}
	c.recompute()
	return c
}

// Input returns the current user input.
func (c *Calculator) Input() model.CalculatorInput {
	return c.input
}

// Output returns the output derived from the current input.
func (c *Calculator) Output() model.CalculatorOutput {
	return c.output
}

// SetDeposit changes the initial deposit. Values that are not finite and
// strictly positive are rejected and leave the calculator untouched.
func (c *Calculator) SetDeposit(deposit float64) error {
	if math.IsNaN(deposit) || math.IsInf(deposit, 0) || deposit <= 0 {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidDeposit, deposit)
	}
	c.input.Deposit = deposit
	c.recompute()
	return nil
}

// SetTimeframe selects the lookback period used for projection.
func (c *Calculator) SetTimeframe(period model.LookbackPeriod) error {
	if !period.Valid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidTimeframe, period)
	}
	c.input.Timeframe = period
	c.recompute()
	return nil
}

func (c *Calculator) recompute() {
	c.output = Compute(c.navs, c.dividends, c.input)
}

// Compute derives the full calculator output from the series and input.
//
// The selected period is looked up in ComputePeriods over the whole NAV
// series. When the series is empty the status is StatusNoHistory; when the
// period did not resolve it is StatusPeriodUnavailable. In both cases every
// numeric field is zero so that no earlier result can leak into the display.
func Compute(navs []model.NavObservation, dividends []model.DividendObservation, input model.CalculatorInput) model.CalculatorOutput {
	output := model.CalculatorOutput{
		Period:      input.Timeframe,
		PeriodLabel: PeriodLabel(input.Timeframe),
		ChartSeries: []model.ChartPoint{},
		TickYears:   []int{},
	}

	periods := ComputePeriods(navs)
	if len(periods) == 0 {
		output.Status = model.StatusNoHistory
		return output
	}

	selected, ok := FindPeriod(periods, input.Timeframe)
	if !ok {
		output.Status = model.StatusPeriodUnavailable
		return output
	}

	startDate, endDate := selected.StartDate, selected.EndDate
	projected := Project(input.Deposit, selected.CAGR, selected.Years)

	output.Status = model.StatusOK
	output.StartDate = &startDate
	output.EndDate = &endDate
	output.Years = selected.Years
	output.CAGR = selected.CAGR
	output.ProjectedValue = projected
	output.TotalGain = projected - input.Deposit
	if input.Deposit != 0 {
		output.TotalReturn = output.TotalGain / input.Deposit
	}
	output.DividendSum = SumDividends(dividends, startDate, endDate)
	output.ChartSeries = ReduceToYearly(navs, startDate, endDate)
	output.TickYears = SelectTickYears(output.ChartSeries)

	return output
}

// PeriodLabel is the human wording used next to the average annual return.
func PeriodLabel(period model.LookbackPeriod) string {
	if period == model.PeriodInception {
		return "since inception"
	}
	return string(period)
}
