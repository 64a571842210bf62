package model

import "time"

// LookbackPeriod identifies a historical window ending at the latest NAV.
type LookbackPeriod string

const (
	Period1Y        LookbackPeriod = "1Y"
	Period3Y        LookbackPeriod = "3Y"
	Period5Y        LookbackPeriod = "5Y"
	Period10Y       LookbackPeriod = "10Y"
	PeriodInception LookbackPeriod = "Inception"
)

// LookbackPeriods lists every period in the order the calculator presents them.
var LookbackPeriods = []LookbackPeriod{Period1Y, Period3Y, Period5Y, Period10Y, PeriodInception}

// Valid reports whether p is one of the fixed lookback periods.
func (p LookbackPeriod) Valid() bool {
	for _, known := range LookbackPeriods {
		if p == known {
			return true
		}
	}
	return false
}

// CagrResult is the compound annual growth rate over one lookback period.
type CagrResult struct {
	Period    LookbackPeriod `json:"period"`
	StartDate time.Time      `json:"startDate"`
	EndDate   time.Time      `json:"endDate"`
	StartNav  float64        `json:"startNav"`
	EndNav    float64        `json:"endNav"`
	Years     float64        `json:"years"`
	CAGR      float64        `json:"cagr"`
}

// ChartPoint is the representative NAV for one calendar year.
type ChartPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// CalculatorInput holds the user-editable calculator fields.
type CalculatorInput struct {
	Deposit   float64        `json:"deposit"`
	Timeframe LookbackPeriod `json:"timeframe"`
}

// CalculatorStatus tells the caller whether the output can be displayed.
type CalculatorStatus string

const (
	// StatusOK means every output field was derived from the selected period.
	StatusOK CalculatorStatus = "ok"
	// StatusPeriodUnavailable means the series does not reach back far enough
	// for the selected timeframe.
	StatusPeriodUnavailable CalculatorStatus = "period_unavailable"
	// StatusNoHistory means the fund has no NAV observations at all.
	StatusNoHistory CalculatorStatus = "no_history"
)

// CalculatorOutput is everything derived from a CalculatorInput.
// Outputs that are not StatusOK carry zero values and an empty chart.
type CalculatorOutput struct {
	Status         CalculatorStatus `json:"status"`
	Period         LookbackPeriod   `json:"period"`
	PeriodLabel    string           `json:"periodLabel"`
	StartDate      *time.Time       `json:"startDate,omitempty"`
	EndDate        *time.Time       `json:"endDate,omitempty"`
	Years          float64          `json:"years"`
	CAGR           float64          `json:"cagr"`
	ProjectedValue float64          `json:"projectedValue"`
	TotalGain      float64          `json:"totalGain"`
	TotalReturn    float64          `json:"totalReturn"`
	DividendSum    float64          `json:"dividendSum"`
	ChartSeries    []ChartPoint     `json:"chartSeries"`
	TickYears      []int            `json:"tickYears"`
}

// CalculatorDisplay holds the output values formatted for the request locale.
type CalculatorDisplay struct {
	Language       string `json:"language"`
	Direction      string `json:"direction"`
	Deposit        string `json:"deposit"`
	ProjectedValue string `json:"projectedValue"`
	TotalGain      string `json:"totalGain"`
	DividendSum    string `json:"dividendSum"`
	CAGR           string `json:"cagr"`
	TotalReturn    string `json:"totalReturn"`
}

// CalculatorResult is the calculator state of one fund as served to clients.
type CalculatorResult struct {
	Fund    Fund              `json:"fund"`
	Input   CalculatorInput   `json:"input"`
	Output  CalculatorOutput  `json:"output"`
	Display CalculatorDisplay `json:"display"`
}

// FundPeriods is the lookback period table of one fund.
type FundPeriods struct {
	Fund    Fund         `json:"fund"`
	Periods []CagrResult `json:"periods"`
}
