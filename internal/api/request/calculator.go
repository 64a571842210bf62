package request

// CalculatorRequest is the body of POST /api/fund/{uuid}/calculator.
// Omitted fields take the calculator defaults.
type CalculatorRequest struct {
	Deposit   *float64 `json:"deposit"`
	Timeframe string   `json:"timeframe"`
}

// CalculatorQuery holds the raw query parameters of GET /api/fund/{uuid}/calculator.
type CalculatorQuery struct {
	Deposit   string
	Timeframe string
}
