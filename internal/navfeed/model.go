package navfeed

import "time"

// Response represents the raw JSON response of the chart API.
// Close prices are pointers because the API reports missing sessions as null.
type Response struct {
	Chart struct {
		Result []Result `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Result is one symbol's entry in a chart response.
type Result struct {
	Meta struct {
		Currency           string   `json:"currency"`
		Symbol             string   `json:"symbol"`
		RegularMarketPrice *float64 `json:"regularMarketPrice"`
		RegularMarketTime  int64    `json:"regularMarketTime"`
		PreviousClose      *float64 `json:"previousClose"`
		ChartPreviousClose *float64 `json:"chartPreviousClose"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []Quote `json:"quote"`
	} `json:"indicators"`
}

// Quote holds the price arrays of a result, aligned with its timestamps.
type Quote struct {
	Close []*float64 `json:"close"`
}

// Price is the latest traded price of a symbol and the close before it.
type Price struct {
	Symbol        string
	Currency      string
	Price         float64
	PreviousClose float64
	Time          time.Time
}
