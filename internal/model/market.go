package model

// Data sources of a market quote.
const (
	DataSourceLive    = "live"
	DataSourceDelayed = "delayed"
	DataSourceMock    = "mock"
)

// MarketInstrument is an entry of the market overview.
// FeedSymbol is the symbol quoted on the chart feed; Placeholder is shown
// when the feed cannot quote it.
type MarketInstrument struct {
	Symbol      string
	FeedSymbol  string
	Name        string
	MarketType  string
	Region      string
	Placeholder MarketQuote
}

// MarketQuote is the latest price of an instrument and its change against
// the previous close. LastUpdated is RFC3339 and empty for placeholder data.
type MarketQuote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	LastUpdated   string  `json:"lastUpdated"`
	IsPositive    bool    `json:"isPositive"`
	DataSource    string  `json:"dataSource"`
	MarketType    string  `json:"marketType"`
	Region        string  `json:"region"`
}
