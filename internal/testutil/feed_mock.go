package testutil

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/navfeed"
)

// MockFeedClient is a mock implementation of navfeed.Client and
// navfeed.QuoteClient for testing.
// It returns predefined data instead of making actual API calls.
type MockFeedClient struct {
	// Navs maps a symbol to the observations returned for it
	Navs map[string][]model.NavObservation
	// Prices maps a symbol to the price returned for it
	Prices map[string]navfeed.Price
	// Errors maps a symbol to the error returned for it
	Errors map[string]error
	// QueryCount tracks how many times FetchRecentNavs was called
	QueryCount int
	// PriceCount tracks how many times FetchPrice was called
	PriceCount atomic.Int32
}

// NewMockFeedClient creates a mock feed with no data.
func NewMockFeedClient() *MockFeedClient {
	return &MockFeedClient{
		Navs:   map[string][]model.NavObservation{},
		Prices: map[string]navfeed.Price{},
		Errors: map[string]error{},
	}
}

// FetchRecentNavs returns the configured observations or error for symbol.
func (m *MockFeedClient) FetchRecentNavs(_ context.Context, symbol string) ([]model.NavObservation, error) {
	m.QueryCount++
	if err := m.Errors[symbol]; err != nil {
		return nil, err
	}
	return m.Navs[symbol], nil
}

// FetchPrice returns the configured price or error for symbol. A symbol
// with neither configured fails. Safe for concurrent use once configured.
func (m *MockFeedClient) FetchPrice(_ context.Context, symbol string) (navfeed.Price, error) {
	m.PriceCount.Add(1)
	if err := m.Errors[symbol]; err != nil {
		return navfeed.Price{}, err
	}
	p, ok := m.Prices[symbol]
	if !ok {
		return navfeed.Price{}, fmt.Errorf("no price configured for %s", symbol)
	}
	return p, nil
}

// WithPrice configures the price returned for symbol.
func (m *MockFeedClient) WithPrice(symbol string, price, previousClose float64, at time.Time) *MockFeedClient {
	m.Prices[symbol] = navfeed.Price{
		Symbol:        symbol,
		Price:         price,
		PreviousClose: previousClose,
		Time:          at,
	}
	return m
}

// WithNavs configures the observations returned for symbol.
func (m *MockFeedClient) WithNavs(symbol string, navs ...model.NavObservation) *MockFeedClient {
	m.Navs[symbol] = navs
	return m
}

// WithError configures the error returned for symbol.
func (m *MockFeedClient) WithError(symbol string, err error) *MockFeedClient {
	m.Errors[symbol] = err
	return m
}

// RecentNavs creates one observation per day for the given number of days,
// ending on end, starting at base and rising by 0.5 per day.
func RecentNavs(end time.Time, days int, base float64) []model.NavObservation {
	navs := make([]model.NavObservation, days)
	for i := range days {
		navs[i] = model.NavObservation{
			Date: end.AddDate(0, 0, i-days+1),
			NAV:  base + float64(i)*0.5,
		}
	}
	return navs
}
