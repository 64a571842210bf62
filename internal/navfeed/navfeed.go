// Package navfeed fetches recent daily closing NAVs from a chart API.
package navfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
)

// Client is the source of recent NAV observations for a symbol.
type Client interface {
	FetchRecentNavs(ctx context.Context, symbol string) ([]model.NavObservation, error)
}

// QuoteClient is the source of latest prices for a symbol.
type QuoteClient interface {
	FetchPrice(ctx context.Context, symbol string) (Price, error)
}

// ChartClient queries a chart API for daily closes over the last five sessions.
type ChartClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewChartClient creates a client for the chart API at baseURL.
func NewChartClient(baseURL string) *ChartClient {
	return &ChartClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchRecentNavs returns the daily closes of the last five sessions,
// ascending by date, as NAV observations truncated to the day.
//
// Sessions without a close and non-positive closes are skipped.
func (c *ChartClient) FetchRecentNavs(ctx context.Context, symbol string) ([]model.NavObservation, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=5d", c.baseURL, url.PathEscape(symbol))

	resp, err := c.query(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	return ParseChart(resp.Chart.Result[0])
}

// FetchPrice returns the latest price of symbol with the previous close.
func (c *ChartClient) FetchPrice(ctx context.Context, symbol string) (Price, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d", c.baseURL, url.PathEscape(symbol))

	resp, err := c.query(ctx, endpoint)
	if err != nil {
		return Price{}, err
	}
	if len(resp.Chart.Result) == 0 {
		return Price{}, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	return ParsePrice(resp.Chart.Result[0])
}

// ParsePrice reads the latest price from the metadata of a chart result.
// The previous close falls back to the chart's previous close.
func ParsePrice(result Result) (Price, error) {
	meta := result.Meta
	if meta.RegularMarketPrice == nil || *meta.RegularMarketPrice <= 0 {
		return Price{}, fmt.Errorf("no market price returned")
	}

	previous := meta.PreviousClose
	if previous == nil {
		previous = meta.ChartPreviousClose
	}
	if previous == nil || *previous <= 0 {
		return Price{}, fmt.Errorf("no previous close returned")
	}

	return Price{
		Symbol:        meta.Symbol,
		Currency:      meta.Currency,
		Price:         *meta.RegularMarketPrice,
		PreviousClose: *previous,
		Time:          time.Unix(meta.RegularMarketTime, 0).UTC(),
	}, nil
}

// ParseChart converts a chart result into NAV observations.
// Several timestamps on the same day keep the last close.
func ParseChart(result Result) ([]model.NavObservation, error) {
	if len(result.Timestamp) == 0 {
		return nil, fmt.Errorf("no price data returned")
	}
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no close prices returned")
	}

	closes := result.Indicators.Quote[0].Close
	if len(closes) != len(result.Timestamp) {
		return nil, fmt.Errorf("mismatched data lengths")
	}

	navs := make([]model.NavObservation, 0, len(closes))
	for i, ts := range result.Timestamp {
		if closes[i] == nil || *closes[i] <= 0 {
			continue
		}
		t := time.Unix(ts, 0).UTC()
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

		if n := len(navs); n > 0 && navs[n-1].Date.Equal(day) {
			navs[n-1].NAV = *closes[i]
			continue
		}
		navs = append(navs, model.NavObservation{Date: day, NAV: *closes[i]})
	}

	slices.SortStableFunc(navs, func(a, b model.NavObservation) int {
		return a.Date.Compare(b.Date)
	})

	return navs, nil
}

func (c *ChartClient) query(ctx context.Context, endpoint string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Response{}, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Response{}, fmt.Errorf("failed to decode chart response (status %d): %w", resp.StatusCode, err)
	}

	if response.Chart.Error != nil {
		return response, fmt.Errorf("chart error: %s", response.Chart.Error.Description)
	}
	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("chart request failed with status %d", resp.StatusCode)
	}

	return response, nil
}
