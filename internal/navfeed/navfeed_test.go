package navfeed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestParseChart(t *testing.T) {
	day := func(d int) int64 {
		return time.Date(2025, 1, d, 21, 0, 0, 0, time.UTC).Unix()
	}

	t.Run("skips null and non-positive closes", func(t *testing.T) {
		var r Result
		r.Timestamp = []int64{day(6), day(7), day(8), day(9)}
		r.Indicators.Quote = []Quote{{Close: []*float64{ptr(10), nil, ptr(0), ptr(11.5)}}}

		navs, err := ParseChart(r)
		require.NoError(t, err)
		require.Len(t, navs, 2)
		assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), navs[0].Date)
		assert.Equal(t, 10.0, navs[0].NAV)
		assert.Equal(t, 11.5, navs[1].NAV)
	})

	t.Run("keeps the last close of a day", func(t *testing.T) {
		var r Result
		r.Timestamp = []int64{day(6), day(6) + 60}
		r.Indicators.Quote = []Quote{{Close: []*float64{ptr(10), ptr(12)}}}

		navs, err := ParseChart(r)
		require.NoError(t, err)
		require.Len(t, navs, 1)
		assert.Equal(t, 12.0, navs[0].NAV)
	})

	t.Run("rejects mismatched lengths", func(t *testing.T) {
		var r Result
		r.Timestamp = []int64{day(6), day(7)}
		r.Indicators.Quote = []Quote{{Close: []*float64{ptr(10)}}}

		_, err := ParseChart(r)
		assert.Error(t, err)
	})

	t.Run("rejects empty result", func(t *testing.T) {
		_, err := ParseChart(Result{})
		assert.Error(t, err)
	})
}

func TestChartClient_FetchRecentNavs(t *testing.T) {
	ts := time.Date(2025, 3, 3, 14, 30, 0, 0, time.UTC).Unix()

	t.Run("success", func(t *testing.T) {
		var gotPath, gotRange string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotRange = r.URL.Query().Get("range")
			fmt.Fprintf(w, `{"chart":{"result":[{"meta":{"symbol":"FUND"},"timestamp":[%d],"indicators":{"quote":[{"close":[101.25]}]}}],"error":null}}`, ts)
		}))
		defer server.Close()

		navs, err := NewChartClient(server.URL).FetchRecentNavs(context.Background(), "FUND")
		require.NoError(t, err)
		assert.Equal(t, "/v8/finance/chart/FUND", gotPath)
		assert.Equal(t, "5d", gotRange)
		require.Len(t, navs, 1)
		assert.Equal(t, 101.25, navs[0].NAV)
		assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), navs[0].Date)
	})

	t.Run("api error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`)
		}))
		defer server.Close()

		_, err := NewChartClient(server.URL).FetchRecentNavs(context.Background(), "NOPE")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "No data found")
	})

	t.Run("no results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"chart":{"result":[],"error":null}}`)
		}))
		defer server.Close()

		_, err := NewChartClient(server.URL).FetchRecentNavs(context.Background(), "FUND")
		assert.Error(t, err)
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `<html>`)
		}))
		defer server.Close()

		_, err := NewChartClient(server.URL).FetchRecentNavs(context.Background(), "FUND")
		assert.Error(t, err)
	})
}

func TestParsePrice(t *testing.T) {
	t.Run("prefers previous close", func(t *testing.T) {
		var r Result
		r.Meta.Symbol = "SPY"
		r.Meta.Currency = "USD"
		r.Meta.RegularMarketPrice = ptr(510)
		r.Meta.RegularMarketTime = 1740000000
		r.Meta.PreviousClose = ptr(500)
		r.Meta.ChartPreviousClose = ptr(490)

		p, err := ParsePrice(r)
		require.NoError(t, err)
		assert.Equal(t, Price{
			Symbol:        "SPY",
			Currency:      "USD",
			Price:         510,
			PreviousClose: 500,
			Time:          time.Unix(1740000000, 0).UTC(),
		}, p)
	})

	t.Run("falls back to chart previous close", func(t *testing.T) {
		var r Result
		r.Meta.RegularMarketPrice = ptr(510)
		r.Meta.ChartPreviousClose = ptr(490)

		p, err := ParsePrice(r)
		require.NoError(t, err)
		assert.Equal(t, 490.0, p.PreviousClose)
	})

	t.Run("rejects missing price", func(t *testing.T) {
		var r Result
		r.Meta.PreviousClose = ptr(500)

		_, err := ParsePrice(r)
		assert.Error(t, err)
	})

	t.Run("rejects missing previous close", func(t *testing.T) {
		var r Result
		r.Meta.RegularMarketPrice = ptr(510)

		_, err := ParsePrice(r)
		assert.Error(t, err)
	})
}

func TestChartClient_FetchPrice(t *testing.T) {
	var gotPath, gotRange string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRange = r.URL.Query().Get("range")
		fmt.Fprint(w, `{"chart":{"result":[{"meta":{"symbol":"BTC-USD","currency":"USD","regularMarketPrice":65000.5,"regularMarketTime":1740000000,"chartPreviousClose":64000}}],"error":null}}`)
	}))
	defer server.Close()

	p, err := NewChartClient(server.URL).FetchPrice(context.Background(), "BTC-USD")
	require.NoError(t, err)
	assert.Equal(t, "/v8/finance/chart/BTC-USD", gotPath)
	assert.Equal(t, "1d", gotRange)
	assert.Equal(t, 65000.5, p.Price)
	assert.Equal(t, 64000.0, p.PreviousClose)
}
