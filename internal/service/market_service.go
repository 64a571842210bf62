package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/navfeed"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	// quoteConcurrency bounds the number of feed requests in flight.
	quoteConcurrency = 3

	// delayedAfter is the age after which a feed price counts as delayed.
	delayedAfter = 20 * time.Minute
)

// DefaultMarketInstruments returns the instruments of the market overview in
// display order.
func DefaultMarketInstruments() []model.MarketInstrument {
	return []model.MarketInstrument{
		{
			Symbol: "TASI", FeedSymbol: "^TASI.SR", Name: "Tadawul All Share Index",
			MarketType: "index", Region: "saudi",
			Placeholder: model.MarketQuote{Price: 12345.67, Change: 123.45, ChangePercent: 1.00},
		},
		{
			Symbol: "MT30", FeedSymbol: "^MT30.SR", Name: "Saudi Blue-Chip Index",
			MarketType: "index", Region: "saudi",
			Placeholder: model.MarketQuote{Price: 23456.78, Change: -12.34, ChangePercent: -0.50},
		},
		{
			Symbol: "SP500", FeedSymbol: "SPY", Name: "S&P 500 ETF (SPY)",
			MarketType: "index", Region: "us",
			Placeholder: model.MarketQuote{Price: 4592.34, Change: 45.67, ChangePercent: 1.00},
		},
		{
			Symbol: "NASDAQ", FeedSymbol: "QQQ", Name: "NASDAQ-100 ETF (QQQ)",
			MarketType: "index", Region: "us",
			Placeholder: model.MarketQuote{Price: 14321.56, Change: -123.45, ChangePercent: -0.85},
		},
		{
			Symbol: "BTC", FeedSymbol: "BTC-USD", Name: "Bitcoin",
			MarketType: "crypto", Region: "global",
		},
		{
			Symbol: "ETH", FeedSymbol: "ETH-USD", Name: "Ethereum",
			MarketType: "crypto", Region: "global",
		},
	}
}

// MarketService quotes the instruments of the market overview.
// An instrument the feed cannot quote is reported with its placeholder and
// the mock data source; it never fails the whole overview.
type MarketService struct {
	client      navfeed.QuoteClient
	instruments []model.MarketInstrument
	ttl         time.Duration
	now         func() time.Time
	log         zerolog.Logger

	mu        sync.Mutex
	cached    []model.MarketQuote
	fetchedAt time.Time
}

// NewMarketService creates a MarketService. Quotes are cached for ttl;
// a zero ttl fetches on every call.
func NewMarketService(
	client navfeed.QuoteClient,
	instruments []model.MarketInstrument,
	ttl time.Duration,
	log zerolog.Logger,
) *MarketService {
	return &MarketService{
		client:      client,
		instruments: instruments,
		ttl:         ttl,
		now:         time.Now,
		log:         log.With().Str("component", "market").Logger(),
	}
}

// SetClock replaces the clock used for cache expiry and delay detection.
func (s *MarketService) SetClock(now func() time.Time) {
	s.now = now
}

// Quotes returns one quote per instrument, in instrument order.
func (s *MarketService) Quotes(ctx context.Context) []model.MarketQuote {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.cached != nil && s.ttl > 0 && now.Sub(s.fetchedAt) < s.ttl {
		return slices.Clone(s.cached)
	}

	quotes := make([]model.MarketQuote, len(s.instruments))

	var g errgroup.Group
	g.SetLimit(quoteConcurrency)
	for i, inst := range s.instruments {
		g.Go(func() error {
			price, err := s.client.FetchPrice(ctx, inst.FeedSymbol)
			if err != nil {
				s.log.Warn().Err(err).Str("symbol", inst.Symbol).Msg("Quote unavailable, using placeholder")
				quotes[i] = placeholderQuote(inst)
				return nil
			}
			quotes[i] = feedQuote(inst, price, now)
			return nil
		})
	}
	_ = g.Wait()

	// A cancelled request must not pin placeholders in the cache.
	if ctx.Err() == nil {
		s.cached = quotes
		s.fetchedAt = now
	}

	return slices.Clone(quotes)
}

func feedQuote(inst model.MarketInstrument, price navfeed.Price, now time.Time) model.MarketQuote {
	last := decimal.NewFromFloat(price.Price)
	prev := decimal.NewFromFloat(price.PreviousClose)
	change := last.Sub(prev)
	pct := change.Div(prev).Mul(decimal.NewFromInt(100))

	source := model.DataSourceLive
	if now.Sub(price.Time) > delayedAfter {
		source = model.DataSourceDelayed
	}

	changeValue, _ := change.Round(2).Float64()
	pctValue, _ := pct.Round(2).Float64()

	return model.MarketQuote{
		Symbol:        inst.Symbol,
		Name:          inst.Name,
		Price:         price.Price,
		Change:        changeValue,
		ChangePercent: pctValue,
		LastUpdated:   price.Time.UTC().Format(time.RFC3339),
		IsPositive:    !change.IsNegative(),
		DataSource:    source,
		MarketType:    inst.MarketType,
		Region:        inst.Region,
	}
}

func placeholderQuote(inst model.MarketInstrument) model.MarketQuote {
	q := inst.Placeholder
	q.Symbol = inst.Symbol
	q.Name = inst.Name
	q.LastUpdated = ""
	q.IsPositive = q.Change >= 0
	q.DataSource = model.DataSourceMock
	q.MarketType = inst.MarketType
	q.Region = inst.Region
	return q
}
