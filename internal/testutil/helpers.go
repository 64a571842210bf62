package testutil

import (
	"database/sql"
	"math/rand"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/navfeed"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/repository"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/service"
	"github.com/rs/zerolog"
)

// NewTestFundService creates a FundService for testing.
func NewTestFundService(t *testing.T, db *sql.DB) *service.FundService {
	t.Helper()
	return service.NewFundService(
		repository.NewFundRepository(db),
		repository.NewDividendRepository(db),
	)
}

// NewTestSeriesService creates a SeriesService with an empty snapshot set.
func NewTestSeriesService(t *testing.T, db *sql.DB) *service.SeriesService {
	t.Helper()
	return service.NewSeriesService(
		repository.NewFundRepository(db),
		repository.NewDividendRepository(db),
		zerolog.Nop(),
	)
}

// NewTestCalculatorService creates a CalculatorService together with the
// SeriesService backing it.
func NewTestCalculatorService(t *testing.T, db *sql.DB) (*service.CalculatorService, *service.SeriesService) {
	t.Helper()
	series := NewTestSeriesService(t, db)
	return service.NewCalculatorService(series), series
}

// NewTestNewsService creates a NewsService reading from source.
func NewTestNewsService(t *testing.T, source service.ContentSource) *service.NewsService {
	t.Helper()
	return service.NewNewsService(source, zerolog.Nop())
}

// NewTestRefreshService creates a RefreshService using the given feed client.
func NewTestRefreshService(t *testing.T, db *sql.DB, feed navfeed.Client) *service.RefreshService {
	t.Helper()
	return service.NewRefreshService(repository.NewFundRepository(db), feed, zerolog.Nop())
}

// NewTestMarketService creates an uncached MarketService over the default
// instruments using the given feed client.
func NewTestMarketService(t *testing.T, feed navfeed.QuoteClient) *service.MarketService {
	t.Helper()
	return service.NewMarketService(feed, service.DefaultMarketInstruments(), 0, zerolog.Nop())
}

// NewTestImportService creates an ImportService for testing.
func NewTestImportService(t *testing.T, db *sql.DB) *service.ImportService {
	t.Helper()
	return service.NewImportService(
		db,
		repository.NewFundRepository(db),
		repository.NewDividendRepository(db),
		zerolog.Nop(),
	)
}

// NewTestSystemService creates a SystemService with every feature enabled.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()
	return service.NewSystemService(db, map[string]bool{
		"calculator":  true,
		"cms":         true,
		"nav_refresh": true,
		"market":      true,
	})
}

// MakeID generates a UUID string for use in tests.
func MakeID() string {
	return uuid.New().String()
}

// MakeISIN generates a twelve character ISIN-shaped code for testing.
//
// Example usage:
//
//	isin := testutil.MakeISIN("SA")
//	// Returns: "SA1A2B3C4D57"
func MakeISIN(prefix string) string {
	if prefix == "" {
		prefix = "SA"
	}
	//nolint:gosec // G404: Using math/rand for test data generation is acceptable
	return prefix + randomAlphanumeric(9) + strconv.Itoa(rand.Intn(10))
}

// MakeSymbol generates a ticker symbol for testing.
//
// Example usage:
//
//	symbol := testutil.MakeSymbol("FUND")
//	// Returns: "FUND1A2B"
func MakeSymbol(base string) string {
	if base == "" {
		base = "TEST"
	}
	return base + randomAlphanumeric(4)
}

// MakeFundName generates a unique fund name for testing.
//
// Example usage:
//
//	name := testutil.MakeFundName("Income Fund")
//	// Returns: "Income Fund XYZ789"
func MakeFundName(base string) string {
	if base == "" {
		base = "Fund"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
