package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
)

// FundBuilder provides a fluent interface for creating test funds.
//
// Example usage:
//
//	// Simple creation with defaults
//	fund := testutil.NewFund().Build(t, db)
//
//	// Customized fund
//	fund := testutil.NewFund().
//	    WithName("Flagship Equity").
//	    WithCurrency("SAR").
//	    Build(t, db)
type FundBuilder struct {
	ID       string
	Name     string
	ISIN     string
	Symbol   string
	Currency string

	NameAr        string
	Description   string
	DescriptionAr string
	RiskLevel     string
	Sharia        bool
}

// NewFund creates a FundBuilder with sensible defaults.
func NewFund() *FundBuilder {
	return &FundBuilder{
		ID:       MakeID(),
		Name:     MakeFundName("Test Fund"),
		ISIN:     MakeISIN("SA"),
		Symbol:   MakeSymbol("TEST"),
		Currency: "SAR",
	}
}

// WithID sets a custom ID.
func (b *FundBuilder) WithID(id string) *FundBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *FundBuilder) WithName(name string) *FundBuilder {
	b.Name = name
	return b
}

// WithISIN sets a custom ISIN.
func (b *FundBuilder) WithISIN(isin string) *FundBuilder {
	b.ISIN = isin
	return b
}

// WithSymbol sets a custom symbol. An empty symbol stores NULL.
func (b *FundBuilder) WithSymbol(symbol string) *FundBuilder {
	b.Symbol = symbol
	return b
}

// WithCurrency sets the currency.
func (b *FundBuilder) WithCurrency(currency string) *FundBuilder {
	b.Currency = currency
	return b
}

// WithNameAr sets the Arabic name.
func (b *FundBuilder) WithNameAr(name string) *FundBuilder {
	b.NameAr = name
	return b
}

// WithDescription sets the English and Arabic descriptions.
func (b *FundBuilder) WithDescription(en, ar string) *FundBuilder {
	b.Description = en
	b.DescriptionAr = ar
	return b
}

// WithRiskLevel sets the risk level.
func (b *FundBuilder) WithRiskLevel(level string) *FundBuilder {
	b.RiskLevel = level
	return b
}

// WithShariaCompliant marks the fund as Sharia compliant.
func (b *FundBuilder) WithShariaCompliant() *FundBuilder {
	b.Sharia = true
	return b
}

// Build creates the fund in the database and returns it.
func (b *FundBuilder) Build(t *testing.T, db *sql.DB) model.Fund {
	t.Helper()

	query := `
		INSERT INTO fund (id, name, isin, symbol, currency, name_ar, description, description_ar, risk_level, is_sharia_compliant)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	symbol := sql.NullString{String: b.Symbol, Valid: b.Symbol != ""}
	_, err := db.Exec(query, b.ID, b.Name, b.ISIN, symbol, b.Currency,
		b.NameAr, b.Description, b.DescriptionAr, b.RiskLevel, b.Sharia)
	if err != nil {
		t.Fatalf("Failed to create test fund: %v", err)
	}

	return model.Fund{
		ID:                b.ID,
		Name:              b.Name,
		NameAr:            b.NameAr,
		Description:       b.Description,
		DescriptionAr:     b.DescriptionAr,
		Isin:              b.ISIN,
		Symbol:            b.Symbol,
		Currency:          b.Currency,
		RiskLevel:         b.RiskLevel,
		IsShariaCompliant: b.Sharia,
	}
}

// CreateFund creates a fund with the given name and default values.
func CreateFund(t *testing.T, db *sql.DB, name string) model.Fund {
	t.Helper()
	return NewFund().WithName(name).Build(t, db)
}

// NavSeriesBuilder provides a fluent interface for seeding NAV observations.
//
// Example usage:
//
//	testutil.NewNavSeries(fund.ID).
//	    Add("2015-01-01", 100).
//	    Add("2020-01-01", 150).
//	    Build(t, db)
type NavSeriesBuilder struct {
	FundID string
	Navs   []model.NavObservation
}

// NewNavSeries creates an empty NavSeriesBuilder for a fund.
func NewNavSeries(fundID string) *NavSeriesBuilder {
	return &NavSeriesBuilder{FundID: fundID}
}

// Add appends an observation on a YYYY-MM-DD date.
func (b *NavSeriesBuilder) Add(date string, nav float64) *NavSeriesBuilder {
	b.Navs = append(b.Navs, model.NavObservation{Date: Date(date), NAV: nav})
	return b
}

// Build inserts the observations and returns them.
func (b *NavSeriesBuilder) Build(t *testing.T, db *sql.DB) []model.NavObservation {
	t.Helper()

	for _, n := range b.Navs {
		_, err := db.Exec(
			`INSERT INTO fund_nav (id, fund_id, date, nav) VALUES (?, ?, ?, ?)`,
			MakeID(), b.FundID, n.Date.Format("2006-01-02"), n.NAV,
		)
		if err != nil {
			t.Fatalf("Failed to create test nav: %v", err)
		}
	}

	return b.Navs
}

// DividendSeriesBuilder provides a fluent interface for seeding dividends.
type DividendSeriesBuilder struct {
	FundID    string
	Dividends []model.DividendObservation
}

// NewDividendSeries creates an empty DividendSeriesBuilder for a fund.
func NewDividendSeries(fundID string) *DividendSeriesBuilder {
	return &DividendSeriesBuilder{FundID: fundID}
}

// Add appends a dividend on a YYYY-MM-DD date.
func (b *DividendSeriesBuilder) Add(date string, amount float64) *DividendSeriesBuilder {
	b.Dividends = append(b.Dividends, model.DividendObservation{Date: Date(date), Amount: amount})
	return b
}

// Build inserts the dividends and returns them.
func (b *DividendSeriesBuilder) Build(t *testing.T, db *sql.DB) []model.DividendObservation {
	t.Helper()

	for _, d := range b.Dividends {
		_, err := db.Exec(
			`INSERT INTO fund_dividend (id, fund_id, date, amount) VALUES (?, ?, ?, ?)`,
			MakeID(), b.FundID, d.Date.Format("2006-01-02"), d.Amount,
		)
		if err != nil {
			t.Fatalf("Failed to create test dividend: %v", err)
		}
	}

	return b.Dividends
}

// CreateSampleFund creates a fund holding the reference series used across
// calculator tests: NAV 100 on 2015-01-01, 150 on 2020-01-01 and 200 on
// 2025-01-01, with dividends of 5 (2019-06-01) and 7 (2021-06-01).
func CreateSampleFund(t *testing.T, db *sql.DB) model.Fund {
	t.Helper()

	fund := NewFund().WithName("Sample Growth Fund").Build(t, db)
	NewNavSeries(fund.ID).
		Add("2015-01-01", 100).
		Add("2020-01-01", 150).
		Add("2025-01-01", 200).
		Build(t, db)
	NewDividendSeries(fund.ID).
		Add("2019-06-01", 5).
		Add("2021-06-01", 7).
		Build(t, db)

	return fund
}

// Date parses a YYYY-MM-DD date as midnight UTC and panics on malformed input.
func Date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}
