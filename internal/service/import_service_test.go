package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/api/request"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/apperrors"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/testutil"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/validation"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

var seedFund = request.SeedFund{
	Name:     "Flagship Equity Fund",
	Isin:     "SA0000000001",
	Symbol:   "FLAG.SR",
	Currency: "SAR",

	NameAr:            "صندوق الأسهم الرائد",
	RiskLevel:         "medium",
	IsShariaCompliant: true,
}

func TestImportService_ImportFiles(t *testing.T) {
	ctx := context.Background()

	navJSON := `[
		{"date": "2020-01-01", "nav": 10.5},
		{"date": "2019-01-01", "nav": 10},
		{"date": "2021-01-01", "nav": 11.25}
	]`
	dividendYAML := "- date: \"2019-06-30\"\n  amount: 0.2\n- date: \"2019-06-30\"\n  amount: 0.1\n"

	t.Run("creates fund and stores series", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestImportService(t, db)

		summary, err := svc.ImportFiles(ctx, seedFund,
			writeFile(t, "navs.json", navJSON),
			writeFile(t, "dividends.yaml", dividendYAML))
		if err != nil {
			t.Fatalf("ImportFiles() returned unexpected error: %v", err)
		}

		if !summary.FundCreated || summary.Navs != 3 || summary.Dividends != 2 {
			t.Errorf("Unexpected summary: %+v", summary)
		}
		if summary.Fund.Isin != seedFund.Isin || summary.Fund.ID == "" {
			t.Errorf("Unexpected fund: %+v", summary.Fund)
		}
		stored, err := testutil.NewTestFundService(t, db).GetFund(ctx, summary.Fund.ID)
		if err != nil {
			t.Fatalf("GetFund() returned unexpected error: %v", err)
		}
		if stored.NameAr != seedFund.NameAr || stored.RiskLevel != "medium" || !stored.IsShariaCompliant {
			t.Errorf("Expected fund profile to be stored, got %+v", stored)
		}
		testutil.AssertRowCount(t, db, "fund", 1)
		testutil.AssertRowCount(t, db, "fund_nav", 3)
		testutil.AssertRowCount(t, db, "fund_dividend", 2)
	})

	t.Run("second import is idempotent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestImportService(t, db)
		navs := writeFile(t, "navs.json", navJSON)
		dividends := writeFile(t, "dividends.yml", dividendYAML)

		first, err := svc.ImportFiles(ctx, seedFund, navs, dividends)
		if err != nil {
			t.Fatalf("first import: %v", err)
		}
		second, err := svc.ImportFiles(ctx, seedFund, navs, dividends)
		if err != nil {
			t.Fatalf("second import: %v", err)
		}

		if second.FundCreated || second.Fund.ID != first.Fund.ID {
			t.Errorf("Expected existing fund to be reused, got %+v", second)
		}
		testutil.AssertRowCount(t, db, "fund", 1)
		testutil.AssertRowCount(t, db, "fund_nav", 3)
		testutil.AssertRowCount(t, db, "fund_dividend", 2)
	})

	t.Run("nav file only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestImportService(t, db)

		summary, err := svc.ImportFiles(ctx, seedFund, writeFile(t, "navs.json", navJSON), "")
		if err != nil {
			t.Fatalf("ImportFiles() returned unexpected error: %v", err)
		}
		if summary.Dividends != 0 {
			t.Errorf("Expected no dividends, got %d", summary.Dividends)
		}
		testutil.AssertRowCount(t, db, "fund_dividend", 0)
	})

	t.Run("invalid input writes nothing", func(t *testing.T) {
		tests := []struct {
			name      string
			fund      request.SeedFund
			navs      string
			dividends string
			wantErr   error
		}{
			{
				name:    "non-positive nav",
				fund:    seedFund,
				navs:    `[{"date": "2020-01-01", "nav": 0}]`,
				wantErr: apperrors.ErrNonPositiveNav,
			},
			{
				name:    "duplicate nav date",
				fund:    seedFund,
				navs:    `[{"date": "2020-01-01", "nav": 1}, {"date": "2020-01-01", "nav": 2}]`,
				wantErr: apperrors.ErrDuplicateEntry,
			},
			{
				name:      "negative dividend",
				fund:      seedFund,
				navs:      navJSON,
				dividends: `[{"date": "2020-01-01", "amount": -1}]`,
				wantErr:   apperrors.ErrNegativeAmount,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				db := testutil.SetupTestDB(t)
				svc := testutil.NewTestImportService(t, db)

				dividendFile := ""
				if tt.dividends != "" {
					dividendFile = writeFile(t, "dividends.json", tt.dividends)
				}

				_, err := svc.ImportFiles(ctx, tt.fund, writeFile(t, "navs.json", tt.navs), dividendFile)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Expected %v, got %v", tt.wantErr, err)
				}
				testutil.AssertRowCount(t, db, "fund", 0)
				testutil.AssertRowCount(t, db, "fund_nav", 0)
			})
		}
	})

	t.Run("failed dividend write rolls back fund and navs", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestImportService(t, db)

		_, err := db.Exec(`
			CREATE TRIGGER reject_dividend BEFORE INSERT ON fund_dividend
			BEGIN
				SELECT RAISE(ABORT, 'dividend store rejected row');
			END
		`)
		if err != nil {
			t.Fatalf("failed to create trigger: %v", err)
		}

		_, err = svc.ImportFiles(ctx, seedFund,
			writeFile(t, "navs.json", navJSON),
			writeFile(t, "dividends.yaml", dividendYAML))
		if err == nil {
			t.Fatal("Expected dividend write error")
		}
		testutil.AssertRowCount(t, db, "fund", 0)
		testutil.AssertRowCount(t, db, "fund_nav", 0)
		testutil.AssertRowCount(t, db, "fund_dividend", 0)
	})

	t.Run("invalid fund", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestImportService(t, db)

		bad := seedFund
		bad.Isin = "not-an-isin"
		_, err := svc.ImportFiles(ctx, bad, writeFile(t, "navs.json", navJSON), "")

		var valErr *validation.Error
		if !errors.As(err, &valErr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
		if _, ok := valErr.Fields["isin"]; !ok {
			t.Errorf("Expected isin field error, got %v", valErr.Fields)
		}
		testutil.AssertRowCount(t, db, "fund", 0)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestImportService(t, db)

		_, err := svc.ImportFiles(ctx, seedFund, writeFile(t, "navs.json", `[{"date": "2020-01-01", "price": 1}]`), "")
		if err == nil {
			t.Fatal("Expected decode error")
		}
		testutil.AssertRowCount(t, db, "fund", 0)
	})
}
