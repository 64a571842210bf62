package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/apperrors"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
)

// DateLayout is the storage format of day-resolution dates.
const DateLayout = "2006-01-02"

// FundRepository provides data access methods for the fund and fund_nav tables.
// It handles retrieving fund metadata and historical NAV data.
type FundRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewFundRepository creates a new FundRepository with the provided database connection.
func NewFundRepository(db *sql.DB) *FundRepository {
	return &FundRepository{db: db}
}

// WithTx returns a copy of the repository that runs its statements inside tx.
func (r *FundRepository) WithTx(tx *sql.Tx) *FundRepository {
	return &FundRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *FundRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// GetFunds retrieves all funds ordered by name.
// Returns an empty slice if no funds are found.
func (r *FundRepository) GetFunds(ctx context.Context) ([]model.Fund, error) {
	query := `
		SELECT id, name, isin, symbol, currency, name_ar, description, description_ar, risk_level, is_sharia_compliant
		FROM fund
		ORDER BY name ASC
	`

	rows, err := r.getQuerier().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund table: %w", err)
	}
	defer rows.Close()

	funds := []model.Fund{}
	for rows.Next() {
		f, err := scanFund(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fund table results: %w", err)
		}
		funds = append(funds, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund table: %w", err)
	}

	return funds, nil
}

// GetFund retrieves a single fund by ID.
// Returns apperrors.ErrFundNotFound if no fund has that ID.
func (r *FundRepository) GetFund(ctx context.Context, fundID string) (model.Fund, error) {
	query := `
		SELECT id, name, isin, symbol, currency, name_ar, description, description_ar, risk_level, is_sharia_compliant
		FROM fund
		WHERE id = ?
	`

	return r.getOneFund(ctx, query, fundID)
}

// GetFundBySymbol retrieves a fund by its ticker symbol.
// Returns apperrors.ErrFundNotFound if no fund carries the symbol.
func (r *FundRepository) GetFundBySymbol(ctx context.Context, symbol string) (model.Fund, error) {
	query := `
		SELECT id, name, isin, symbol, currency, name_ar, description, description_ar, risk_level, is_sharia_compliant
		FROM fund
		WHERE symbol = ?
		LIMIT 1
	`

	return r.getOneFund(ctx, query, symbol)
}

// GetFundByIsin retrieves a fund by its ISIN.
// Returns apperrors.ErrFundNotFound if no fund carries the ISIN.
func (r *FundRepository) GetFundByIsin(ctx context.Context, isin string) (model.Fund, error) {
	query := `
		SELECT id, name, isin, symbol, currency, name_ar, description, description_ar, risk_level, is_sharia_compliant
		FROM fund
		WHERE isin = ?
	`

	return r.getOneFund(ctx, query, isin)
}

func (r *FundRepository) getOneFund(ctx context.Context, query string, arg string) (model.Fund, error) {
	f, err := scanFund(r.getQuerier().QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Fund{}, apperrors.ErrFundNotFound
	}
	if err != nil {
		return model.Fund{}, fmt.Errorf("failed to query fund: %w", err)
	}
	return f, nil
}

// InsertFund stores a new fund. An empty ID is replaced by a generated UUID.
// The stored fund is returned.
func (r *FundRepository) InsertFund(ctx context.Context, f model.Fund) (model.Fund, error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}

	query := `
		INSERT INTO fund (id, name, isin, symbol, currency, name_ar, description, description_ar, risk_level, is_sharia_compliant)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.getQuerier().ExecContext(ctx, query,
		f.ID,
		f.Name,
		f.Isin,
		nullString(f.Symbol),
		f.Currency,
		f.NameAr,
		f.Description,
		f.DescriptionAr,
		f.RiskLevel,
		f.IsShariaCompliant,
	)
	if err != nil {
		return model.Fund{}, fmt.Errorf("failed to insert fund: %w", err)
	}

	return f, nil
}

// GetNavSeries retrieves the NAV observations of a fund in ascending date order.
// Zero start or end dates leave that side of the range open; both bounds are inclusive.
func (r *FundRepository) GetNavSeries(ctx context.Context, fundID string, startDate, endDate time.Time) ([]model.NavObservation, error) {
	query := `
		SELECT date, nav
		FROM fund_nav
		WHERE fund_id = ?
	`
	args := []any{fundID}
	query, args = appendDateRange(query, args, startDate, endDate)
	query += ` ORDER BY date ASC`

	rows, err := r.getQuerier().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund_nav table: %w", err)
	}
	defer rows.Close()

	navs := []model.NavObservation{}
	for rows.Next() {
		var dateStr string
		var obs model.NavObservation

		if err := rows.Scan(&dateStr, &obs.NAV); err != nil {
			return nil, fmt.Errorf("failed to scan fund_nav table results: %w", err)
		}

		obs.Date, err = ParseTime(dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse nav date: %w", err)
		}
		navs = append(navs, obs)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund_nav table: %w", err)
	}

	return navs, nil
}

// GetLatestNavDate returns the most recent NAV date stored for a fund.
// The boolean is false when the fund has no NAV observations.
func (r *FundRepository) GetLatestNavDate(ctx context.Context, fundID string) (time.Time, bool, error) {
	query := `SELECT MAX(date) FROM fund_nav WHERE fund_id = ?`

	var latest sql.NullString
	if err := r.getQuerier().QueryRowContext(ctx, query, fundID).Scan(&latest); err != nil {
		return time.Time{}, false, fmt.Errorf("failed to query latest nav date: %w", err)
	}
	if !latest.Valid {
		return time.Time{}, false, nil
	}

	date, err := ParseTime(latest.String)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to parse latest nav date: %w", err)
	}
	return date, true, nil
}

// InsertNavs upserts NAV observations for a fund, keyed by (fund_id, date).
// When the repository is not bound to a transaction, all rows are written in one.
func (r *FundRepository) InsertNavs(ctx context.Context, fundID string, navs []model.NavObservation) error {
	if len(navs) == 0 {
		return nil
	}

	query := `
		INSERT INTO fund_nav (id, fund_id, date, nav)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (fund_id, date) DO UPDATE SET nav = excluded.nav
	`

	return r.inTx(ctx, func(q querier) error {
		stmt, err := q.PrepareContext(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to prepare fund_nav insert: %w", err)
		}
		defer stmt.Close()

		for _, n := range navs {
			if _, err := stmt.ExecContext(ctx,
				uuid.New().String(),
				fundID,
				n.Date.UTC().Format(DateLayout),
				n.NAV,
			); err != nil {
				return fmt.Errorf("failed to insert fund_nav for %s: %w", n.Date.Format(DateLayout), err)
			}
		}
		return nil
	})
}

func (r *FundRepository) inTx(ctx context.Context, fn func(q querier) error) error {
	return runInTx(ctx, r.db, r.tx, fn)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFund(row rowScanner) (model.Fund, error) {
	var f model.Fund
	var symbol sql.NullString

	if err := row.Scan(
		&f.ID, &f.Name, &f.Isin, &symbol, &f.Currency,
		&f.NameAr, &f.Description, &f.DescriptionAr, &f.RiskLevel, &f.IsShariaCompliant,
	); err != nil {
		return model.Fund{}, err
	}
	f.Symbol = symbol.String
	return f, nil
}
