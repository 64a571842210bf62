package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
)

// DividendRepository provides data access methods for the fund_dividend table.
type DividendRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewDividendRepository creates a new DividendRepository with the provided database connection.
func NewDividendRepository(db *sql.DB) *DividendRepository {
	return &DividendRepository{db: db}
}

// WithTx returns a copy of the repository that runs its statements inside tx.
func (r *DividendRepository) WithTx(tx *sql.Tx) *DividendRepository {
	return &DividendRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *DividendRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// GetDividendSeries retrieves the dividends of a fund in ascending date order.
// Zero start or end dates leave that side of the range open; both bounds are inclusive.
func (r *DividendRepository) GetDividendSeries(ctx context.Context, fundID string, startDate, endDate time.Time) ([]model.DividendObservation, error) {
	query := `
		SELECT date, amount
		FROM fund_dividend
		WHERE fund_id = ?
	`
	args := []any{fundID}
	query, args = appendDateRange(query, args, startDate, endDate)
	query += ` ORDER BY date ASC, rowid ASC`

	rows, err := r.getQuerier().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund_dividend table: %w", err)
	}
	defer rows.Close()

	dividends := []model.DividendObservation{}
	for rows.Next() {
		var dateStr string
		var d model.DividendObservation

		if err := rows.Scan(&dateStr, &d.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan fund_dividend table results: %w", err)
		}

		d.Date, err = ParseTime(dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse dividend date: %w", err)
		}
		dividends = append(dividends, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund_dividend table: %w", err)
	}

	return dividends, nil
}

// ReplaceDividends replaces every dividend of a fund with the given series.
// Dividends have no natural key, so imports replace rather than merge.
// When the repository is not bound to a transaction, it runs in one.
func (r *DividendRepository) ReplaceDividends(ctx context.Context, fundID string, dividends []model.DividendObservation) error {
	return runInTx(ctx, r.db, r.tx, func(q querier) error {
		if _, err := q.ExecContext(ctx, `DELETE FROM fund_dividend WHERE fund_id = ?`, fundID); err != nil {
			return fmt.Errorf("failed to clear fund_dividend: %w", err)
		}
		return insertDividends(ctx, q, fundID, dividends)
	})
}

// InsertDividends appends dividends for a fund, in one transaction when the
// repository is not bound to one.
func (r *DividendRepository) InsertDividends(ctx context.Context, fundID string, dividends []model.DividendObservation) error {
	if len(dividends) == 0 {
		return nil
	}

	return runInTx(ctx, r.db, r.tx, func(q querier) error {
		return insertDividends(ctx, q, fundID, dividends)
	})
}

func insertDividends(ctx context.Context, q querier, fundID string, dividends []model.DividendObservation) error {
	stmt, err := q.PrepareContext(ctx, `
		INSERT INTO fund_dividend (id, fund_id, date, amount)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare fund_dividend insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range dividends {
		if _, err := stmt.ExecContext(ctx,
			uuid.New().String(),
			fundID,
			d.Date.UTC().Format(DateLayout),
			d.Amount,
		); err != nil {
			return fmt.Errorf("failed to insert fund_dividend for %s: %w", d.Date.Format(DateLayout), err)
		}
	}
	return nil
}
