package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// ParseTime parses a date string in "2006-01-02" or RFC3339 format.
func ParseTime(str string) (time.Time, error) {
	returnTime, err := time.Parse(DateLayout, str)
	if err != nil {
		returnTime, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
		}
	}
	return returnTime.UTC(), nil
}

func appendDateRange(query string, args []any, startDate, endDate time.Time) (string, []any) {
	if !startDate.IsZero() {
		query += ` AND date >= ?`
		args = append(args, startDate.UTC().Format(DateLayout))
	}
	if !endDate.IsZero() {
		query += ` AND date <= ?`
		args = append(args, endDate.UTC().Format(DateLayout))
	}
	return query, args
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// runInTx calls fn inside tx when it is set, otherwise inside a new
// transaction on db that is committed when fn succeeds.
func runInTx(ctx context.Context, db *sql.DB, tx *sql.Tx, fn func(q querier) error) error {
	if tx != nil {
		return fn(tx)
	}

	own, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = own.Rollback()
	}()

	if err := fn(own); err != nil {
		return err
	}

	if err := own.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
