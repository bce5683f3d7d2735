// Package postgres implements the repository interfaces on database/sql.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"ridehail/internal/domain"
)

// Querier is an interface satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Ensure interfaces are satisfied.
var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// location rebuilds a stored coordinate pair, rejecting corrupt rows.
func location(lat, lng float64) (domain.Location, error) {
	loc, err := domain.NewLocation(lat, lng)
	if err != nil {
		return domain.Location{}, fmt.Errorf("stored location (%f, %f): %w", lat, lng, err)
	}
	return loc, nil
}
