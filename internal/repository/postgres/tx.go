package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"ridehail/internal/repository"
)

// Transactor is a PostgreSQL implementation of repository.Transactor.
type Transactor struct {
	db *sql.DB
}

// NewTransactor creates a new Transactor.
func NewTransactor(db *sql.DB) *Transactor {
	return &Transactor{db: db}
}

// InTx runs fn in one transaction and commits only if fn succeeds.
func (t *Transactor) InTx(ctx context.Context, fn func(repository.DriverRepository, repository.RideRepository) error) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(NewDriverRepositoryWithTx(tx), NewRideRepositoryWithTx(tx)); err != nil {
		return err
	}
	return tx.Commit()
}

var _ repository.Transactor = (*Transactor)(nil)
