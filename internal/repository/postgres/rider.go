package postgres

import (
	"context"
	"database/sql"
	"errors"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
)

// RiderRepository is a PostgreSQL implementation of repository.RiderRepository.
type RiderRepository struct {
	q Querier
}

// NewRiderRepository creates a new PostgreSQL rider repository.
func NewRiderRepository(db *sql.DB) *RiderRepository {
	return &RiderRepository{q: db}
}

// Save upserts a rider.
func (r *RiderRepository) Save(ctx context.Context, rider *domain.Rider) error {
	query := `
		INSERT INTO riders (id, name) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
	`
	_, err := r.q.ExecContext(ctx, query, rider.ID(), rider.Name())
	return err
}

// FindByID retrieves a rider by ID.
func (r *RiderRepository) FindByID(ctx context.Context, id string) (*domain.Rider, error) {
	query := `SELECT id, name FROM riders WHERE id = $1`

	var riderID, name string
	err := r.q.QueryRowContext(ctx, query, id).Scan(&riderID, &name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.NotFound("rider", id)
	}
	if err != nil {
		return nil, err
	}
	return domain.RestoreRider(riderID, name), nil
}

var _ repository.RiderRepository = (*RiderRepository)(nil)
