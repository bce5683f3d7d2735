package postgres

import (
	"context"
	"database/sql"
	"errors"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
)

// DriverRepository is a PostgreSQL implementation of repository.DriverRepository.
type DriverRepository struct {
	q Querier
}

// NewDriverRepository creates a new PostgreSQL driver repository.
func NewDriverRepository(db *sql.DB) *DriverRepository {
	return &DriverRepository{q: db}
}

// NewDriverRepositoryWithTx creates a driver repository using a transaction.
func NewDriverRepositoryWithTx(tx *sql.Tx) *DriverRepository {
	return &DriverRepository{q: tx}
}

// Save upserts a driver. The seq column is only assigned on first insert, so
// FindAll order is stable across updates.
func (r *DriverRepository) Save(ctx context.Context, driver *domain.Driver) error {
	query := `
		INSERT INTO drivers (id, name, status, lat, lng)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, status = EXCLUDED.status, lat = EXCLUDED.lat, lng = EXCLUDED.lng
	`
	loc := driver.Location()
	_, err := r.q.ExecContext(ctx, query,
		driver.ID(),
		driver.Name(),
		string(driver.Status()),
		loc.Latitude(),
		loc.Longitude(),
	)
	return err
}

// FindByID retrieves a driver by ID.
func (r *DriverRepository) FindByID(ctx context.Context, id string) (*domain.Driver, error) {
	query := `SELECT id, name, status, lat, lng FROM drivers WHERE id = $1`

	driver, err := scanDriver(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.NotFound("driver", id)
		}
		return nil, err
	}
	return driver, nil
}

// FindAll retrieves all drivers in insertion order.
func (r *DriverRepository) FindAll(ctx context.Context) ([]*domain.Driver, error) {
	query := `SELECT id, name, status, lat, lng FROM drivers ORDER BY seq`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drivers []*domain.Driver
	for rows.Next() {
		driver, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, driver)
	}
	return drivers, rows.Err()
}

func scanDriver(s scanner) (*domain.Driver, error) {
	var (
		id, name, status string
		lat, lng         float64
	)
	if err := s.Scan(&id, &name, &status, &lat, &lng); err != nil {
		return nil, err
	}
	loc, err := location(lat, lng)
	if err != nil {
		return nil, err
	}
	return domain.RestoreDriver(id, name, domain.DriverStatus(status), loc), nil
}

var _ repository.DriverRepository = (*DriverRepository)(nil)
