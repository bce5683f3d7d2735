package repository

import (
	"context"

	"ridehail/internal/domain"
)

// DriverRepository defines the persistence operations for drivers.
type DriverRepository interface {
	// Save inserts or overwrites a driver by ID.
	Save(ctx context.Context, driver *domain.Driver) error

	// FindByID retrieves a driver by ID.
	FindByID(ctx context.Context, id string) (*domain.Driver, error)

	// FindAll retrieves all drivers in the order they were first saved.
	FindAll(ctx context.Context) ([]*domain.Driver, error)
}
