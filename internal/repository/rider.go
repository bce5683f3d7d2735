package repository

import (
	"context"

	"ridehail/internal/domain"
)

// RiderRepository defines the persistence operations for riders.
type RiderRepository interface {
	// Save inserts or overwrites a rider by ID.
	Save(ctx context.Context, rider *domain.Rider) error

	// FindByID retrieves a rider by ID.
	FindByID(ctx context.Context, id string) (*domain.Rider, error)
}
