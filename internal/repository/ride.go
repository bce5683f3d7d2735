package repository

import (
	"context"

	"ridehail/internal/domain"
)

// RideRepository defines the persistence operations for rides.
type RideRepository interface {
	// Save inserts or overwrites a ride, timeline included.
	Save(ctx context.Context, ride *domain.Ride) error

	// FindByID retrieves a ride by ID.
	FindByID(ctx context.Context, id string) (*domain.Ride, error)
}
