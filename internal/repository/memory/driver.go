// Package memory provides in-process repository implementations backed by maps.
package memory

import (
	"context"
	"sync"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
)

// DriverRepository is an in-memory implementation of repository.DriverRepository.
// FindAll returns drivers in the order they were first saved.
type DriverRepository struct {
	mu      sync.RWMutex
	drivers map[string]*domain.Driver
	order   []string
}

// NewDriverRepository creates an empty driver store.
func NewDriverRepository() *DriverRepository {
	return &DriverRepository{
		drivers: make(map[string]*domain.Driver),
	}
}

// Save inserts or overwrites a driver by ID.
func (r *DriverRepository) Save(ctx context.Context, driver *domain.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drivers[driver.ID()]; !ok {
		r.order = append(r.order, driver.ID())
	}
	r.drivers[driver.ID()] = driver.Clone()
	return nil
}

// FindByID retrieves a driver by ID.
func (r *DriverRepository) FindByID(ctx context.Context, id string) (*domain.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	driver, ok := r.drivers[id]
	if !ok {
		return nil, repository.NotFound("driver", id)
	}
	return driver.Clone(), nil
}

// FindAll returns a snapshot of every driver.
func (r *DriverRepository) FindAll(ctx context.Context) ([]*domain.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*domain.Driver, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.drivers[id].Clone())
	}
	return result, nil
}

var _ repository.DriverRepository = (*DriverRepository)(nil)
