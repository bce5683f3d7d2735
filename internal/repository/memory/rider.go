package memory

import (
	"context"
	"sync"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
)

// RiderRepository is an in-memory implementation of repository.RiderRepository.
type RiderRepository struct {
	mu     sync.RWMutex
	riders map[string]*domain.Rider
}

// NewRiderRepository creates an empty rider store.
func NewRiderRepository() *RiderRepository {
	return &RiderRepository{
		riders: make(map[string]*domain.Rider),
	}
}

func (r *RiderRepository) Save(ctx context.Context, rider *domain.Rider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.riders[rider.ID()] = rider.Clone()
	return nil
}

func (r *RiderRepository) FindByID(ctx context.Context, id string) (*domain.Rider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rider, ok := r.riders[id]
	if !ok {
		return nil, repository.NotFound("rider", id)
	}
	return rider.Clone(), nil
}

var _ repository.RiderRepository = (*RiderRepository)(nil)
