package service

import (
	"context"
	"sort"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
)

// DriverMatcher picks a driver for a pickup point.
type DriverMatcher interface {
	FindNearestAvailableDriver(ctx context.Context, pickup domain.Location) (*domain.Driver, error)
}

// Ensure MatchingService implements DriverMatcher.
var _ DriverMatcher = (*MatchingService)(nil)

// MatchingService handles driver-rider matching.
type MatchingService struct {
	driverRepo repository.DriverRepository
}

// NewMatchingService creates a new MatchingService.
func NewMatchingService(driverRepo repository.DriverRepository) *MatchingService {
	return &MatchingService{driverRepo: driverRepo}
}

type candidate struct {
	driver   *domain.Driver
	distance float64
}

// FindNearestAvailableDriver returns the ONLINE driver closest to pickup.
// Drivers at equal distance are ranked by repository order, so the one
// registered first wins.
func (s *MatchingService) FindNearestAvailableDriver(ctx context.Context, pickup domain.Location) (*domain.Driver, error) {
	drivers, err := s.driverRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]candidate, 0, len(drivers))
	for _, d := range drivers {
		if !d.IsAvailable() {
			continue
		}
		candidates = append(candidates, candidate{driver: d, distance: DistanceKm(d.Location(), pickup)})
	}

	if len(candidates) == 0 {
		return nil, ErrNoDriverAvailable
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})
	return candidates[0].driver, nil
}
