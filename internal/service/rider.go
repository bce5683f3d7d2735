package service

import (
	"context"
	"errors"
	"log"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
)

// RiderService handles rider accounts.
type RiderService struct {
	riderRepo repository.RiderRepository
	locker    Locker
	logger    *log.Logger
}

// NewRiderService creates a new RiderService. Riders are locked in-process
// until WithLocker replaces the locker.
func NewRiderService(riderRepo repository.RiderRepository, logger *log.Logger) *RiderService {
	if logger == nil {
		logger = log.Default()
	}
	return &RiderService{riderRepo: riderRepo, locker: NewLocalLocker(), logger: logger}
}

// WithLocker swaps the locker.
func (s *RiderService) WithLocker(locker Locker) *RiderService {
	s.locker = locker
	return s
}

// RegisterRider stores a new rider.
func (s *RiderService) RegisterRider(ctx context.Context, id, name string) (*domain.Rider, error) {
	rider, err := domain.NewRider(id, name)
	if err != nil {
		return nil, err
	}

	err = withLock(ctx, s.locker, s.logger, riderLockKey(id), ErrRiderBusy, func() error {
		if _, err := s.riderRepo.FindByID(ctx, id); err == nil {
			return ErrRiderAlreadyExists
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return s.riderRepo.Save(ctx, rider)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Printf("rider %s registered", rider.ID())
	return rider, nil
}

// GetRider retrieves a rider by ID.
func (s *RiderService) GetRider(ctx context.Context, riderID string) (*domain.Rider, error) {
	return s.riderRepo.FindByID(ctx, riderID)
}

// RenameRider changes a rider's display name.
func (s *RiderService) RenameRider(ctx context.Context, riderID, name string) (*domain.Rider, error) {
	var rider *domain.Rider
	err := withLock(ctx, s.locker, s.logger, riderLockKey(riderID), ErrRiderBusy, func() error {
		var err error
		rider, err = s.riderRepo.FindByID(ctx, riderID)
		if err != nil {
			return err
		}
		if err := rider.Rename(name); err != nil {
			return err
		}
		return s.riderRepo.Save(ctx, rider)
	})
	if err != nil {
		return nil, err
	}
	return rider, nil
}
