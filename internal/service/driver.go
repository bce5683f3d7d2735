package service

import (
	"context"
	"errors"
	"log"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
)

// DriverService handles driver registration and availability.
type DriverService struct {
	driverRepo repository.DriverRepository
	locker     Locker
	logger     *log.Logger
}

// NewDriverService creates a new DriverService. Drivers are locked in-process
// until WithLocker replaces the locker.
func NewDriverService(driverRepo repository.DriverRepository, logger *log.Logger) *DriverService {
	if logger == nil {
		logger = log.Default()
	}
	return &DriverService{driverRepo: driverRepo, locker: NewLocalLocker(), logger: logger}
}

// WithLocker swaps the locker. Share it with RideService so trips and
// availability changes exclude each other.
func (s *DriverService) WithLocker(locker Locker) *DriverService {
	s.locker = locker
	return s
}

// RegisterDriverRequest contains the parameters for registering a driver.
type RegisterDriverRequest struct {
	ID       string
	Name     string
	Location domain.Location
}

// RegisterDriver stores a new OFFLINE driver.
func (s *DriverService) RegisterDriver(ctx context.Context, req RegisterDriverRequest) (*domain.Driver, error) {
	driver, err := domain.NewDriver(req.ID, req.Name, req.Location)
	if err != nil {
		return nil, err
	}

	err = withLock(ctx, s.locker, s.logger, driverLockKey(req.ID), ErrDriverBusy, func() error {
		if _, err := s.driverRepo.FindByID(ctx, req.ID); err == nil {
			return ErrDriverAlreadyExists
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return s.driverRepo.Save(ctx, driver)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Printf("driver %s registered", driver.ID())
	return driver, nil
}

// GetDriver retrieves a driver by ID.
func (s *DriverService) GetDriver(ctx context.Context, driverID string) (*domain.Driver, error) {
	return s.driverRepo.FindByID(ctx, driverID)
}

// ListDrivers returns every driver in registration order.
func (s *DriverService) ListDrivers(ctx context.Context) ([]*domain.Driver, error) {
	return s.driverRepo.FindAll(ctx)
}

// GoOnline makes a driver available for matching.
func (s *DriverService) GoOnline(ctx context.Context, driverID string) (*domain.Driver, error) {
	return s.update(ctx, driverID, (*domain.Driver).GoOnline)
}

// GoOffline takes a driver out of matching.
func (s *DriverService) GoOffline(ctx context.Context, driverID string) (*domain.Driver, error) {
	return s.update(ctx, driverID, (*domain.Driver).GoOffline)
}

// UpdateLocation moves a driver. Allowed in any status.
func (s *DriverService) UpdateLocation(ctx context.Context, driverID string, loc domain.Location) (*domain.Driver, error) {
	return s.update(ctx, driverID, func(d *domain.Driver) error {
		d.UpdateLocation(loc)
		return nil
	})
}

// update is a locked read-modify-write of one driver.
func (s *DriverService) update(ctx context.Context, driverID string, apply func(*domain.Driver) error) (*domain.Driver, error) {
	var driver *domain.Driver
	err := withLock(ctx, s.locker, s.logger, driverLockKey(driverID), ErrDriverBusy, func() error {
		var err error
		driver, err = s.driverRepo.FindByID(ctx, driverID)
		if err != nil {
			return err
		}
		if err := apply(driver); err != nil {
			return err
		}
		return s.driverRepo.Save(ctx, driver)
	})
	if err != nil {
		return nil, err
	}
	return driver, nil
}
