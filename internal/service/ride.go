package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
)

// RideService handles the ride lifecycle.
type RideService struct {
	rideRepo   repository.RideRepository
	driverRepo repository.DriverRepository
	riderRepo  repository.RiderRepository
	matcher    DriverMatcher
	locker     Locker
	tx         repository.Transactor
	clock      Clock
	logger     *log.Logger
}

// NewRideService creates a new RideService. A nil clock reads the wall clock
// and a nil logger writes to log.Default(). Rides and drivers are locked
// in-process until WithLocker replaces the locker.
func NewRideService(
	rideRepo repository.RideRepository,
	driverRepo repository.DriverRepository,
	riderRepo repository.RiderRepository,
	matcher DriverMatcher,
	clock Clock,
	logger *log.Logger,
) *RideService {
	if logger == nil {
		logger = log.Default()
	}
	return &RideService{
		rideRepo:   rideRepo,
		driverRepo: driverRepo,
		riderRepo:  riderRepo,
		matcher:    matcher,
		locker:     NewLocalLocker(),
		clock:      clock,
		logger:     logger,
	}
}

// WithLocker swaps the locker, e.g. for a distributed one. It must be the
// locker DriverService uses so both see the same driver locks.
func (s *RideService) WithLocker(locker Locker) *RideService {
	s.locker = locker
	return s
}

// WithTransactor makes start and complete save the ride and driver in one
// transaction.
func (s *RideService) WithTransactor(tx repository.Transactor) *RideService {
	s.tx = tx
	return s
}

func (s *RideService) withRideLock(ctx context.Context, rideID string, fn func() error) error {
	return withLock(ctx, s.locker, s.logger, rideLockKey(rideID), ErrRideBusy, fn)
}

// RequestRideRequest contains the parameters for requesting a ride.
type RequestRideRequest struct {
	RideID  string // Optional: generated when empty
	RiderID string
	Pickup  domain.Location
	Drop    domain.Location
}

// RequestRide creates a ride for an existing rider and assigns the nearest
// available driver. Nothing is stored when no driver can be matched.
func (s *RideService) RequestRide(ctx context.Context, req RequestRideRequest) (*domain.Ride, error) {
	if _, err := s.riderRepo.FindByID(ctx, req.RiderID); err != nil {
		return nil, err
	}

	rideID := req.RideID
	if rideID == "" {
		rideID = uuid.New().String()
	}

	var (
		ride   *domain.Ride
		driver *domain.Driver
	)
	err := s.withRideLock(ctx, rideID, func() error {
		if _, err := s.rideRepo.FindByID(ctx, rideID); err == nil {
			return ErrRideAlreadyExists
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		var err error
		ride, err = domain.NewRide(rideID, req.RiderID, req.Pickup, req.Drop, s.clock.now())
		if err != nil {
			return err
		}

		driver, err = s.matcher.FindNearestAvailableDriver(ctx, req.Pickup)
		if err != nil {
			return err
		}

		if err := ride.AssignDriver(driver.ID(), s.clock.now()); err != nil {
			return err
		}
		return s.rideRepo.Save(ctx, ride)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Printf("ride %s requested by %s, assigned to %s", ride.ID(), ride.RiderID(), driver.ID())
	return ride, nil
}

// StartRide puts the assigned driver on trip and moves the ride to IN_PROGRESS.
func (s *RideService) StartRide(ctx context.Context, rideID string) (*domain.Ride, error) {
	ride, driver, err := s.updateAssigned(ctx, rideID, func(ride *domain.Ride, driver *domain.Driver) error {
		if err := driver.StartTrip(); err != nil {
			return err
		}
		return ride.Start(s.clock.now())
	})
	if err != nil {
		return nil, err
	}

	s.logger.Printf("ride %s started by %s", ride.ID(), driver.ID())
	return ride, nil
}

// CompleteRide finishes an IN_PROGRESS ride and returns the driver to ONLINE.
func (s *RideService) CompleteRide(ctx context.Context, rideID string) (*domain.Ride, error) {
	ride, driver, err := s.updateAssigned(ctx, rideID, func(ride *domain.Ride, driver *domain.Driver) error {
		if err := ride.Complete(s.clock.now()); err != nil {
			return err
		}
		return driver.EndTrip()
	})
	if err != nil {
		return nil, err
	}

	s.logger.Printf("ride %s completed by %s", ride.ID(), driver.ID())
	return ride, nil
}

// CancelRide cancels a ride that has not started. The assigned driver, if
// any, is not touched: assignment never changed their status.
func (s *RideService) CancelRide(ctx context.Context, rideID string) (*domain.Ride, error) {
	if rideID == "" {
		return nil, ErrInvalidRideID
	}

	var ride *domain.Ride
	err := s.withRideLock(ctx, rideID, func() error {
		var err error
		ride, err = s.rideRepo.FindByID(ctx, rideID)
		if err != nil {
			return err
		}
		if err := ride.Cancel(s.clock.now()); err != nil {
			return err
		}
		return s.rideRepo.Save(ctx, ride)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Printf("ride %s cancelled", ride.ID())
	return ride, nil
}

// GetRide retrieves a ride by ID.
func (s *RideService) GetRide(ctx context.Context, rideID string) (*domain.Ride, error) {
	if rideID == "" {
		return nil, ErrInvalidRideID
	}
	return s.rideRepo.FindByID(ctx, rideID)
}

// updateAssigned locks a ride and then its driver, applies change to both
// and persists them together. Nothing is saved if change fails.
func (s *RideService) updateAssigned(ctx context.Context, rideID string, change func(*domain.Ride, *domain.Driver) error) (*domain.Ride, *domain.Driver, error) {
	if rideID == "" {
		return nil, nil, ErrInvalidRideID
	}

	var (
		ride   *domain.Ride
		driver *domain.Driver
	)
	err := s.withRideLock(ctx, rideID, func() error {
		var err error
		ride, err = s.rideRepo.FindByID(ctx, rideID)
		if err != nil {
			return err
		}
		driverID, ok := ride.DriverID()
		if !ok {
			return ErrRideHasNoDriver
		}

		return withLock(ctx, s.locker, s.logger, driverLockKey(driverID), ErrDriverBusy, func() error {
			driver, err = s.driverRepo.FindByID(ctx, driverID)
			if err != nil {
				return err
			}
			if err := change(ride, driver); err != nil {
				return err
			}
			return s.persist(ctx, ride, driver)
		})
	})
	if err != nil {
		return nil, nil, err
	}
	return ride, driver, nil
}

// persist saves the driver, then the ride, inside the transactor if set.
func (s *RideService) persist(ctx context.Context, ride *domain.Ride, driver *domain.Driver) error {
	save := func(drivers repository.DriverRepository, rides repository.RideRepository) error {
		if err := drivers.Save(ctx, driver); err != nil {
			return err
		}
		return rides.Save(ctx, ride)
	}
	if s.tx == nil {
		return save(s.driverRepo, s.rideRepo)
	}
	return s.tx.InTx(ctx, save)
}
