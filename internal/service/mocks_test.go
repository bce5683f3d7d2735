package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync/atomic"
	"testing"
	"time"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
	"ridehail/internal/repository/memory"
)

// ──────────────────────────────────────────────
// MOCK DRIVER REPOSITORY
// ──────────────────────────────────────────────

// mockDriverRepository wraps the in-memory store with call counters and
// error injection.
type mockDriverRepository struct {
	*memory.DriverRepository

	SaveCallCount int32

	SaveError    error
	FindAllError error

	// BeforeFind, if set, runs at the start of every FindByID.
	BeforeFind func(id string)
}

func newMockDriverRepository() *mockDriverRepository {
	return &mockDriverRepository{DriverRepository: memory.NewDriverRepository()}
}

func (m *mockDriverRepository) Save(ctx context.Context, driver *domain.Driver) error {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveError != nil {
		return m.SaveError
	}
	return m.DriverRepository.Save(ctx, driver)
}

func (m *mockDriverRepository) FindByID(ctx context.Context, id string) (*domain.Driver, error) {
	if m.BeforeFind != nil {
		m.BeforeFind(id)
	}
	return m.DriverRepository.FindByID(ctx, id)
}

func (m *mockDriverRepository) FindAll(ctx context.Context) ([]*domain.Driver, error) {
	if m.FindAllError != nil {
		return nil, m.FindAllError
	}
	return m.DriverRepository.FindAll(ctx)
}

// addDriver stores a driver with the given status, bypassing the counters.
func (m *mockDriverRepository) addDriver(t *testing.T, id string, lat, lng float64, status domain.DriverStatus) {
	t.Helper()
	loc, err := domain.NewLocation(lat, lng)
	if err != nil {
		t.Fatalf("location: %v", err)
	}
	d := domain.RestoreDriver(id, "driver "+id, status, loc)
	if err := m.DriverRepository.Save(context.Background(), d); err != nil {
		t.Fatalf("seed driver: %v", err)
	}
}

func (m *mockDriverRepository) status(t *testing.T, id string) domain.DriverStatus {
	t.Helper()
	d, err := m.DriverRepository.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("driver %s: %v", id, err)
	}
	return d.Status()
}

// ──────────────────────────────────────────────
// MOCK RIDE REPOSITORY
// ──────────────────────────────────────────────

type mockRideRepository struct {
	*memory.RideRepository

	SaveCallCount int32

	SaveError error
}

func newMockRideRepository() *mockRideRepository {
	return &mockRideRepository{RideRepository: memory.NewRideRepository()}
}

func (m *mockRideRepository) Save(ctx context.Context, ride *domain.Ride) error {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveError != nil {
		return m.SaveError
	}
	return m.RideRepository.Save(ctx, ride)
}

// ──────────────────────────────────────────────
// MOCK TRANSACTOR
// ──────────────────────────────────────────────

// stagingTransactor buffers saves made inside InTx and applies them to the
// underlying repositories only when fn succeeds.
type stagingTransactor struct {
	drivers repository.DriverRepository
	rides   repository.RideRepository

	InTxCallCount int32
	RideSaveError error
}

func (s *stagingTransactor) InTx(ctx context.Context, fn func(repository.DriverRepository, repository.RideRepository) error) error {
	atomic.AddInt32(&s.InTxCallCount, 1)
	var (
		drivers []*domain.Driver
		rides   []*domain.Ride
	)
	err := fn(
		stagedDriverRepository{DriverRepository: s.drivers, pending: &drivers},
		stagedRideRepository{RideRepository: s.rides, pending: &rides, err: s.RideSaveError},
	)
	if err != nil {
		return err
	}
	for _, d := range drivers {
		if err := s.drivers.Save(ctx, d); err != nil {
			return err
		}
	}
	for _, r := range rides {
		if err := s.rides.Save(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

type stagedDriverRepository struct {
	repository.DriverRepository
	pending *[]*domain.Driver
}

func (r stagedDriverRepository) Save(ctx context.Context, driver *domain.Driver) error {
	*r.pending = append(*r.pending, driver.Clone())
	return nil
}

type stagedRideRepository struct {
	repository.RideRepository
	pending *[]*domain.Ride
	err     error
}

func (r stagedRideRepository) Save(ctx context.Context, ride *domain.Ride) error {
	if r.err != nil {
		return r.err
	}
	*r.pending = append(*r.pending, ride.Clone())
	return nil
}

// ──────────────────────────────────────────────
// HELPERS
// ──────────────────────────────────────────────

// stepClock returns a clock that advances one minute per call.
func stepClock(start time.Time) Clock {
	var n int64
	return func() time.Time {
		i := atomic.AddInt64(&n, 1) - 1
		return start.Add(time.Duration(i) * time.Minute)
	}
}

// fixedClock always returns t.
func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// seqReferences issues "<prefix>_1", "<prefix>_2", ...
type seqReferences struct {
	n int64
}

func (s *seqReferences) NewReference(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, atomic.AddInt64(&s.n, 1))
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func mustLocation(t *testing.T, lat, lng float64) domain.Location {
	t.Helper()
	loc, err := domain.NewLocation(lat, lng)
	if err != nil {
		t.Fatalf("location: %v", err)
	}
	return loc
}

var testStart = time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

// fixture wires the services over mock stores and one shared locker.
type fixture struct {
	drivers   *mockDriverRepository
	rides     *mockRideRepository
	riders    *memory.RiderRepository
	receipts  *memory.ReceiptRepository
	locker    *LocalLocker
	rideSvc   *RideService
	driverSvc *DriverService
	riderSvc  *RiderService
	paySvc    *PaymentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		drivers:  newMockDriverRepository(),
		rides:    newMockRideRepository(),
		riders:   memory.NewRiderRepository(),
		receipts: memory.NewReceiptRepository(),
		locker:   NewLocalLocker(),
	}
	r, _ := domain.NewRider("r1", "Chinmay")
	if err := f.riders.Save(context.Background(), r); err != nil {
		t.Fatalf("seed rider: %v", err)
	}

	f.rideSvc = NewRideService(f.rides, f.drivers, f.riders, NewMatchingService(f.drivers), stepClock(testStart), discardLogger()).
		WithLocker(f.locker)
	f.driverSvc = NewDriverService(f.drivers, discardLogger()).WithLocker(f.locker)
	f.riderSvc = NewRiderService(f.riders, discardLogger()).WithLocker(f.locker)
	f.paySvc = NewPaymentService(f.rides, f.receipts, NewPricingService(DefaultFareConfig()), discardLogger())
	return f
}

func (f *fixture) request(t *testing.T, rideID string) (*domain.Ride, error) {
	t.Helper()
	return f.rideSvc.RequestRide(context.Background(), RequestRideRequest{
		RideID:  rideID,
		RiderID: "r1",
		Pickup:  mustLocation(t, 19.08, 72.88),
		Drop:    mustLocation(t, 19.1, 72.9),
	})
}
