package domain

import (
	"errors"
	"testing"
)

func newTestDriver(t *testing.T) *Driver {
	t.Helper()
	loc, err := NewLocation(19.076, 72.8777)
	if err != nil {
		t.Fatalf("location: %v", err)
	}
	d, err := NewDriver("d1", "Amit", loc)
	if err != nil {
		t.Fatalf("driver: %v", err)
	}
	return d
}

func TestNewDriver_StartsOffline(t *testing.T) {
	d := newTestDriver(t)
	if d.Status() != DriverStatusOffline {
		t.Errorf("expected OFFLINE, got %s", d.Status())
	}
	if d.IsAvailable() {
		t.Error("offline driver should not be available")
	}
}

func TestNewDriver_RequiresIDAndName(t *testing.T) {
	if _, err := NewDriver("", "Amit", Location{}); !errors.Is(err, ErrEmptyID) {
		t.Errorf("expected ErrEmptyID, got %v", err)
	}
	if _, err := NewDriver("d1", "  ", Location{}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

func TestDriver_OnlineOfflineToggle(t *testing.T) {
	d := newTestDriver(t)

	if err := d.GoOnline(); err != nil {
		t.Fatalf("go online: %v", err)
	}
	if err := d.GoOnline(); err != nil {
		t.Fatalf("go online twice should be idempotent: %v", err)
	}
	if !d.IsAvailable() {
		t.Error("online driver should be available")
	}
	if err := d.GoOffline(); err != nil {
		t.Fatalf("go offline: %v", err)
	}
	if d.Status() != DriverStatusOffline {
		t.Errorf("expected OFFLINE, got %s", d.Status())
	}
}

func TestDriver_TripLifecycle(t *testing.T) {
	d := newTestDriver(t)

	if err := d.StartTrip(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("start trip while offline: expected ErrInvalidTransition, got %v", err)
	}

	_ = d.GoOnline()
	if err := d.StartTrip(); err != nil {
		t.Fatalf("start trip: %v", err)
	}
	if d.Status() != DriverStatusOnTrip {
		t.Errorf("expected ON_TRIP, got %s", d.Status())
	}
	if d.IsAvailable() {
		t.Error("driver on trip should not be available")
	}

	if err := d.GoOnline(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("go online while on trip: expected ErrInvalidTransition, got %v", err)
	}
	if err := d.GoOffline(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("go offline while on trip: expected ErrInvalidTransition, got %v", err)
	}
	if err := d.StartTrip(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("start trip twice: expected ErrInvalidTransition, got %v", err)
	}

	if err := d.EndTrip(); err != nil {
		t.Fatalf("end trip: %v", err)
	}
	if d.Status() != DriverStatusOnline {
		t.Errorf("end trip should return driver to ONLINE, got %s", d.Status())
	}
	if err := d.EndTrip(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("end trip while online: expected ErrInvalidTransition, got %v", err)
	}
}

func TestDriver_TransitionErrorNamesRequiredState(t *testing.T) {
	d := newTestDriver(t)

	err := d.StartTrip()
	var te *TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TransitionError, got %T", err)
	}
	if te.From != string(DriverStatusOffline) {
		t.Errorf("expected From=OFFLINE, got %s", te.From)
	}
	if len(te.Required) != 1 || te.Required[0] != string(DriverStatusOnline) {
		t.Errorf("expected Required=[ONLINE], got %v", te.Required)
	}
}

func TestDriver_UpdateLocationAlwaysAllowed(t *testing.T) {
	d := newTestDriver(t)
	_ = d.GoOnline()
	_ = d.StartTrip()

	loc, _ := NewLocation(19.2, 72.8)
	d.UpdateLocation(loc)
	if d.Location() != loc {
		t.Errorf("expected %v, got %v", loc, d.Location())
	}
}

func TestDriver_CloneIsIndependent(t *testing.T) {
	d := newTestDriver(t)
	c := d.Clone()
	_ = c.GoOnline()

	if d.Status() != DriverStatusOffline {
		t.Errorf("original should be unaffected, got %s", d.Status())
	}
}
