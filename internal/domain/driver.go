package domain

import "strings"

// DriverStatus represents the current status of a driver.
type DriverStatus string

const (
	DriverStatusOnline  DriverStatus = "ONLINE"
	DriverStatusOffline DriverStatus = "OFFLINE"
	DriverStatusOnTrip  DriverStatus = "ON_TRIP"
)

// Driver represents a driver in the system.
//
// Status moves OFFLINE <-> ONLINE -> ON_TRIP -> ONLINE. Ending a trip always
// returns the driver to ONLINE, never OFFLINE.
type Driver struct {
	id       string
	name     string
	status   DriverStatus
	location Location
}

// NewDriver creates an OFFLINE driver at the given location.
func NewDriver(id, name string, loc Location) (*Driver, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &Driver{
		id:       id,
		name:     name,
		status:   DriverStatusOffline,
		location: loc,
	}, nil
}

// RestoreDriver rebuilds a driver from persisted state.
func RestoreDriver(id, name string, status DriverStatus, loc Location) *Driver {
	return &Driver{id: id, name: name, status: status, location: loc}
}

// ID returns the driver's identity.
func (d *Driver) ID() string {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) Status() DriverStatus {
	return d.status
}

// Location returns the driver's last known position.
func (d *Driver) Location() Location {
	return d.location
}

// IsAvailable reports whether the driver can be matched to a ride.
func (d *Driver) IsAvailable() bool {
	return d.status == DriverStatusOnline
}

// UpdateLocation overwrites the driver's position.
func (d *Driver) UpdateLocation(loc Location) {
	d.location = loc
}

// GoOnline makes the driver available for matching.
func (d *Driver) GoOnline() error {
	if d.status == DriverStatusOnTrip {
		return d.transitionError("go online", DriverStatusOnline, DriverStatusOffline)
	}
	d.status = DriverStatusOnline
	return nil
}

// GoOffline takes the driver out of matching.
func (d *Driver) GoOffline() error {
	if d.status == DriverStatusOnTrip {
		return d.transitionError("go offline", DriverStatusOnline, DriverStatusOffline)
	}
	d.status = DriverStatusOffline
	return nil
}

// StartTrip moves an ONLINE driver to ON_TRIP.
func (d *Driver) StartTrip() error {
	if d.status != DriverStatusOnline {
		return d.transitionError("start a trip", DriverStatusOnline)
	}
	d.status = DriverStatusOnTrip
	return nil
}

// EndTrip returns an ON_TRIP driver to ONLINE.
func (d *Driver) EndTrip() error {
	if d.status != DriverStatusOnTrip {
		return d.transitionError("end a trip", DriverStatusOnTrip)
	}
	d.status = DriverStatusOnline
	return nil
}

// Clone returns an independent copy of the driver.
func (d *Driver) Clone() *Driver {
	c := *d
	return &c
}

func (d *Driver) transitionError(action string, required ...DriverStatus) error {
	req := make([]string, len(required))
	for i, s := range required {
		req[i] = string(s)
	}
	return &TransitionError{
		Entity:   "driver",
		Action:   action,
		From:     string(d.status),
		Required: req,
	}
}
