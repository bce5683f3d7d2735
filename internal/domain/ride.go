package domain

import "time"

// RideStatus represents the current status of a ride.
type RideStatus string

const (
	RideStatusRequested  RideStatus = "REQUESTED"
	RideStatusAccepted   RideStatus = "ACCEPTED"
	RideStatusInProgress RideStatus = "IN_PROGRESS"
	RideStatusComplete   RideStatus = "COMPLETE"
	RideStatusCancelled  RideStatus = "CANCELLED"
)

// allowedTransitions is the ride state flow as code. COMPLETE and CANCELLED
// are terminal.
var allowedTransitions = map[RideStatus][]RideStatus{
	RideStatusRequested:  {RideStatusAccepted, RideStatusCancelled},
	RideStatusAccepted:   {RideStatusInProgress, RideStatusCancelled},
	RideStatusInProgress: {RideStatusComplete},
}

// CanTransition reports whether a ride may move from one status to another.
func CanTransition(from, to RideStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// RideEvent records one status change on a ride's timeline.
type RideEvent struct {
	Status RideStatus
	At     time.Time
}

// Ride is a trip request from a rider, with an append-only timeline.
type Ride struct {
	id       string
	riderID  string
	pickup   Location
	drop     Location
	driverID string
	status   RideStatus
	timeline []RideEvent
}

// NewRide creates a REQUESTED ride and seeds its timeline.
func NewRide(id, riderID string, pickup, drop Location, at time.Time) (*Ride, error) {
	if id == "" || riderID == "" {
		return nil, ErrEmptyID
	}
	return &Ride{
		id:       id,
		riderID:  riderID,
		pickup:   pickup,
		drop:     drop,
		status:   RideStatusRequested,
		timeline: []RideEvent{{Status: RideStatusRequested, At: at}},
	}, nil
}

// RestoreRide rebuilds a ride from persisted state.
func RestoreRide(id, riderID string, pickup, drop Location, driverID string, status RideStatus, timeline []RideEvent) *Ride {
	events := make([]RideEvent, len(timeline))
	copy(events, timeline)
	return &Ride{
		id:       id,
		riderID:  riderID,
		pickup:   pickup,
		drop:     drop,
		driverID: driverID,
		status:   status,
		timeline: events,
	}
}

func (r *Ride) ID() string {
	return r.id
}

func (r *Ride) RiderID() string {
	return r.riderID
}

func (r *Ride) Pickup() Location {
	return r.pickup
}

func (r *Ride) Drop() Location {
	return r.drop
}

func (r *Ride) Status() RideStatus {
	return r.status
}

// DriverID returns the assigned driver, if any.
func (r *Ride) DriverID() (string, bool) {
	return r.driverID, r.driverID != ""
}

// Timeline returns a copy of the ride's events in the order they happened.
func (r *Ride) Timeline() []RideEvent {
	events := make([]RideEvent, len(r.timeline))
	copy(events, r.timeline)
	return events
}

// AssignDriver accepts the ride on behalf of a driver. A ride is assigned at
// most once.
func (r *Ride) AssignDriver(driverID string, at time.Time) error {
	if driverID == "" {
		return ErrEmptyID
	}
	if err := r.transition("assign a driver", RideStatusAccepted, at); err != nil {
		return err
	}
	r.driverID = driverID
	return nil
}

// Start moves an ACCEPTED ride to IN_PROGRESS.
func (r *Ride) Start(at time.Time) error {
	return r.transition("start", RideStatusInProgress, at)
}

// Complete moves an IN_PROGRESS ride to COMPLETE.
func (r *Ride) Complete(at time.Time) error {
	return r.transition("complete", RideStatusComplete, at)
}

// Cancel is only allowed before the ride is IN_PROGRESS.
func (r *Ride) Cancel(at time.Time) error {
	return r.transition("cancel", RideStatusCancelled, at)
}

// Clone returns an independent copy of the ride, timeline included.
func (r *Ride) Clone() *Ride {
	c := *r
	c.timeline = r.Timeline()
	return &c
}

func (r *Ride) transition(action string, to RideStatus, at time.Time) error {
	if !CanTransition(r.status, to) {
		return &TransitionError{
			Entity:   "ride",
			Action:   action,
			From:     string(r.status),
			Required: requiredFor(to),
		}
	}
	r.status = to
	r.timeline = append(r.timeline, RideEvent{Status: to, At: at})
	return nil
}

// requiredFor lists the statuses a ride may be in to reach target.
func requiredFor(target RideStatus) []string {
	var req []string
	for _, from := range []RideStatus{
		RideStatusRequested,
		RideStatusAccepted,
		RideStatusInProgress,
	} {
		if CanTransition(from, target) {
			req = append(req, string(from))
		}
	}
	return req
}
