package service

import "errors"

var (
	// ErrNoDriverAvailable is returned when no ONLINE driver can be matched.
	ErrNoDriverAvailable = errors.New("no available drivers found")

	// ErrRideHasNoDriver is returned when starting or completing an unassigned ride.
	ErrRideHasNoDriver = errors.New("ride has no driver assigned")

	// ErrRideNotComplete is returned when paying for a ride that is not COMPLETE.
	ErrRideNotComplete = errors.New("payment allowed only after ride is COMPLETE")

	// ErrRideAlreadyExists is returned when a ride ID is requested twice.
	ErrRideAlreadyExists = errors.New("ride already exists")

	// ErrDriverAlreadyExists is returned when registering a known driver ID.
	ErrDriverAlreadyExists = errors.New("driver already exists")

	// ErrRiderAlreadyExists is returned when registering a known rider ID.
	ErrRiderAlreadyExists = errors.New("rider already exists")

	// ErrRideBusy is returned when another request holds the ride's lock.
	ErrRideBusy = errors.New("ride is being updated by another request")

	// ErrDriverBusy is returned when another request holds the driver's lock.
	ErrDriverBusy = errors.New("driver is being updated by another request")

	// ErrRiderBusy is returned when another request holds the rider's lock.
	ErrRiderBusy = errors.New("rider is being updated by another request")

	// ErrInvalidRideID is returned when ride ID is empty.
	ErrInvalidRideID = errors.New("invalid ride id")

	// ErrInvalidDuration is returned when a trip duration is negative or not finite.
	ErrInvalidDuration = errors.New("invalid trip duration")

	// ErrInvalidPaymentAmount is returned when payment amount is invalid.
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")

	// ErrInvalidPaymentMethod is returned when payment method is invalid.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)
