package repository

import "context"

// Transactor runs fn against driver and ride repositories whose writes
// commit together. If fn returns an error nothing it saved is kept.
type Transactor interface {
	InTx(ctx context.Context, fn func(drivers DriverRepository, rides RideRepository) error) error
}
