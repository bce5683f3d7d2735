package app

import (
	"database/sql"

	"ridehail/internal/repository"
	"ridehail/internal/repository/memory"
	"ridehail/internal/repository/postgres"
)

// Repositories bundles one backend's stores. Tx is nil when the backend has
// no transactions.
type Repositories struct {
	Drivers  repository.DriverRepository
	Riders   repository.RiderRepository
	Rides    repository.RideRepository
	Receipts repository.ReceiptRepository
	Tx       repository.Transactor
}

// NewMemoryRepositories returns empty in-process stores.
func NewMemoryRepositories() Repositories {
	return Repositories{
		Drivers:  memory.NewDriverRepository(),
		Riders:   memory.NewRiderRepository(),
		Rides:    memory.NewRideRepository(),
		Receipts: memory.NewReceiptRepository(),
	}
}

// NewPostgresRepositories returns stores backed by db.
func NewPostgresRepositories(db *sql.DB) Repositories {
	return Repositories{
		Drivers:  postgres.NewDriverRepository(db),
		Riders:   postgres.NewRiderRepository(db),
		Rides:    postgres.NewRideRepository(db),
		Receipts: postgres.NewReceiptRepository(db),
		Tx:       postgres.NewTransactor(db),
	}
}
