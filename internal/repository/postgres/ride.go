package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
)

// RideRepository is a PostgreSQL implementation of repository.RideRepository.
// Timeline events are stored in ride_events keyed by (ride_id, seq).
type RideRepository struct {
	q  Querier
	db *sql.DB // nil when bound to a caller's transaction
}

// NewRideRepository creates a new PostgreSQL ride repository.
func NewRideRepository(db *sql.DB) *RideRepository {
	return &RideRepository{q: db, db: db}
}

// NewRideRepositoryWithTx creates a ride repository using a transaction.
func NewRideRepositoryWithTx(tx *sql.Tx) *RideRepository {
	return &RideRepository{q: tx}
}

// Save overwrites the ride row and replaces its timeline. Outside a caller's
// transaction it opens its own.
func (r *RideRepository) Save(ctx context.Context, ride *domain.Ride) error {
	if r.db == nil {
		return saveRide(ctx, r.q, ride)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ride save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := saveRide(ctx, tx, ride); err != nil {
		return err
	}
	return tx.Commit()
}

func saveRide(ctx context.Context, q Querier, ride *domain.Ride) error {
	query := `
		INSERT INTO rides (id, rider_id, pickup_lat, pickup_lng, drop_lat, drop_lng, driver_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET rider_id = EXCLUDED.rider_id,
			pickup_lat = EXCLUDED.pickup_lat,
			pickup_lng = EXCLUDED.pickup_lng,
			drop_lat = EXCLUDED.drop_lat,
			drop_lng = EXCLUDED.drop_lng,
			driver_id = EXCLUDED.driver_id,
			status = EXCLUDED.status
	`

	var driverID sql.NullString
	if id, ok := ride.DriverID(); ok {
		driverID = sql.NullString{String: id, Valid: true}
	}

	pickup, drop := ride.Pickup(), ride.Drop()
	if _, err := q.ExecContext(ctx, query,
		ride.ID(),
		ride.RiderID(),
		pickup.Latitude(),
		pickup.Longitude(),
		drop.Latitude(),
		drop.Longitude(),
		driverID,
		string(ride.Status()),
	); err != nil {
		return err
	}

	timeline := ride.Timeline()
	if _, err := q.ExecContext(ctx,
		`DELETE FROM ride_events WHERE ride_id = $1 AND seq >= $2`,
		ride.ID(), len(timeline),
	); err != nil {
		return err
	}

	eventQuery := `
		INSERT INTO ride_events (ride_id, seq, status, at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (ride_id, seq) DO UPDATE
		SET status = EXCLUDED.status, at = EXCLUDED.at
	`
	for i, ev := range timeline {
		if _, err := q.ExecContext(ctx, eventQuery, ride.ID(), i, string(ev.Status), ev.At); err != nil {
			return err
		}
	}
	return nil
}

// FindByID retrieves a ride and its timeline.
func (r *RideRepository) FindByID(ctx context.Context, id string) (*domain.Ride, error) {
	query := `
		SELECT id, rider_id, pickup_lat, pickup_lng, drop_lat, drop_lng, driver_id, status
		FROM rides WHERE id = $1
	`

	var (
		rideID, riderID, status string
		pLat, pLng, dLat, dLng  float64
		driverID                sql.NullString
	)
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&rideID,
		&riderID,
		&pLat,
		&pLng,
		&dLat,
		&dLng,
		&driverID,
		&status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.NotFound("ride", id)
		}
		return nil, err
	}

	pickup, err := location(pLat, pLng)
	if err != nil {
		return nil, err
	}
	drop, err := location(dLat, dLng)
	if err != nil {
		return nil, err
	}

	timeline, err := r.events(ctx, id)
	if err != nil {
		return nil, err
	}

	return domain.RestoreRide(rideID, riderID, pickup, drop, driverID.String, domain.RideStatus(status), timeline), nil
}

func (r *RideRepository) events(ctx context.Context, rideID string) ([]domain.RideEvent, error) {
	query := `SELECT status, at FROM ride_events WHERE ride_id = $1 ORDER BY seq`
	rows, err := r.q.QueryContext(ctx, query, rideID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.RideEvent
	for rows.Next() {
		var (
			status string
			at     time.Time
		)
		if err := rows.Scan(&status, &at); err != nil {
			return nil, err
		}
		events = append(events, domain.RideEvent{Status: domain.RideStatus(status), At: at})
	}
	return events, rows.Err()
}

var _ repository.RideRepository = (*RideRepository)(nil)
