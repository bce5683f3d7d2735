package postgres

import (
	"context"
	"database/sql"
	"errors"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
)

// ReceiptRepository is a PostgreSQL implementation of repository.ReceiptRepository.
type ReceiptRepository struct {
	q Querier
}

// NewReceiptRepository creates a new PostgreSQL receipt repository.
func NewReceiptRepository(db *sql.DB) *ReceiptRepository {
	return &ReceiptRepository{q: db}
}

// Save records the receipt, replacing any earlier one for the ride.
func (r *ReceiptRepository) Save(ctx context.Context, receipt domain.PaymentReceipt) error {
	query := `
		INSERT INTO receipts (ride_id, amount, method, status, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (ride_id) DO UPDATE
		SET amount = EXCLUDED.amount, method = EXCLUDED.method, status = EXCLUDED.status,
		    reference_id = EXCLUDED.reference_id, created_at = EXCLUDED.created_at
	`
	_, err := r.q.ExecContext(ctx, query,
		receipt.RideID,
		receipt.Amount,
		string(receipt.Method),
		string(receipt.Status),
		receipt.ReferenceID,
		receipt.CreatedAt,
	)
	return err
}

// FindByRideID retrieves the receipt for a ride.
func (r *ReceiptRepository) FindByRideID(ctx context.Context, rideID string) (domain.PaymentReceipt, error) {
	query := `
		SELECT ride_id, amount, method, status, reference_id, created_at
		FROM receipts WHERE ride_id = $1
	`

	var (
		receipt        domain.PaymentReceipt
		method, status string
	)
	err := r.q.QueryRowContext(ctx, query, rideID).Scan(
		&receipt.RideID,
		&receipt.Amount,
		&method,
		&status,
		&receipt.ReferenceID,
		&receipt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PaymentReceipt{}, repository.NotFound("receipt", rideID)
		}
		return domain.PaymentReceipt{}, err
	}
	receipt.Method = domain.PaymentMethod(method)
	receipt.Status = domain.PaymentStatus(status)
	return receipt, nil
}

var _ repository.ReceiptRepository = (*ReceiptRepository)(nil)
