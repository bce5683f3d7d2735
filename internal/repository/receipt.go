package repository

import (
	"context"

	"ridehail/internal/domain"
)

// ReceiptRepository stores the latest payment receipt per ride.
type ReceiptRepository interface {
	// Save records a receipt, replacing any earlier one for the same ride.
	Save(ctx context.Context, receipt domain.PaymentReceipt) error

	// FindByRideID retrieves the receipt for a ride.
	FindByRideID(ctx context.Context, rideID string) (domain.PaymentReceipt, error)
}
