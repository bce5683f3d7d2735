package memory

import (
	"context"
	"sync"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
)

// ReceiptRepository is an in-memory implementation of repository.ReceiptRepository.
type ReceiptRepository struct {
	mu       sync.RWMutex
	receipts map[string]domain.PaymentReceipt
}

// NewReceiptRepository creates an empty receipt store.
func NewReceiptRepository() *ReceiptRepository {
	return &ReceiptRepository{
		receipts: make(map[string]domain.PaymentReceipt),
	}
}

func (r *ReceiptRepository) Save(ctx context.Context, receipt domain.PaymentReceipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.receipts[receipt.RideID] = receipt
	return nil
}

func (r *ReceiptRepository) FindByRideID(ctx context.Context, rideID string) (domain.PaymentReceipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	receipt, ok := r.receipts[rideID]
	if !ok {
		return domain.PaymentReceipt{}, repository.NotFound("receipt", rideID)
	}
	return receipt, nil
}

var _ repository.ReceiptRepository = (*ReceiptRepository)(nil)
