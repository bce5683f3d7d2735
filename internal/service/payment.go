package service

import (
	"context"
	"log"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
)

// PaymentService handles payment operations.
type PaymentService struct {
	rideRepo    repository.RideRepository
	receiptRepo repository.ReceiptRepository
	pricing     *PricingService
	logger      *log.Logger
}

// NewPaymentService creates a new PaymentService. receiptRepo may be nil, in
// which case receipts are returned but not recorded.
func NewPaymentService(
	rideRepo repository.RideRepository,
	receiptRepo repository.ReceiptRepository,
	pricing *PricingService,
	logger *log.Logger,
) *PaymentService {
	if logger == nil {
		logger = log.Default()
	}
	return &PaymentService{
		rideRepo:    rideRepo,
		receiptRepo: receiptRepo,
		pricing:     pricing,
		logger:      logger,
	}
}

// PayForRideRequest contains the parameters for paying for a ride.
type PayForRideRequest struct {
	RideID      string
	DurationMin float64
	Method      PaymentMethod
}

// PayForRide prices a COMPLETE ride and charges it through the given method.
func (s *PaymentService) PayForRide(ctx context.Context, req PayForRideRequest) (domain.PaymentReceipt, error) {
	if req.Method == nil {
		return domain.PaymentReceipt{}, ErrInvalidPaymentMethod
	}
	if req.RideID == "" {
		return domain.PaymentReceipt{}, ErrInvalidRideID
	}

	ride, err := s.rideRepo.FindByID(ctx, req.RideID)
	if err != nil {
		return domain.PaymentReceipt{}, err
	}
	if ride.Status() != domain.RideStatusComplete {
		return domain.PaymentReceipt{}, ErrRideNotComplete
	}

	amount, err := s.pricing.EstimateFare(ride, req.DurationMin)
	if err != nil {
		return domain.PaymentReceipt{}, err
	}

	receipt, err := req.Method.Pay(ctx, ride.ID(), amount)
	if err != nil {
		return domain.PaymentReceipt{}, err
	}

	if s.receiptRepo != nil {
		if err := s.receiptRepo.Save(ctx, receipt); err != nil {
			return domain.PaymentReceipt{}, err
		}
	}

	s.logger.Printf("ride %s paid: %.2f via %s (%s)", ride.ID(), receipt.Amount, receipt.Method, receipt.ReferenceID)
	return receipt, nil
}

// GetReceipt returns the last recorded receipt for a ride.
func (s *PaymentService) GetReceipt(ctx context.Context, rideID string) (domain.PaymentReceipt, error) {
	if rideID == "" {
		return domain.PaymentReceipt{}, ErrInvalidRideID
	}
	if s.receiptRepo == nil {
		return domain.PaymentReceipt{}, repository.NotFound("receipt", rideID)
	}
	return s.receiptRepo.FindByRideID(ctx, rideID)
}
