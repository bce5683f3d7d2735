package service

import (
	"math"

	"ridehail/internal/domain"
)

// FareConfig holds the tariff applied by PricingService.
type FareConfig struct {
	BaseFare   float64
	PerKmRate  float64
	PerMinRate float64
}

// DefaultFareConfig returns the standard city tariff.
func DefaultFareConfig() FareConfig {
	return FareConfig{
		BaseFare:   50,
		PerKmRate:  15,
		PerMinRate: 2,
	}
}

// PricingService computes ride fares.
type PricingService struct {
	cfg FareConfig
}

// NewPricingService creates a new PricingService.
func NewPricingService(cfg FareConfig) *PricingService {
	return &PricingService{cfg: cfg}
}

// EstimateFare returns the whole-unit fare for a ride that took durationMin
// minutes, rounded up.
func (s *PricingService) EstimateFare(ride *domain.Ride, durationMin float64) (float64, error) {
	if math.IsNaN(durationMin) || math.IsInf(durationMin, 0) || durationMin < 0 {
		return 0, ErrInvalidDuration
	}
	distance := DistanceKm(ride.Pickup(), ride.Drop())
	fare := s.cfg.BaseFare + s.cfg.PerKmRate*distance + s.cfg.PerMinRate*durationMin
	return math.Ceil(fare), nil
}
