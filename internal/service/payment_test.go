package service

import (
	"context"
	"errors"
	"testing"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
)

// completedRide drives ride-101 to COMPLETE through the fixture.
func completedRide(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()
	f.drivers.addDriver(t, "d1", 19.076, 72.8777, domain.DriverStatusOnline)
	if _, err := f.request(t, "ride-101"); err != nil {
		t.Fatalf("request: %v", err)
	}
	if _, err := f.rideSvc.StartRide(ctx, "ride-101"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.rideSvc.CompleteRide(ctx, "ride-101"); err != nil {
		t.Fatalf("complete: %v", err)
	}
}

func TestPayForRide_Success(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	completedRide(t, f)

	receipt, err := f.paySvc.PayForRide(ctx, PayForRideRequest{
		RideID:      "ride-101",
		DurationMin: 18,
		Method:      NewUPIPayment(&seqReferences{}, fixedClock(testStart)),
	})
	if err != nil {
		t.Fatalf("pay: %v", err)
	}

	want := domain.PaymentReceipt{
		RideID:      "ride-101",
		Amount:      134,
		Method:      domain.PaymentMethodUPI,
		Status:      domain.PaymentStatusSuccess,
		ReferenceID: "upi_1",
		CreatedAt:   testStart,
	}
	if receipt != want {
		t.Errorf("expected %+v, got %+v", want, receipt)
	}

	stored, err := f.paySvc.GetReceipt(ctx, "ride-101")
	if err != nil {
		t.Fatalf("get receipt: %v", err)
	}
	if stored != receipt {
		t.Errorf("stored receipt differs: %+v", stored)
	}
}

func TestPayForRide_RequiresCompleteRide(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		prepare func(t *testing.T, f *fixture)
	}{
		{
			name: "accepted",
			prepare: func(t *testing.T, f *fixture) {
				if _, err := f.request(t, "ride-101"); err != nil {
					t.Fatalf("request: %v", err)
				}
			},
		},
		{
			name: "in progress",
			prepare: func(t *testing.T, f *fixture) {
				if _, err := f.request(t, "ride-101"); err != nil {
					t.Fatalf("request: %v", err)
				}
				if _, err := f.rideSvc.StartRide(ctx, "ride-101"); err != nil {
					t.Fatalf("start: %v", err)
				}
			},
		},
		{
			name: "cancelled",
			prepare: func(t *testing.T, f *fixture) {
				if _, err := f.request(t, "ride-101"); err != nil {
					t.Fatalf("request: %v", err)
				}
				if _, err := f.rideSvc.CancelRide(ctx, "ride-101"); err != nil {
					t.Fatalf("cancel: %v", err)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.drivers.addDriver(t, "d1", 19.076, 72.8777, domain.DriverStatusOnline)
			tc.prepare(t, f)

			_, err := f.paySvc.PayForRide(ctx, PayForRideRequest{
				RideID:      "ride-101",
				DurationMin: 18,
				Method:      NewCashPayment(nil, nil),
			})
			if !errors.Is(err, ErrRideNotComplete) {
				t.Fatalf("expected ErrRideNotComplete, got %v", err)
			}
			if _, err := f.paySvc.GetReceipt(ctx, "ride-101"); !errors.Is(err, repository.ErrNotFound) {
				t.Errorf("no receipt should be recorded, got %v", err)
			}
		})
	}
}

func TestPayForRide_InvalidInput(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	completedRide(t, f)

	if _, err := f.paySvc.PayForRide(ctx, PayForRideRequest{RideID: "ride-101", DurationMin: 18}); !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Errorf("nil method: expected ErrInvalidPaymentMethod, got %v", err)
	}
	if _, err := f.paySvc.PayForRide(ctx, PayForRideRequest{RideID: "ride-101", DurationMin: -1, Method: NewCashPayment(nil, nil)}); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("negative duration: expected ErrInvalidDuration, got %v", err)
	}
	if _, err := f.paySvc.PayForRide(ctx, PayForRideRequest{RideID: "nope", DurationMin: 1, Method: NewCashPayment(nil, nil)}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("unknown ride: expected ErrNotFound, got %v", err)
	}
}

func TestPayForRide_WithoutReceiptStore(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	completedRide(t, f)

	svc := NewPaymentService(f.rides, nil, NewPricingService(DefaultFareConfig()), discardLogger())
	if _, err := svc.PayForRide(ctx, PayForRideRequest{RideID: "ride-101", DurationMin: 5, Method: NewCardPayment(nil, nil)}); err != nil {
		t.Fatalf("pay: %v", err)
	}
	if _, err := svc.GetReceipt(ctx, "ride-101"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound without a receipt store, got %v", err)
	}
}

// failingMethod simulates a declined instrument.
type failingMethod struct{ err error }

func (m failingMethod) Pay(ctx context.Context, rideID string, amount float64) (domain.PaymentReceipt, error) {
	return domain.PaymentReceipt{}, m.err
}

func TestPayForRide_MethodErrorRecordsNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	completedRide(t, f)

	declined := errors.New("declined")
	if _, err := f.paySvc.PayForRide(ctx, PayForRideRequest{RideID: "ride-101", DurationMin: 5, Method: failingMethod{declined}}); !errors.Is(err, declined) {
		t.Fatalf("expected method error, got %v", err)
	}
	if _, err := f.paySvc.GetReceipt(ctx, "ride-101"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("no receipt expected, got %v", err)
	}
}
