package service

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"

	"ridehail/internal/domain"
)

// PaymentMethod charges a rider for a ride. Implementations return the
// receipt as recorded by the instrument.
type PaymentMethod interface {
	Pay(ctx context.Context, rideID string, amount float64) (domain.PaymentReceipt, error)
}

// ReferenceGenerator issues payment reference IDs.
type ReferenceGenerator interface {
	NewReference(prefix string) string
}

// UUIDReferences issues references of the form "<prefix>_<uuid>".
type UUIDReferences struct{}

func (UUIDReferences) NewReference(prefix string) string {
	return prefix + "_" + uuid.New().String()
}

// stubMethod is a payment instrument that settles immediately.
type stubMethod struct {
	method domain.PaymentMethod
	prefix string
	refs   ReferenceGenerator
	clock  Clock
}

func newStubMethod(method domain.PaymentMethod, prefix string, refs ReferenceGenerator, clock Clock) stubMethod {
	if refs == nil {
		refs = UUIDReferences{}
	}
	return stubMethod{method: method, prefix: prefix, refs: refs, clock: clock}
}

func (m stubMethod) Pay(ctx context.Context, rideID string, amount float64) (domain.PaymentReceipt, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return domain.PaymentReceipt{}, ErrInvalidPaymentAmount
	}
	return domain.PaymentReceipt{
		RideID:      rideID,
		Amount:      amount,
		Method:      m.method,
		Status:      domain.PaymentStatusSuccess,
		ReferenceID: m.refs.NewReference(m.prefix),
		CreatedAt:   m.clock.now(),
	}, nil
}

// CardPayment charges a card.
type CardPayment struct{ stubMethod }

// NewCardPayment creates a card payment method. nil refs uses UUIDReferences.
func NewCardPayment(refs ReferenceGenerator, clock Clock) *CardPayment {
	return &CardPayment{newStubMethod(domain.PaymentMethodCard, "card", refs, clock)}
}

// CashPayment records a cash hand-over.
type CashPayment struct{ stubMethod }

// NewCashPayment creates a cash payment method.
func NewCashPayment(refs ReferenceGenerator, clock Clock) *CashPayment {
	return &CashPayment{newStubMethod(domain.PaymentMethodCash, "cash", refs, clock)}
}

// UPIPayment charges through UPI.
type UPIPayment struct{ stubMethod }

// NewUPIPayment creates a UPI payment method.
func NewUPIPayment(refs ReferenceGenerator, clock Clock) *UPIPayment {
	return &UPIPayment{newStubMethod(domain.PaymentMethodUPI, "upi", refs, clock)}
}

// NewPaymentMethod resolves a method name (case-insensitive). An empty name
// means cash.
func NewPaymentMethod(name string, refs ReferenceGenerator, clock Clock) (PaymentMethod, error) {
	switch domain.PaymentMethod(strings.ToUpper(strings.TrimSpace(name))) {
	case domain.PaymentMethodCard:
		return NewCardPayment(refs, clock), nil
	case domain.PaymentMethodCash, "":
		return NewCashPayment(refs, clock), nil
	case domain.PaymentMethodUPI:
		return NewUPIPayment(refs, clock), nil
	default:
		return nil, ErrInvalidPaymentMethod
	}
}
