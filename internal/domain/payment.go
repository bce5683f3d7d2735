package domain

import "time"

// PaymentStatus represents the current status of a payment.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// PaymentMethod names the instrument a ride was paid with.
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "CASH"
	PaymentMethodCard PaymentMethod = "CARD"
	PaymentMethodUPI  PaymentMethod = "UPI"
)

// PaymentReceipt is the immutable record of a payment for a ride.
type PaymentReceipt struct {
	RideID      string
	Amount      float64
	Method      PaymentMethod
	Status      PaymentStatus
	ReferenceID string
	CreatedAt   time.Time
}
