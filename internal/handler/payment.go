package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridehail/internal/domain"
	"ridehail/internal/service"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	paymentService *service.PaymentService
	refs           service.ReferenceGenerator
	clock          service.Clock
}

// NewPaymentHandler creates a new PaymentHandler. nil refs and clock fall
// back to UUID references and the wall clock.
func NewPaymentHandler(paymentService *service.PaymentService, refs service.ReferenceGenerator, clock service.Clock) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		refs:           refs,
		clock:          clock,
	}
}

// PayRideRequest is the HTTP request body for paying for a ride.
type PayRideRequest struct {
	DurationMin float64 `json:"duration_min"`
	Method      string  `json:"method"` // CASH, CARD, UPI
}

// ReceiptResponse is the HTTP response for a payment receipt.
type ReceiptResponse struct {
	RideID      string  `json:"ride_id"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	Status      string  `json:"status"`
	ReferenceID string  `json:"reference_id"`
	CreatedAt   string  `json:"created_at"`
}

func receiptResponse(r domain.PaymentReceipt) ReceiptResponse {
	return ReceiptResponse{
		RideID:      r.RideID,
		Amount:      r.Amount,
		Method:      string(r.Method),
		Status:      string(r.Status),
		ReferenceID: r.ReferenceID,
		CreatedAt:   formatTime(r.CreatedAt),
	}
}

// PayForRide handles POST /v1/rides/:id/payment
func (h *PaymentHandler) PayForRide(c *gin.Context) {
	var req PayRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c)
		return
	}

	method, err := service.NewPaymentMethod(req.Method, h.refs, h.clock)
	if err != nil {
		respondError(c, err)
		return
	}

	receipt, err := h.paymentService.PayForRide(c.Request.Context(), service.PayForRideRequest{
		RideID:      c.Param("id"),
		DurationMin: req.DurationMin,
		Method:      method,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, receiptResponse(receipt))
}

// GetReceipt handles GET /v1/rides/:id/receipt
func (h *PaymentHandler) GetReceipt(c *gin.Context) {
	receipt, err := h.paymentService.GetReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, receiptResponse(receipt))
}
