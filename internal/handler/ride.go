package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ridehail/internal/domain"
	"ridehail/internal/service"
)

// RideHandler handles HTTP requests for rides.
type RideHandler struct {
	rideService *service.RideService
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(rideService *service.RideService) *RideHandler {
	return &RideHandler{rideService: rideService}
}

// CreateRideRequest is the HTTP request body for requesting a ride.
type CreateRideRequest struct {
	ID      string       `json:"id,omitempty"` // Optional: generated when empty
	RiderID string       `json:"rider_id"`
	Pickup  LocationBody `json:"pickup"`
	Drop    LocationBody `json:"drop"`
}

// RideEventResponse is one entry of a ride's timeline.
type RideEventResponse struct {
	Status string `json:"status"`
	At     string `json:"at"`
}

// RideResponse is the HTTP response for ride data.
type RideResponse struct {
	ID       string              `json:"id"`
	RiderID  string              `json:"rider_id"`
	DriverID string              `json:"driver_id,omitempty"`
	Pickup   LocationBody        `json:"pickup"`
	Drop     LocationBody        `json:"drop"`
	Status   string              `json:"status"`
	Timeline []RideEventResponse `json:"timeline"`
}

func rideResponse(r *domain.Ride) RideResponse {
	driverID, _ := r.DriverID()
	events := r.Timeline()
	timeline := make([]RideEventResponse, 0, len(events))
	for _, ev := range events {
		timeline = append(timeline, RideEventResponse{Status: string(ev.Status), At: formatTime(ev.At)})
	}
	return RideResponse{
		ID:       r.ID(),
		RiderID:  r.RiderID(),
		DriverID: driverID,
		Pickup:   locationBody(r.Pickup()),
		Drop:     locationBody(r.Drop()),
		Status:   string(r.Status()),
		Timeline: timeline,
	}
}

// CreateRide handles POST /v1/rides
func (h *RideHandler) CreateRide(c *gin.Context) {
	var req CreateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c)
		return
	}

	pickup, err := req.Pickup.toDomain()
	if err != nil {
		respondError(c, err)
		return
	}
	drop, err := req.Drop.toDomain()
	if err != nil {
		respondError(c, err)
		return
	}

	ride, err := h.rideService.RequestRide(c.Request.Context(), service.RequestRideRequest{
		RideID:  req.ID,
		RiderID: req.RiderID,
		Pickup:  pickup,
		Drop:    drop,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, rideResponse(ride))
}

// GetRide handles GET /v1/rides/:id
func (h *RideHandler) GetRide(c *gin.Context) {
	h.act(c, h.rideService.GetRide)
}

// StartRide handles POST /v1/rides/:id/start
func (h *RideHandler) StartRide(c *gin.Context) {
	h.act(c, h.rideService.StartRide)
}

// CompleteRide handles POST /v1/rides/:id/complete
func (h *RideHandler) CompleteRide(c *gin.Context) {
	h.act(c, h.rideService.CompleteRide)
}

// CancelRide handles POST /v1/rides/:id/cancel
func (h *RideHandler) CancelRide(c *gin.Context) {
	h.act(c, h.rideService.CancelRide)
}

func (h *RideHandler) act(c *gin.Context, fn func(context.Context, string) (*domain.Ride, error)) {
	ride, err := fn(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, rideResponse(ride))
}
