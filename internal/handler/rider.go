package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridehail/internal/domain"
	"ridehail/internal/service"
)

// RiderHandler handles HTTP requests for riders.
type RiderHandler struct {
	riderService *service.RiderService
}

// NewRiderHandler creates a new RiderHandler.
func NewRiderHandler(riderService *service.RiderService) *RiderHandler {
	return &RiderHandler{riderService: riderService}
}

// RegisterRiderRequest is the HTTP request body for rider registration.
type RegisterRiderRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RenameRiderRequest is the HTTP request body for renaming a rider.
type RenameRiderRequest struct {
	Name string `json:"name"`
}

// RiderResponse is the HTTP response for rider data.
type RiderResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func riderResponse(r *domain.Rider) RiderResponse {
	return RiderResponse{ID: r.ID(), Name: r.Name()}
}

// Register handles POST /v1/riders
func (h *RiderHandler) Register(c *gin.Context) {
	var req RegisterRiderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c)
		return
	}

	rider, err := h.riderService.RegisterRider(c.Request.Context(), req.ID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, riderResponse(rider))
}

// Get handles GET /v1/riders/:id
func (h *RiderHandler) Get(c *gin.Context) {
	rider, err := h.riderService.GetRider(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, riderResponse(rider))
}

// Rename handles PATCH /v1/riders/:id
func (h *RiderHandler) Rename(c *gin.Context) {
	var req RenameRiderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c)
		return
	}

	rider, err := h.riderService.RenameRider(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, riderResponse(rider))
}
