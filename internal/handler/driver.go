package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ridehail/internal/domain"
	"ridehail/internal/service"
)

// DriverHandler handles HTTP requests for drivers.
type DriverHandler struct {
	driverService *service.DriverService
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(driverService *service.DriverService) *DriverHandler {
	return &DriverHandler{driverService: driverService}
}

// RegisterDriverRequest is the HTTP request body for driver registration.
type RegisterDriverRequest struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Location LocationBody `json:"location"`
}

// DriverResponse is the HTTP response for driver data.
type DriverResponse struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Status   string       `json:"status"`
	Location LocationBody `json:"location"`
}

func driverResponse(d *domain.Driver) DriverResponse {
	return DriverResponse{
		ID:       d.ID(),
		Name:     d.Name(),
		Status:   string(d.Status()),
		Location: locationBody(d.Location()),
	}
}

// Register handles POST /v1/drivers
func (h *DriverHandler) Register(c *gin.Context) {
	var req RegisterDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c)
		return
	}

	loc, err := req.Location.toDomain()
	if err != nil {
		respondError(c, err)
		return
	}

	driver, err := h.driverService.RegisterDriver(c.Request.Context(), service.RegisterDriverRequest{
		ID:       req.ID,
		Name:     req.Name,
		Location: loc,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, driverResponse(driver))
}

// GetAll handles GET /v1/drivers
func (h *DriverHandler) GetAll(c *gin.Context) {
	drivers, err := h.driverService.ListDrivers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		response = append(response, driverResponse(d))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /v1/drivers/:id
func (h *DriverHandler) Get(c *gin.Context) {
	driver, err := h.driverService.GetDriver(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, driverResponse(driver))
}

// GoOnline handles POST /v1/drivers/:id/online
func (h *DriverHandler) GoOnline(c *gin.Context) {
	h.toggle(c, h.driverService.GoOnline)
}

// GoOffline handles POST /v1/drivers/:id/offline
func (h *DriverHandler) GoOffline(c *gin.Context) {
	h.toggle(c, h.driverService.GoOffline)
}

func (h *DriverHandler) toggle(c *gin.Context, fn func(context.Context, string) (*domain.Driver, error)) {
	driver, err := fn(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, driverResponse(driver))
}

// UpdateLocation handles POST /v1/drivers/:id/location
func (h *DriverHandler) UpdateLocation(c *gin.Context) {
	var req LocationBody
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c)
		return
	}

	loc, err := req.toDomain()
	if err != nil {
		respondError(c, err)
		return
	}

	driver, err := h.driverService.UpdateLocation(c.Request.Context(), c.Param("id"), loc)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, driverResponse(driver))
}
