package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
	"ridehail/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LocationBody is a coordinate pair on the wire.
type LocationBody struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (b LocationBody) toDomain() (domain.Location, error) {
	return domain.NewLocation(b.Lat, b.Lng)
}

func locationBody(l domain.Location) LocationBody {
	return LocationBody{Lat: l.Latitude(), Lng: l.Longitude()}
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

func badRequestBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// mapErrorToHTTPStatus maps domain/service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, domain.ErrInvalidLatitude),
		errors.Is(err, domain.ErrInvalidLongitude),
		errors.Is(err, domain.ErrEmptyID),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, service.ErrInvalidRideID),
		errors.Is(err, service.ErrInvalidDuration),
		errors.Is(err, service.ErrInvalidPaymentAmount),
		errors.Is(err, service.ErrInvalidPaymentMethod):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, service.ErrRideAlreadyExists),
		errors.Is(err, service.ErrDriverAlreadyExists),
		errors.Is(err, service.ErrRiderAlreadyExists),
		errors.Is(err, service.ErrRideNotComplete),
		errors.Is(err, service.ErrRideHasNoDriver),
		errors.Is(err, service.ErrRideBusy),
		errors.Is(err, service.ErrDriverBusy),
		errors.Is(err, service.ErrRiderBusy):
		return http.StatusConflict

	// Service unavailable
	case errors.Is(err, service.ErrNoDriverAvailable):
		return http.StatusServiceUnavailable

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
