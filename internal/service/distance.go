package service

import (
	"math"

	"ridehail/internal/domain"
)

// kmPerDegree is the rough length of one degree of arc at the equator.
const kmPerDegree = 111.0

// DistanceKm is a planar approximation of the distance between two points.
// It ignores the narrowing of longitude degrees away from the equator.
func DistanceKm(a, b domain.Location) float64 {
	dLat := a.Latitude() - b.Latitude()
	dLng := a.Longitude() - b.Longitude()
	return math.Sqrt(dLat*dLat+dLng*dLng) * kmPerDegree
}
