package domain

import "math"

// Location is an immutable coordinate pair in decimal degrees.
type Location struct {
	lat float64
	lng float64
}

// NewLocation validates the coordinates and returns a Location.
func NewLocation(lat, lng float64) (Location, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return Location{}, ErrInvalidLatitude
	}
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return Location{}, ErrInvalidLongitude
	}
	return Location{lat: lat, lng: lng}, nil
}

// Latitude returns the latitude in degrees.
func (l Location) Latitude() float64 {
	return l.lat
}

// Longitude returns the longitude in degrees.
func (l Location) Longitude() float64 {
	return l.lng
}
