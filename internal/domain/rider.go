package domain

import "strings"

// Rider represents a passenger in the system.
type Rider struct {
	id   string
	name string
}

// NewRider creates a rider. Both id and name are required.
func NewRider(id, name string) (*Rider, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &Rider{id: id, name: name}, nil
}

// RestoreRider rebuilds a rider from persisted state.
func RestoreRider(id, name string) *Rider {
	return &Rider{id: id, name: name}
}

func (r *Rider) ID() string {
	return r.id
}

func (r *Rider) Name() string {
	return r.name
}

// Rename changes the display name. Blank names are rejected.
func (r *Rider) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	r.name = name
	return nil
}

// Clone returns an independent copy of the rider.
func (r *Rider) Clone() *Rider {
	c := *r
	return &c
}
