package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidLatitude is returned when a latitude is outside [-90, 90].
	ErrInvalidLatitude = errors.New("latitude must be between -90 and 90")

	// ErrInvalidLongitude is returned when a longitude is outside [-180, 180].
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")

	// ErrEmptyID is returned when an entity is built without an identity.
	ErrEmptyID = errors.New("id cannot be empty")

	// ErrEmptyName is returned when a display name is blank.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrInvalidTransition is matched by every TransitionError.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// TransitionError reports a state change attempted from the wrong state.
type TransitionError struct {
	Entity   string
	Action   string
	From     string
	Required []string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s cannot %s while %s (requires %s)",
		e.Entity, e.Action, e.From, strings.Join(e.Required, " or "))
}

// Is lets errors.Is(err, ErrInvalidTransition) match any TransitionError.
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
