package room

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("room not found")
	ErrRoomBooked = errors.New("room is currently booked")
	ErrConflict   = errors.New("room was modified concurrently")
)

// ValidationError carries the per-field failures so handlers can echo them
// back to the client. errors.Is(err, ErrValidation) still matches it.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return ErrValidation.Error() }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
