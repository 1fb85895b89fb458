package booking

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("booking not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrNotPending      = errors.New("booking is not pending")
	ErrConflict        = errors.New("booking was modified concurrently")
	ErrForbidden       = errors.New("booking belongs to another user")
	ErrInvalidDocument = errors.New("invalid document type")
)
