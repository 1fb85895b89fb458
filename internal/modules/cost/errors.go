package cost

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrBadKind    = errors.New("unknown cost kind")
	ErrNotFound   = errors.New("cost record not found")
	ErrConflict   = errors.New("cost record was modified concurrently")
)
