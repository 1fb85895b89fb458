package auth

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrPhoneAlreadyUsed   = errors.New("phone already registered to a verified account")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrTokenInvalid       = errors.New("invalid or expired token")
	ErrAlreadyVerified    = errors.New("account already verified")
	ErrSessionInvalid     = errors.New("session invalid")
)
