package domain

import "errors"

// Errors surfaced at the gateway boundary.
var (
	ErrAlreadyExists        = errors.New("identifier already registered")
	ErrAuthenticationFailed = errors.New("invalid credentials")
	ErrTooManyAttempts      = errors.New("too many failed login attempts")
	ErrHasherFault          = errors.New("password hasher fault")
	ErrStoreUnavailable     = errors.New("credential store unavailable")
)

// Component-level errors. They are logged and audited but collapsed to
// ErrAuthenticationFailed before reaching a caller.
var (
	ErrIdentityNotFound = errors.New("identity not found")
	ErrTokenInvalid     = errors.New("token invalid")
	ErrTokenExpired     = errors.New("token expired")
)

var ErrJobNotFound = errors.New("job not found")
var ErrInvalidJob = errors.New("invalid job")

// ErrInvalidInput is returned when a credential field is empty or a password
// cannot be hashed as given.
var ErrInvalidInput = errors.New("invalid identifier or password")
