package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions
var (
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("resource already exists")
	ErrBadRequest     = errors.New("bad request")
	ErrInternalServer = errors.New("internal server error")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotConfigured      = errors.New("admin credentials not configured")
	ErrUnauthorized       = errors.New("unauthorized")
)

// ValidationError signals malformed login input. It never counts as a
// failed attempt.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// LockoutError signals an active IP lockout. Message always states the
// remaining wait, rounded up.
type LockoutError struct {
	Message          string
	RemainingMinutes int
}

func (e *LockoutError) Error() string {
	return e.Message
}

// NewLockoutError builds a LockoutError with a human-readable wait time.
// Day-scale lockouts are reported in hours, everything else in minutes.
func NewLockoutError(remainingMinutes int) *LockoutError {
	var msg string
	if remainingMinutes >= 60 && remainingMinutes%60 == 0 {
		hours := remainingMinutes / 60
		if hours == 1 {
			msg = "Too many failed login attempts. Please try again in 1 hour."
		} else {
			msg = fmt.Sprintf("Too many failed login attempts. Please try again in %d hours.", hours)
		}
	} else if remainingMinutes == 1 {
		msg = "Too many failed login attempts. Please try again in 1 minute."
	} else {
		msg = fmt.Sprintf("Too many failed login attempts. Please try again in %d minutes.", remainingMinutes)
	}
	return &LockoutError{Message: msg, RemainingMinutes: remainingMinutes}
}
