package identity

import (
	"errors"
	"fmt"
)

// Validation reasons reported to the caller alongside the offending field.
const (
	ReasonRequired             = "required"
	ReasonTooLong              = "too_long"
	ReasonTooShort             = "too_short"
	ReasonTaken                = "taken"
	ReasonWrongCurrentPassword = "wrong_current_password"
	ReasonConfirmationMismatch = "confirmation_mismatch"
)

// ValidationError is a recoverable input problem, re-shown to the caller.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

var (
	// ErrAccountNotFound and ErrBadCredentials stay distinct internally;
	// the login handler presents both identically to avoid account
	// enumeration.
	ErrAccountNotFound = errors.New("account not found")
	ErrBadCredentials  = errors.New("invalid credentials")

	// ErrUnauthorized terminates an operation with no partial effect.
	ErrUnauthorized = errors.New("unauthorized")

	ErrSessionNotFound = errors.New("session not found")
)
