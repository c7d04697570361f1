// Package common defines shared constants and sentinel errors used across
// the showcase application layers. Callers should use errors.Is to match
// these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Validation errors: the action is rejected and no state is mutated.
	// The specific sentinels wrap ErrValidation, so errors.Is matches them
	// against both the specific value and ErrValidation.
	ErrValidation        = errors.New("validation error")
	ErrEmptyCredentials  = fmt.Errorf("%w: username and password are required", ErrValidation)
	ErrUsernameTaken     = fmt.Errorf("%w: username taken", ErrValidation)
	ErrInvalidTransition = fmt.Errorf("%w: invalid wizard transition", ErrValidation)
	ErrUnknownChoice     = fmt.Errorf("%w: unknown choice", ErrValidation)

	// Auth errors: reported to the caller, no session change.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountBanned      = errors.New("account banned")
)
