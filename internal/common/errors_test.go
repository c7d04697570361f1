package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationSentinels_MatchErrValidation(t *testing.T) {
	for _, err := range []error{
		ErrEmptyCredentials,
		ErrUsernameTaken,
		ErrInvalidTransition,
		ErrUnknownChoice,
	} {
		assert.ErrorIs(t, err, ErrValidation, err.Error())
	}
}

func TestWrappedSentinel_MatchesBothLevels(t *testing.T) {
	err := fmt.Errorf("%w: confirm requires a collect type", ErrInvalidTransition)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthSentinels_AreNotValidationErrors(t *testing.T) {
	assert.False(t, errors.Is(ErrInvalidCredentials, ErrValidation))
	assert.False(t, errors.Is(ErrAccountBanned, ErrValidation))
}
