package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrInvalidCredentials.WrapMessage("login failed")

	assert.True(t, stderrors.Is(err, ErrInvalidCredentials))
	assert.False(t, stderrors.Is(err, ErrUserNotFound))

	var appErr AppError
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
}

func TestBaseError_WithDetailsMatchesSentinel(t *testing.T) {
	err := ErrValidationFailed.WithDetails("username is required")

	assert.True(t, stderrors.Is(err, ErrValidationFailed))
	assert.Equal(t, "username is required", err.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestStoreError(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := pkgerrors.Wrap(NewStoreError(cause, "failed to find user"), "login")

	var appErr AppError
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "STORE_ERROR", appErr.ErrorCode())
	assert.Equal(t, "connection refused", appErr.Details())
	assert.True(t, stderrors.Is(err, cause))
	assert.Contains(t, err.Error(), "failed to find user: connection refused")
}
