package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	appErr := NotFound("Merchant not found")
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Merchant not found", appErr.Message)
	assert.ErrorIs(t, appErr, ErrNotFound)
	assert.Equal(t, ErrNotFound.Error(), appErr.Error())

	bare := &AppError{Status: http.StatusTeapot, Message: "just a message"}
	assert.Equal(t, "just a message", bare.Error())
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, BadRequest("x").Status)
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("x").Status)
	assert.Equal(t, http.StatusForbidden, Forbidden("x").Status)
	assert.Equal(t, http.StatusConflict, Conflict("x").Status)
	assert.Equal(t, http.StatusInternalServerError, InternalError(errors.New("boom")).Status)
}

func TestFromDomain(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrBadRequest, http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrTokenExpired, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrMerchantNotActive, http.StatusForbidden},
		{ErrConflict, http.StatusConflict},
		{ErrAlreadyExists, http.StatusConflict},
		{ErrRewardClaimed, http.StatusConflict},
		{ErrStaleCard, http.StatusConflict},
		{ErrHasHistory, http.StatusConflict},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, FromDomain(tt.err, "").Status, "error %v", tt.err)
	}
}

func TestFromDomain_Message(t *testing.T) {
	appErr := FromDomain(ErrNotFound, "Customer not found")
	assert.Equal(t, "Customer not found", appErr.Message)

	appErr = FromDomain(ErrNotFound, "")
	assert.Equal(t, ErrNotFound.Error(), appErr.Message)
}

func TestFromDomain_Wrapped(t *testing.T) {
	wrapped := NewError("claim failed", ErrRewardClaimed)
	appErr := FromDomain(wrapped, "")
	assert.Equal(t, http.StatusConflict, appErr.Status)
}
