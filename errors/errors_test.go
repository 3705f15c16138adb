package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ValidationError, "invalid input", "field required")
	assert.Equal(t, ValidationError, err.Type)
	assert.Equal(t, "invalid input", err.Message)
	assert.Equal(t, "field required", err.Detail)
	assert.Equal(t, 400, err.HTTPStatus)
}

func TestWrap(t *testing.T) {
	originalErr := fmt.Errorf("original error")
	wrappedErr := Wrap(originalErr, DatabaseError, "database operation failed")

	assert.Equal(t, DatabaseError, wrappedErr.Type)
	assert.Equal(t, "database operation failed", wrappedErr.Message)
	assert.Equal(t, originalErr.Error(), wrappedErr.Detail)
	assert.Equal(t, 500, wrappedErr.HTTPStatus)
	assert.True(t, stderrors.Is(wrappedErr, originalErr))

	assert.Nil(t, Wrap(nil, DatabaseError, "ignored"))
}

func TestValidationFailed(t *testing.T) {
	err := ValidationFailed(MsgInvalidEmail, "email")
	assert.Equal(t, ValidationError, err.Type)
	assert.Equal(t, "Invalid email address", err.Message)
	assert.Equal(t, 400, err.GetHTTPStatus())
}

func TestTransportFailed(t *testing.T) {
	t.Run("keeps transport message", func(t *testing.T) {
		cause := fmt.Errorf("resend: 422 invalid from address")
		err := TransportFailed(cause, "notification")
		assert.Equal(t, TransportError, err.Type)
		assert.Equal(t, cause.Error(), err.Message)
		assert.Equal(t, "notification", err.Detail)
		assert.Equal(t, 500, err.GetHTTPStatus())

		var appErr *AppError
		assert.True(t, stderrors.As(fmt.Errorf("outer: %w", err), &appErr))
		assert.True(t, stderrors.Is(err, cause))
	})

	t.Run("falls back to generic message", func(t *testing.T) {
		err := TransportFailed(nil, "confirmation")
		assert.Equal(t, MsgSendFailed, err.Message)
	})
}

func TestRateLimitExceeded(t *testing.T) {
	err := RateLimitExceeded("slow down", 42)
	assert.Equal(t, 429, err.GetHTTPStatus())
	assert.Equal(t, 42, err.RetryAfter)
}

func TestGetHTTPStatusDefaults(t *testing.T) {
	assert.Equal(t, 400, (&AppError{Type: ValidationError}).GetHTTPStatus())
	assert.Equal(t, 500, (&AppError{Type: ServerError}).GetHTTPStatus())
	assert.Equal(t, 418, (&AppError{Type: ServerError, HTTPStatus: 418}).GetHTTPStatus())
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "SERVER_ERROR: boom", InternalServerError("boom").Error())
	assert.Equal(t, "VALIDATION_ERROR: bad (email)", ValidationFailed("bad", "email").Error())
}
