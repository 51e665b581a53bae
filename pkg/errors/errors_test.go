package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorIncludesCause(t *testing.T) {
	err := NewLocationUnavailableError("position lookup failed", fmt.Errorf("timeout expired"))

	assert.Equal(t, "LOCATION_UNAVAILABLE: position lookup failed: timeout expired", err.Error())
	assert.EqualError(t, err.Unwrap(), "timeout expired")
}

func TestTypeOf_WrappedErrors(t *testing.T) {
	denied := NewPermissionDeniedError("enable location services")
	wrapped := fmt.Errorf("acquire: %w", denied)

	assert.True(t, IsPermissionDenied(wrapped))
	assert.False(t, IsLocationUnavailable(wrapped))
	assert.Equal(t, ErrorTypePermissionDenied, TypeOf(wrapped))
	assert.Equal(t, ErrorType(""), TypeOf(fmt.Errorf("plain")))
	assert.True(t, IsNotFound(NewNotFoundError("disease not found")))
}
