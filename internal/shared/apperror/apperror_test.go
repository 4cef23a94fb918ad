package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{BadRequest, http.StatusBadRequest},
		{Unauthorized, http.StatusUnauthorized},
		{Forbidden, http.StatusForbidden},
		{NotFound, http.StatusNotFound},
		{Conflict, http.StatusConflict},
		{Internal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, New(tt.kind, "x").StatusCode())
	}
}

func TestFrom(t *testing.T) {
	base := New(NotFound, "session not found")

	appErr, ok := From(base)
	assert.True(t, ok)
	assert.Equal(t, NotFound, appErr.Kind)

	wrapped := fmt.Errorf("loading session: %w", base)
	appErr, ok = From(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "session not found", appErr.Message)

	_, ok = From(errors.New("plain"))
	assert.False(t, ok)
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(Internal, "database unavailable", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "database unavailable")
	assert.Contains(t, err.Error(), "connection refused")
}
