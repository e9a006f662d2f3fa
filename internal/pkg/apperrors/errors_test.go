package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := New(KindValidation, "bad input")
	assert.Equal(t, KindValidation, KindOf(err))

	wrapped := fmt.Errorf("handler: %w", err)
	assert.Equal(t, KindValidation, KindOf(wrapped))

	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(0), KindOf(nil))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindProvider, "route provider request failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "route provider request failed")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", New(KindValidation, "x"), http.StatusUnprocessableEntity},
		{"model unavailable", New(KindModelUnavailable, "x"), http.StatusServiceUnavailable},
		{"configuration", New(KindConfiguration, "x"), http.StatusServiceUnavailable},
		{"not found", New(KindNotFound, "x"), http.StatusNotFound},
		{"provider", New(KindProvider, "x"), http.StatusBadGateway},
		{"unknown", errors.New("x"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}
