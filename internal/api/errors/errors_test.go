package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected int
	}{
		{
			name:     "validation maps to 400",
			err:      NewValidationError("bad extension", nil),
			expected: http.StatusBadRequest,
		},
		{
			name:     "transcription failure maps to 500",
			err:      NewTranscriptionError("engine fault"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "structuring unavailable maps to 503",
			err:      NewStructuringUnavailableError("connection refused"),
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "structuring service failure maps to 500",
			err:      NewStructuringServiceError("model not found"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "internal maps to 500",
			err:      NewInternalError("disk full"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.HTTPStatus())
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("preserves existing APIError", func(t *testing.T) {
		orig := NewStructuringUnavailableError("down")
		wrapped := Wrap(orig)
		assert.Same(t, orig, wrapped)
		assert.Equal(t, http.StatusServiceUnavailable, wrapped.HTTPStatus())
	})

	t.Run("converts plain error to internal", func(t *testing.T) {
		wrapped := Wrap(fmt.Errorf("something broke"))
		assert.Equal(t, KindInternal, wrapped.Kind)
		assert.Equal(t, "something broke", wrapped.Message)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil))
	})
}
