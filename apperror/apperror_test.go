package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", Validation("Prayer must be at least 10 characters"), http.StatusBadRequest},
		{"moderation", Moderation("Please use an appropriate name."), http.StatusBadRequest},
		{"conflict", Conflict("Prayer already bookmarked"), http.StatusBadRequest},
		{"missing session", MissingSession(), http.StatusBadRequest},
		{"not found", NotFound("Prayer not found"), http.StatusNotFound},
		{"internal", Internal("Failed to fetch prayers", errors.New("boom")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("handler: %w", NotFound("Question not found")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Status(tt.err))
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Session ID required", Message(MissingSession(), "fallback"))
	assert.Equal(t, "Failed to fetch prayers", Message(Internal("Failed to fetch prayers", errors.New("pq: down")), "fallback"))
	assert.Equal(t, "fallback", Message(errors.New("pq: down"), "fallback"))
}

func TestUnwrap(t *testing.T) {
	assert.True(t, errors.Is(Validation("Comment cannot be empty"), ErrValidation))
	assert.True(t, errors.Is(Moderation("Please use an appropriate name."), ErrModeration))
	assert.True(t, errors.Is(Conflict("Already lifted up this prayer"), ErrConflict))
	assert.True(t, errors.Is(MissingSession(), ErrMissingSession))
	assert.True(t, errors.Is(NotFound("Prayer not found"), ErrNotFound))
	assert.False(t, errors.Is(NotFound("Prayer not found"), ErrConflict))

	cause := errors.New("pq: down")
	assert.True(t, errors.Is(Internal("Failed", cause), cause))
}
