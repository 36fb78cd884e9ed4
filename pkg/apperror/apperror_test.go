package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_HTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindConflict, http.StatusConflict},
		{KindAuth, http.StatusUnauthorized},
		{KindNotFound, http.StatusNotFound},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.HTTPStatus())
		})
	}
}

func TestError_IsMatchesWrappedSentinel(t *testing.T) {
	sentinel := Conflict("slot unavailable")
	wrapped := fmt.Errorf("booking: %w", Wrap(sentinel, errors.New("duplicate key")))

	assert.ErrorIs(t, wrapped, sentinel)
	assert.NotErrorIs(t, wrapped, Conflict("email already exists"))
	assert.Equal(t, KindConflict, KindOf(wrapped))
}

func TestKindOf_PlainErrorIsInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestPublicMessage_HidesInternalCause(t *testing.T) {
	err := Internal(errors.New("pq: connection refused"))

	assert.Equal(t, "Internal server error", PublicMessage(err))
	assert.Equal(t, "Internal server error", PublicMessage(errors.New("raw")))
	assert.Equal(t, "invalid credentials", PublicMessage(Auth("invalid credentials")))
	assert.Contains(t, err.Error(), "connection refused")
}
