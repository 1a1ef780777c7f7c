package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/club_billing_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: bad month", apperrors.ErrValidation), http.StatusBadRequest},
		{"not found", apperrors.ErrNotFound, http.StatusNotFound},
		{"duplicate", apperrors.ErrDuplicate, http.StatusConflict},
		{"open proforma exists", apperrors.ErrOpenProformaExists, http.StatusConflict},
		{"reference code taken", fmt.Errorf("entry: %w", apperrors.ErrReferenceCodeTaken), http.StatusInternalServerError},
		{"conflict", fmt.Errorf("proforma 3: %w", apperrors.ErrConflict), http.StatusConflict},
		{"invariant", apperrors.ErrInvariant, http.StatusInternalServerError},
		{"app error", apperrors.NewAppError(500, "failed", errors.New("boom")), http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}

func TestSlugPattern(t *testing.T) {
	assert.True(t, slugPattern.MatchString("riverside-fc"))
	assert.True(t, slugPattern.MatchString("Dipoli2"))
	assert.False(t, slugPattern.MatchString("-leading"))
	assert.False(t, slugPattern.MatchString("two--dashes"))
	assert.False(t, slugPattern.MatchString("with space"))
}
