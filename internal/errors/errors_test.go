package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"menu item not found", ErrMenuItemNotFound, http.StatusNotFound, "MENU_ITEM_NOT_FOUND"},
		{"wrapped queue entry not found", fmt.Errorf("mark done: %w", ErrQueueEntryNotFound), http.StatusNotFound, "QUEUE_ENTRY_NOT_FOUND"},
		{"invalid price", ErrInvalidPrice, http.StatusBadRequest, "INVALID_PRICE"},
		{"forbidden", ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"duplicate user", ErrUserAlreadyExists, http.StatusConflict, "USER_ALREADY_EXISTS"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.ToErrorResponse().Code)
		})
	}
}

func TestMapErrorToHTTP_HidesInternalMessage(t *testing.T) {
	httpErr := MapErrorToHTTP(errors.New("dial tcp 10.0.0.1:3306: connection refused"))
	assert.Equal(t, "internal server error", httpErr.Error())
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(ErrInvalidQuantity))
	assert.True(t, IsValidation(fmt.Errorf("add: %w", ErrEmptyName)))
	assert.False(t, IsValidation(ErrMenuItemNotFound))
	assert.False(t, IsValidation(ErrForbidden))
}
