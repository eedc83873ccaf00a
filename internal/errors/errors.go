package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMenuItemNotFound is returned when a menu item is not found.
	ErrMenuItemNotFound = errors.New("menu item not found")
	// ErrQueueEntryNotFound is returned when a queue entry is not found.
	ErrQueueEntryNotFound = errors.New("queue entry not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidQuantity is returned when a cart quantity is not a positive integer.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInvalidPrice is returned when a price is not a positive number.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrEmptyName is returned when a menu item name is blank.
	ErrEmptyName = errors.New("name is required")
	// ErrPaymentDeclined is returned when the payment gateway rejects a checkout.
	ErrPaymentDeclined = errors.New("payment declined")
	// ErrForbidden is returned when a non-admin attempts an admin operation.
	ErrForbidden = errors.New("admin privileges required")
	// ErrUnauthenticated is returned when an operation needs a logged-in user.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserAlreadyExists is returned when the username or email is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrEmailTaken is returned when a profile update uses another user's email.
	ErrEmailTaken = errors.New("email already in use")
	// ErrPasswordTooShort is returned when a new password is under the minimum length.
	ErrPasswordTooShort = errors.New("password too short")
	// ErrPaymentMethodIncomplete is returned when card details are missing.
	ErrPaymentMethodIncomplete = errors.New("card number and expiry are required")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors are
// matched with errors.Is.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMenuItemNotFound):
		return NewHTTPError(http.StatusNotFound, ErrMenuItemNotFound.Error(), "MENU_ITEM_NOT_FOUND")
	case errors.Is(err, ErrQueueEntryNotFound):
		return NewHTTPError(http.StatusNotFound, ErrQueueEntryNotFound.Error(), "QUEUE_ENTRY_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidQuantity):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidQuantity.Error(), "INVALID_QUANTITY")
	case errors.Is(err, ErrInvalidPrice):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidPrice.Error(), "INVALID_PRICE")
	case errors.Is(err, ErrEmptyName):
		return NewHTTPError(http.StatusBadRequest, ErrEmptyName.Error(), "EMPTY_NAME")
	case errors.Is(err, ErrPaymentDeclined):
		return NewHTTPError(http.StatusPaymentRequired, ErrPaymentDeclined.Error(), "PAYMENT_DECLINED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, ErrForbidden.Error(), "FORBIDDEN")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthenticated.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, ErrUserAlreadyExists.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, ErrEmailTaken.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrPasswordTooShort):
		return NewHTTPError(http.StatusBadRequest, ErrPasswordTooShort.Error(), "PASSWORD_TOO_SHORT")
	case errors.Is(err, ErrPaymentMethodIncomplete):
		return NewHTTPError(http.StatusBadRequest, ErrPaymentMethodIncomplete.Error(), "PAYMENT_METHOD_INCOMPLETE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

// IsValidation reports whether err is a user-correctable input error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidPrice) ||
		errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrPasswordTooShort) ||
		errors.Is(err, ErrPaymentMethodIncomplete)
}
