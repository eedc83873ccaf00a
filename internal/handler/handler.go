package handler

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"canteen/internal/errors"
	"canteen/internal/model"
	"canteen/internal/service"
	"canteen/internal/session"
	"canteen/internal/view"
)

const (
	// ClaimsContextKey is where the auth cookie middleware stores verified claims.
	ClaimsContextKey = "auth_claims"
	userContextKey   = "current_user"
)

// CurrentUser returns the logged-in user, or nil for anonymous requests.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}

// Layout renders pages with the shared navbar state.
type Layout struct {
	carts service.CartService
}

// NewLayout creates a page renderer backed by the cart service.
func NewLayout(carts service.CartService) *Layout {
	return &Layout{carts: carts}
}

// Render draws a full page. Pending flashes are consumed.
func (l *Layout) Render(c echo.Context, name string, data interface{}) error {
	sess := session.From(c)
	return c.Render(http.StatusOK, name, view.Page{
		User:      CurrentUser(c),
		Flashes:   sess.PopFlashes(),
		CartCount: l.carts.Count(sess),
		Next:      c.QueryParam("next"),
		Data:      data,
	})
}

func flashRedirect(c echo.Context, category, message, to string) error {
	session.From(c).AddFlash(category, message)
	return c.Redirect(http.StatusSeeOther, to)
}

// httpError converts a domain error into an echo error carrying ErrorResponse.
func httpError(err error) error {
	mapped := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse()).SetInternal(err)
}

// handleAdminError turns an admin-operation failure into the page-level
// response: denial and validation problems redirect with a flash, missing
// ids become 404 and everything else 500.
func handleAdminError(c echo.Context, err error, back string) error {
	switch {
	case stderrors.Is(err, errors.ErrForbidden):
		return flashRedirect(c, session.FlashDanger, msgAccessDenied, "/")
	case errors.IsValidation(err):
		return flashRedirect(c, session.FlashDanger, validationMessage(err), back)
	default:
		return httpError(err)
	}
}

func validationMessage(err error) string {
	switch {
	case stderrors.Is(err, errors.ErrInvalidQuantity):
		return "Invalid quantity."
	case stderrors.Is(err, errors.ErrInvalidPrice):
		return "Invalid price format."
	case stderrors.Is(err, errors.ErrEmptyName):
		return "Name and price must be provided."
	case stderrors.Is(err, errors.ErrPasswordTooShort):
		return "The new password must be at least 6 characters long."
	case stderrors.Is(err, errors.ErrPaymentMethodIncomplete):
		return "Please fill in the card details."
	default:
		return err.Error()
	}
}

const msgAccessDenied = "You do not have administrator rights to access this page."

// pathID parses a numeric route parameter. Anything else is a 404, like an
// unmatched route.
func pathID(c echo.Context, name string, notFound error) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		return 0, httpError(notFound)
	}
	return uint(id), nil
}
