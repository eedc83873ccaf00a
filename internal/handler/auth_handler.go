package handler

import (
	stderrors "errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"canteen/internal/auth"
	"canteen/internal/errors"
	"canteen/internal/service"
	"canteen/internal/session"
)

// AuthCookieName holds the signed login token.
const AuthCookieName = "canteen_auth"

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	authService  service.AuthService
	cookieSecure bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{authService: authService, cookieSecure: cookieSecure}
}

// RegisterForm represents a registration submission.
type RegisterForm struct {
	Username string `form:"username" validate:"required,max=80"`
	Email    string `form:"email" validate:"required,email,max=120"`
	Password string `form:"password" validate:"required"`
}

// LoginForm represents a login submission.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// HandleRegister godoc
// @Summary Register a new customer account and log in
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 303 "Redirect to /"
// @Failure 500 {object} errors.ErrorResponse
// @Router /handle_register [post]
func (h *AuthHandler) HandleRegister(c echo.Context) error {
	if CurrentUser(c) != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	var form RegisterForm
	if err := c.Bind(&form); err != nil {
		return flashRedirect(c, session.FlashDanger, "Invalid registration form.", "/")
	}
	if err := c.Validate(&form); err != nil {
		return flashRedirect(c, session.FlashDanger, "Please provide a username, a valid email and a password.", "/")
	}

	token, _, err := h.authService.Register(c.Request().Context(), form.Username, form.Email, form.Password)
	if err != nil {
		if stderrors.Is(err, errors.ErrUserAlreadyExists) {
			return flashRedirect(c, session.FlashDanger, "A user with this username or email already exists.", "/")
		}
		return httpError(err)
	}

	c.SetCookie(authCookie(token, int(auth.AuthTokenExpiry.Seconds()), h.cookieSecure))
	return flashRedirect(c, session.FlashSuccess, "Registration successful! You are now logged in.", "/")
}

// HandleLogin godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param next query string false "Local path to return to"
// @Success 303 "Redirect to next or /profile"
// @Failure 500 {object} errors.ErrorResponse
// @Router /handle_login [post]
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	if CurrentUser(c) != nil {
		return c.Redirect(http.StatusSeeOther, "/profile")
	}

	var form LoginForm
	if err := c.Bind(&form); err != nil || c.Validate(&form) != nil {
		return flashRedirect(c, session.FlashDanger, "Invalid username or password.", "/")
	}

	token, _, err := h.authService.Login(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		if stderrors.Is(err, errors.ErrInvalidCredentials) {
			return flashRedirect(c, session.FlashDanger, "Invalid username or password.", "/")
		}
		return httpError(err)
	}

	c.SetCookie(authCookie(token, int(auth.AuthTokenExpiry.Seconds()), h.cookieSecure))
	target := "/profile"
	if next := c.QueryParam("next"); isLocalPath(next) {
		target = next
	}
	return flashRedirect(c, session.FlashSuccess, "You have logged in successfully!", target)
}

// Logout godoc
// @Summary Log out and revoke the login token
// @Tags auth
// @Success 303 "Redirect to /"
// @Router /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(AuthCookieName); err == nil {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			c.Logger().Errorf("revoke auth token: %v", err)
		}
	}
	c.SetCookie(authCookie("", -1, h.cookieSecure))
	return flashRedirect(c, session.FlashSuccess, "You have logged out.", "/")
}

// isLocalPath accepts only same-site absolute paths, so a crafted next
// parameter cannot send the user to another host.
func isLocalPath(next string) bool {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return false
	}
	u, err := url.Parse(next)
	return err == nil && u.Scheme == "" && u.Host == ""
}
