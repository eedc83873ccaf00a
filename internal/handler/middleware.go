package handler

import (
	stderrors "errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"canteen/internal/auth"
	"canteen/internal/errors"
	"canteen/internal/service"
	"canteen/internal/session"
)

// LoadUser resolves the claims left by the auth cookie middleware to a user.
// Revoked or orphaned tokens drop the cookie and continue anonymously.
func LoadUser(authService service.AuthService, secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ClaimsContextKey).(*auth.Claims)
			if !ok {
				return next(c)
			}
			user, err := authService.Authenticate(c.Request().Context(), claims)
			switch {
			case err == nil:
				c.Set(userContextKey, user)
			case stderrors.Is(err, errors.ErrUnauthenticated):
				c.SetCookie(authCookie("", -1, secure))
			default:
				c.Logger().Errorf("load user %d: %v", claims.UserID, err)
			}
			return next(c)
		}
	}
}

// RequireLogin sends anonymous visitors to the home page, remembering where
// they were headed.
func RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) == nil {
			target := "/?next=" + url.QueryEscape(c.Request().URL.Path)
			return flashRedirect(c, session.FlashInfo, "Please log in to access this page.", target)
		}
		return next(c)
	}
}

// RequireAdmin turns away anyone who is not an administrator.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin {
			return flashRedirect(c, session.FlashDanger, msgAccessDenied, "/")
		}
		return next(c)
	}
}

func authCookie(value string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     AuthCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
