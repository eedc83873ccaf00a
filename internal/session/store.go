package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	// CookieName is the name of the session cookie.
	CookieName = "canteen_session"
	contextKey = "session"
	maxAge     = 30 * 24 * time.Hour
)

type claims struct {
	Cart    Cart    `json:"cart,omitempty"`
	Flashes []Flash `json:"flashes,omitempty"`
	jwt.RegisteredClaims
}

// Store encodes sessions into HS256-signed cookies.
type Store struct {
	secret []byte
	secure bool
}

// NewStore creates a cookie store signing with secret.
func NewStore(secret string, secure bool) *Store {
	return &Store{secret: []byte(secret), secure: secure}
}

// Load decodes the session from the request. A missing, expired or tampered
// cookie yields an empty session.
func (st *Store) Load(r *http.Request) *Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return New()
	}
	s, err := st.decode(cookie.Value)
	if err != nil {
		return New()
	}
	return s
}

// Save writes the session cookie when the session changed. An emptied
// session deletes the cookie.
func (st *Store) Save(w http.ResponseWriter, s *Session) error {
	if !s.Dirty() {
		return nil
	}
	if s.empty() {
		http.SetCookie(w, st.cookie("", -1))
		return nil
	}
	value, err := st.encode(s)
	if err != nil {
		return err
	}
	http.SetCookie(w, st.cookie(value, int(maxAge.Seconds())))
	return nil
}

func (st *Store) cookie(value string, age int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   age,
		HttpOnly: true,
		Secure:   st.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (st *Store) encode(s *Session) (string, error) {
	now := time.Now()
	c := &claims{
		Cart:    s.cart,
		Flashes: s.flashes,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(maxAge)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(st.secret)
}

func (st *Store) decode(value string) (*Session, error) {
	token, err := jwt.ParseWithClaims(value, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return st.secret, nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session")
	}
	cart := make(Cart, len(c.Cart))
	for k, q := range c.Cart {
		if q > 0 {
			cart[k] = q
		}
	}
	return &Session{cart: cart, flashes: c.Flashes}, nil
}

// Middleware loads the session for every request, exposes it through From
// and writes it back just before the response headers go out.
func (st *Store) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := st.Load(c.Request())
			c.Set(contextKey, s)
			res := c.Response()
			res.Before(func() {
				if err := st.Save(res.Writer, s); err != nil {
					c.Logger().Errorf("save session: %v", err)
				}
			})
			return next(c)
		}
	}
}

// From returns the session attached by Middleware, or a fresh detached one.
func From(c echo.Context) *Session {
	if s, ok := c.Get(contextKey).(*Session); ok {
		return s
	}
	s := New()
	c.Set(contextKey, s)
	return s
}
