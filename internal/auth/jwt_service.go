package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// AuthTokenExpiry is how long a login stays valid ("remember me").
const AuthTokenExpiry = 7 * 24 * time.Hour

// Claims represents JWT claims carried by the auth cookie.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// GenerateAuthToken generates a signed auth token for the user.
// The token ID is returned separately so it can be revoked on logout.
func (s *JWTService) GenerateAuthToken(userID uint, username string) (tokenID string, token string, err error) {
	tokenID = generateTokenID()
	now := s.now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(now.Add(AuthTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = tokenObj.SignedString(s.secret)
	return tokenID, token, err
}

// ValidateToken validates a JWT token and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ID == "" {
		return nil, errors.New("token ID not found")
	}

	return claims, nil
}

// RemainingTTL returns how long the token behind claims stays valid.
func (s *JWTService) RemainingTTL(claims *Claims) time.Duration {
	if claims.ExpiresAt == nil {
		return AuthTokenExpiry
	}
	ttl := claims.ExpiresAt.Time.Sub(s.now())
	if ttl < 0 {
		return 0
	}
	return ttl
}

// generateTokenID generates a unique token ID.
func generateTokenID() string {
	return uuid.New().String()
}
