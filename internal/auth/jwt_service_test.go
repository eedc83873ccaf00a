package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	tokenID, token, err := svc.GenerateAuthToken(42, "ivan")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ivan", claims.Username)
	assert.Equal(t, tokenID, claims.ID)
	assert.InDelta(t, AuthTokenExpiry.Seconds(), svc.RemainingTTL(claims).Seconds(), 5)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	_, token, err := NewJWTService("one").GenerateAuthToken(1, "admin")
	require.NoError(t, err)

	_, err = NewJWTService("two").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret")
	svc.now = func() time.Time { return time.Now().Add(-2 * AuthTokenExpiry) }
	_, token, err := svc.GenerateAuthToken(1, "admin")
	require.NoError(t, err)

	_, err = NewJWTService("test-secret").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	claims := &Claims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{ID: "x"}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTService("test-secret").ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenStore_NilCacheNeverRevokes(t *testing.T) {
	store := NewTokenStore(nil)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "abc", time.Hour))
	revoked, err := store.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, revoked)
}
