//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"paseos-api/internal/domain/user"
	"paseos-api/internal/pkg/clock"
	"paseos-api/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	clk := clock.NewFixedClock(time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC))
	svc := jwt.NewServiceWithClock("secret", 15*time.Minute, 24*time.Hour, clk)
	userID := uuid.New()

	access, err := svc.GenerateAccessToken(userID, user.RoleWalker)
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(userID, user.RoleWalker)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "walker", claims.Role)
	assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	assert.Equal(t, clk.Now().Add(15*time.Minute).Unix(), claims.ExpiresAt.Unix())
	assert.Equal(t, jwt.Issuer, claims.Issuer)
	assert.Equal(t, userID.String(), claims.Subject)

	claims, err = svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
}

func TestService_ValidateToken(t *testing.T) {
	clk := clock.NewFixedClock(time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC))
	svc := jwt.NewServiceWithClock("secret", 15*time.Minute, 24*time.Hour, clk)

	t.Run("expired", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(uuid.New(), user.RoleOwner)
		require.NoError(t, err)

		clk.Advance(16 * time.Minute)
		defer clk.Advance(-16 * time.Minute)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("signed with another secret", func(t *testing.T) {
		other := jwt.NewServiceWithClock("other-secret", 15*time.Minute, 24*time.Hour, clk)
		token, err := other.GenerateAccessToken(uuid.New(), user.RoleOwner)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	forge := func(t *testing.T, method gojwt.SigningMethod, key any, mutate func(*jwt.Claims)) string {
		t.Helper()
		id := uuid.New()
		claims := jwt.Claims{
			UserID:    id,
			Role:      "owner",
			TokenType: jwt.TokenTypeAccess,
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    jwt.Issuer,
				Subject:   id.String(),
				ExpiresAt: gojwt.NewNumericDate(clk.Now().Add(time.Minute)),
			},
		}
		mutate(&claims)
		token, err := gojwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return token
	}

	forged := []struct {
		name   string
		method gojwt.SigningMethod
		key    any
		mutate func(*jwt.Claims)
	}{
		{name: "foreign issuer", method: gojwt.SigningMethodHS256, key: []byte("secret"), mutate: func(c *jwt.Claims) { c.Issuer = "someone-else" }},
		{name: "no expiry", method: gojwt.SigningMethodHS256, key: []byte("secret"), mutate: func(c *jwt.Claims) { c.ExpiresAt = nil }},
		{name: "subject differs from user id", method: gojwt.SigningMethodHS256, key: []byte("secret"), mutate: func(c *jwt.Claims) { c.Subject = uuid.NewString() }},
		{name: "unknown token type", method: gojwt.SigningMethodHS256, key: []byte("secret"), mutate: func(c *jwt.Claims) { c.TokenType = "session" }},
		{name: "other hmac size", method: gojwt.SigningMethodHS512, key: []byte("secret"), mutate: func(*jwt.Claims) {}},
		{name: "unsigned", method: gojwt.SigningMethodNone, key: gojwt.UnsafeAllowNoneSignatureType, mutate: func(*jwt.Claims) {}},
	}
	for _, tc := range forged {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ValidateToken(forge(t, tc.method, tc.key, tc.mutate))
			assert.ErrorIs(t, err, jwt.ErrInvalidToken)
		})
	}

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("a.b.c")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
