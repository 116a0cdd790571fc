//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"paseos-api/internal/domain/user"
	"paseos-api/internal/pkg/clock"
	"paseos-api/internal/pkg/config"
	"paseos-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T, clk clock.Clock) *jwt.Service {
	t.Helper()
	access, refresh, err := h.cfg.Durations()
	require.NoError(t, err)
	return jwt.NewServiceWithClock(h.cfg.Secret, access, refresh, clk)
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(t, clock.NewRealClock()).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs an access token issued far enough in the past to be expired now.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	issued := clock.NewFixedClock(time.Now().Add(-24 * time.Hour))
	token, err := h.service(t, issued).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateRefreshToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(t, clock.NewRealClock()).GenerateRefreshToken(userID, role)
	require.NoError(t, err)
	return token
}
