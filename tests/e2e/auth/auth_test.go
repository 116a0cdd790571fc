//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"paseos-api/internal/domain/user"
	"paseos-api/internal/handler/dto/request"
	resdto "paseos-api/internal/handler/dto/response"
	"paseos-api/tests/common/authtest"
	"paseos-api/tests/common/dbtest"
	"paseos-api/tests/common/httptest"
	"paseos-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "owner@example.com", user.RoleOwner.String(), "")
	dbtest.CreateTestUser(s.T(), s.DB, "walker@example.com", user.RoleWalker.String(), user.WalkerStatusQuizPending.String())
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", user.RoleOwner.String(), "")

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "owner logs in", email: "owner@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "walker logs in", email: "walker@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "owner@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive user", email: "inactive@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusForbidden},
		{name: "empty email", email: "", password: dbtest.TestPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "owner@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var res resdto.LoginResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
			require.NotEmpty(t, res.AccessToken)
			require.Equal(t, tt.email, res.User.Email)
			require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))

			var lastLogin any
			err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
			require.NoError(t, err)
			require.NotNil(t, lastLogin, "last_login not updated")
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("refresh token from body", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "owner@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)
		refresh := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(t, refresh)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: refresh.Value}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.NotEmpty(t, res["accessToken"])
	})

	s.Run("access token is not accepted as refresh token", func() {
		t := s.T()
		access := authtest.LoginUser(t, s.Router, "owner@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: access}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("garbage token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "invalid-refresh-token"}, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("missing token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, map[string]string{}, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("logout with a valid token", func() {
		token := authtest.LoginUser(s.T(), s.Router, "owner@example.com", dbtest.TestPassword)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(s.T(), http.StatusNoContent, w.Code)
	})

	s.Run("logout without a token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("walker sees own profile with walker status", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "walker@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		var res resdto.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "walker@example.com", res.Email)
		require.Equal(t, "walker", res.Role)
		require.NotNil(t, res.WalkerStatus)
		require.Equal(t, "quiz_pending", *res.WalkerStatus)
		require.NotContains(t, w.Body.String(), "password")
	})

	s.Run("invalid token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "invalid-token")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("expired token", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", user.RoleOwner.String(), "")
		expired := s.jwtHelper.CreateExpiredToken(t, id, user.RoleOwner)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("refresh token cannot open protected routes", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "refresh-only@example.com", user.RoleOwner.String(), "")
		refresh := s.jwtHelper.GenerateRefreshToken(t, id, user.RoleOwner)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, refresh)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("freshly minted access token works without login", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "minted@example.com", user.RoleOwner.String(), "")
		token := s.jwtHelper.GenerateToken(t, id, user.RoleOwner)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		var res resdto.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "minted@example.com", res.Email)
		require.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}
