//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"lab-reservation/internal/domain/user"
	"lab-reservation/internal/handler/dto/request"
	"lab-reservation/internal/handler/dto/response"
	"lab-reservation/tests/common/authtest"
	"lab-reservation/tests/common/dbtest"
	"lab-reservation/tests/common/httptest"
	"lab-reservation/tests/e2e"

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
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", "Lab Admin", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "student@example.com", "Student", string(user.RoleStudent))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", "Former Staff", string(user.RoleTeacher))

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
		{name: "valid credentials", email: "admin@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "admin@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive user", email: "inactive@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusForbidden},
		{name: "empty email", email: "", password: dbtest.TestPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "admin@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var res response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotEmpty(t, res.AccessToken)
				require.NotEmpty(t, res.RefreshToken)
				require.Equal(t, []string{"admin"}, res.User.Roles)
				require.NotNil(t, httptest.ExtractCookie(w, "access_token"))

				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login not updated")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("valid refresh token issues a new pair", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "student@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)
		var login response.LoginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &login))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: login.RefreshToken}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var res response.RefreshResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.NotEmpty(t, res.AccessToken)
		require.NotEqual(t, login.AccessToken, res.AccessToken)
	})

	s.Run("access token is not accepted as refresh token", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "student@example.com", dbtest.TestPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: token}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("garbage token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "invalid-refresh-token"}, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("empty token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: ""}, "")
		require.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("valid token", func() {
		token := authtest.LoginUser(s.T(), s.Router, "admin@example.com", dbtest.TestPassword)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(s.T(), http.StatusNoContent, w.Code)
	})

	s.Run("invalid token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "invalid-token")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("returns roles without password data", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", "Lab Manager", string(user.RoleManager))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		require.Contains(t, body, "manager@example.com")
		require.Contains(t, body, "manager")
		require.NotContains(t, body, "password")
	})

	s.Run("expired token is rejected", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", "Expiry", string(user.RoleAdmin))
		expired := s.jwt.CreateExpiredToken(t, id, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("no token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}
