package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/salesportal-qa/sales-portal-tests/internal/api"
	"github.com/salesportal-qa/sales-portal-tests/internal/models"
)

// LoginService authenticates and hands out bearer tokens.
type LoginService struct {
	loginAPI *api.LoginAPI
}

func NewLoginService(loginAPI *api.LoginAPI) *LoginService {
	return &LoginService{loginAPI: loginAPI}
}

// Token logs in with the given credentials and returns the bearer token from
// the response header. Fails the test on any login problem.
func (s *LoginService) Token(t *testing.T, creds models.Credentials) string {
	t.Helper()

	resp, err := s.loginAPI.Login(creds)
	require.NoError(t, err, "login request failed")
	require.Equal(t, http.StatusOK, resp.Status, "login rejected: %s", resp.Body)

	token := resp.Header("authorization")
	require.NotEmpty(t, token, "login response has no authorization header")
	return token
}
