// Package api holds thin per-endpoint wrappers over the HTTP client. Each
// method mirrors one backend route and does no validation of its own.
package api

import (
	"net/http"

	"github.com/salesportal-qa/sales-portal-tests/internal/apiclient"
	"github.com/salesportal-qa/sales-portal-tests/internal/config"
	"github.com/salesportal-qa/sales-portal-tests/internal/models"
)

func authHeaders(token string) map[string]string {
	return map[string]string{"Authorization": token}
}

// LoginAPI wraps POST /api/login.
type LoginAPI struct {
	client    apiclient.Client
	endpoints *config.Endpoints
}

func NewLoginAPI(client apiclient.Client, endpoints *config.Endpoints) *LoginAPI {
	return &LoginAPI{client: client, endpoints: endpoints}
}

// Login authenticates and returns the raw response. On success the bearer
// token is in the "authorization" response header.
func (a *LoginAPI) Login(creds models.Credentials) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method: http.MethodPost,
		URL:    a.endpoints.Login(),
		Body:   creds,
	})
}
