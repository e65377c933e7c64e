package api

import (
	"net/http"

	"github.com/salesportal-qa/sales-portal-tests/internal/apiclient"
	"github.com/salesportal-qa/sales-portal-tests/internal/config"
)

// UsersAPI wraps the /api/users routes. Used mainly to resolve managers for
// assignment flows.
type UsersAPI struct {
	client    apiclient.Client
	endpoints *config.Endpoints
}

func NewUsersAPI(client apiclient.Client, endpoints *config.Endpoints) *UsersAPI {
	return &UsersAPI{client: client, endpoints: endpoints}
}

func (a *UsersAPI) GetAll(token string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodGet,
		URL:     a.endpoints.Users(),
		Headers: authHeaders(token),
	})
}

func (a *UsersAPI) GetByID(token, id string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodGet,
		URL:     a.endpoints.UserByID(id),
		Headers: authHeaders(token),
	})
}

// MetricsAPI wraps GET /api/metrics for the home dashboard.
type MetricsAPI struct {
	client    apiclient.Client
	endpoints *config.Endpoints
}

func NewMetricsAPI(client apiclient.Client, endpoints *config.Endpoints) *MetricsAPI {
	return &MetricsAPI{client: client, endpoints: endpoints}
}

func (a *MetricsAPI) Get(token string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodGet,
		URL:     a.endpoints.Metrics(),
		Headers: authHeaders(token),
	})
}
