package api

import (
	"net/http"

	"github.com/salesportal-qa/sales-portal-tests/internal/apiclient"
	"github.com/salesportal-qa/sales-portal-tests/internal/config"
)

// CustomersAPI wraps the /api/customers routes.
type CustomersAPI struct {
	client    apiclient.Client
	endpoints *config.Endpoints
}

func NewCustomersAPI(client apiclient.Client, endpoints *config.Endpoints) *CustomersAPI {
	return &CustomersAPI{client: client, endpoints: endpoints}
}

// Create posts a new customer. body is any so negative cases can send
// malformed payloads.
func (a *CustomersAPI) Create(token string, body any) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodPost,
		URL:     a.endpoints.Customers(),
		Body:    body,
		Headers: authHeaders(token),
	})
}

// GetAll fetches every customer without pagination.
func (a *CustomersAPI) GetAll(token string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodGet,
		URL:     a.endpoints.CustomersAll(),
		Headers: authHeaders(token),
	})
}

// GetList fetches the paginated listing. Query keys: search, page, limit,
// country, sortField, sortOrder.
func (a *CustomersAPI) GetList(token string, query map[string]string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodGet,
		URL:     a.endpoints.Customers(),
		Headers: authHeaders(token),
		Query:   query,
	})
}

func (a *CustomersAPI) GetByID(token, id string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodGet,
		URL:     a.endpoints.CustomerByID(id),
		Headers: authHeaders(token),
	})
}

func (a *CustomersAPI) Update(token, id string, body any) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodPut,
		URL:     a.endpoints.CustomerByID(id),
		Body:    body,
		Headers: authHeaders(token),
	})
}

func (a *CustomersAPI) Delete(token, id string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodDelete,
		URL:     a.endpoints.CustomerByID(id),
		Headers: authHeaders(token),
	})
}
