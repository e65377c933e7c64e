package api

import (
	"net/http"

	"github.com/salesportal-qa/sales-portal-tests/internal/apiclient"
	"github.com/salesportal-qa/sales-portal-tests/internal/config"
)

// ProductsAPI wraps the /api/products routes.
type ProductsAPI struct {
	client    apiclient.Client
	endpoints *config.Endpoints
}

func NewProductsAPI(client apiclient.Client, endpoints *config.Endpoints) *ProductsAPI {
	return &ProductsAPI{client: client, endpoints: endpoints}
}

func (a *ProductsAPI) Create(token string, body any) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodPost,
		URL:     a.endpoints.Products(),
		Body:    body,
		Headers: authHeaders(token),
	})
}

func (a *ProductsAPI) GetAll(token string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodGet,
		URL:     a.endpoints.ProductsAll(),
		Headers: authHeaders(token),
	})
}

// GetList fetches the paginated listing. Query keys: search, page, limit,
// manufacturer, sortField, sortOrder.
func (a *ProductsAPI) GetList(token string, query map[string]string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodGet,
		URL:     a.endpoints.Products(),
		Headers: authHeaders(token),
		Query:   query,
	})
}

func (a *ProductsAPI) GetByID(token, id string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodGet,
		URL:     a.endpoints.ProductByID(id),
		Headers: authHeaders(token),
	})
}

func (a *ProductsAPI) Update(token, id string, body any) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodPut,
		URL:     a.endpoints.ProductByID(id),
		Body:    body,
		Headers: authHeaders(token),
	})
}

func (a *ProductsAPI) Delete(token, id string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodDelete,
		URL:     a.endpoints.ProductByID(id),
		Headers: authHeaders(token),
	})
}
