package api

import (
	"net/http"

	"github.com/salesportal-qa/sales-portal-tests/internal/apiclient"
	"github.com/salesportal-qa/sales-portal-tests/internal/config"
	"github.com/salesportal-qa/sales-portal-tests/internal/models"
)

// OrdersAPI wraps the /api/orders routes, including delivery, status,
// receive, manager and comment sub-resources.
type OrdersAPI struct {
	client    apiclient.Client
	endpoints *config.Endpoints
}

func NewOrdersAPI(client apiclient.Client, endpoints *config.Endpoints) *OrdersAPI {
	return &OrdersAPI{client: client, endpoints: endpoints}
}

func (a *OrdersAPI) Create(token string, body any) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodPost,
		URL:     a.endpoints.Orders(),
		Body:    body,
		Headers: authHeaders(token),
	})
}

func (a *OrdersAPI) GetByID(token, id string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodGet,
		URL:     a.endpoints.OrderByID(id),
		Headers: authHeaders(token),
	})
}

// GetList fetches the paginated listing. Query keys: search, page, limit,
// status, sortField, sortOrder.
func (a *OrdersAPI) GetList(token string, query map[string]string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodGet,
		URL:     a.endpoints.Orders(),
		Headers: authHeaders(token),
		Query:   query,
	})
}

func (a *OrdersAPI) Update(token, id string, body any) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodPut,
		URL:     a.endpoints.OrderByID(id),
		Body:    body,
		Headers: authHeaders(token),
	})
}

func (a *OrdersAPI) Delete(token, id string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodDelete,
		URL:     a.endpoints.OrderByID(id),
		Headers: authHeaders(token),
	})
}

// AddDelivery schedules or reschedules the order's delivery.
func (a *OrdersAPI) AddDelivery(token, id string, delivery any) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodPost,
		URL:     a.endpoints.OrderDelivery(id),
		Body:    delivery,
		Headers: authHeaders(token),
	})
}

// UpdateStatus moves the order to the given lifecycle status.
func (a *OrdersAPI) UpdateStatus(token, id string, status models.OrderStatus) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodPut,
		URL:     a.endpoints.OrderStatus(id),
		Body:    models.StatusInput{Status: status},
		Headers: authHeaders(token),
	})
}

// UpdateStatusRaw posts an arbitrary body to the status endpoint. Negative
// tests use it for values the typed helper cannot express.
func (a *OrdersAPI) UpdateStatusRaw(token, id string, body any) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodPut,
		URL:     a.endpoints.OrderStatus(id),
		Body:    body,
		Headers: authHeaders(token),
	})
}

// ReceiveProducts marks the given requested products as received.
func (a *OrdersAPI) ReceiveProducts(token, id string, productIDs []string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodPost,
		URL:     a.endpoints.OrderReceive(id),
		Body:    models.ReceiveInput{Products: productIDs},
		Headers: authHeaders(token),
	})
}

// ReceiveProductsRaw posts an arbitrary body to the receive endpoint.
func (a *OrdersAPI) ReceiveProductsRaw(token, id string, body any) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodPost,
		URL:     a.endpoints.OrderReceive(id),
		Body:    body,
		Headers: authHeaders(token),
	})
}

func (a *OrdersAPI) AssignManager(token, orderID, managerID string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodPut,
		URL:     a.endpoints.OrderAssignManager(orderID, managerID),
		Headers: authHeaders(token),
	})
}

func (a *OrdersAPI) UnassignManager(token, orderID string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodPut,
		URL:     a.endpoints.OrderUnassignManager(orderID),
		Headers: authHeaders(token),
	})
}

func (a *OrdersAPI) AddComment(token, orderID, text string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodPost,
		URL:     a.endpoints.OrderComments(orderID),
		Body:    models.CommentInput{Comment: text},
		Headers: authHeaders(token),
	})
}

func (a *OrdersAPI) GetComments(token, orderID string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodGet,
		URL:     a.endpoints.OrderComments(orderID),
		Headers: authHeaders(token),
	})
}

func (a *OrdersAPI) DeleteComment(token, orderID, commentID string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodDelete,
		URL:     a.endpoints.OrderCommentByID(orderID, commentID),
		Headers: authHeaders(token),
	})
}
