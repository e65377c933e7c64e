package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/salesportal-qa/sales-portal-tests/internal/api"
	"github.com/salesportal-qa/sales-portal-tests/internal/apiclient"
	"github.com/salesportal-qa/sales-portal-tests/internal/models"
	"github.com/salesportal-qa/sales-portal-tests/internal/testdata"
)

// OrdersFacade composes the services but returns raw responses without any
// validation. Data-driven negative tests use it to assert on the exact
// response themselves.
type OrdersFacade struct {
	ordersAPI *api.OrdersAPI
	customers *CustomersService
	products  *ProductsService
}

func NewOrdersFacade(ordersAPI *api.OrdersAPI, customers *CustomersService, products *ProductsService) *OrdersFacade {
	return &OrdersFacade{ordersAPI: ordersAPI, customers: customers, products: products}
}

// Create provisions a customer and count products, then posts the order with
// the generated payload merged with override keys. The raw response comes
// back unvalidated.
func (f *OrdersFacade) Create(t *testing.T, token string, count int, override map[string]any) (*apiclient.Response, error) {
	t.Helper()

	customer := f.customers.Create(t, token)
	productIDs := f.products.CreateMany(t, token, count)

	payload := testdata.Payload(models.OrderInput{Customer: customer.ID, Products: productIDs})
	for k, v := range override {
		payload[k] = v
	}
	return f.ordersAPI.Create(token, payload)
}

// AddDelivery posts the delivery body to a fresh draft order and returns the
// raw response.
func (f *OrdersFacade) AddDelivery(t *testing.T, token string, orders *OrdersService, body any) (*apiclient.Response, error) {
	t.Helper()

	order := orders.CreateOrderAndEntities(t, token, 1)
	return f.ordersAPI.AddDelivery(token, order.ID, body)
}

// OrderID extracts the order id from a raw create response.
func (f *OrdersFacade) OrderID(t *testing.T, resp *apiclient.Response) string {
	t.Helper()

	var env models.OrderEnvelope
	require.NoError(t, resp.Decode(&env), "decode order response")
	return env.Order.ID
}
