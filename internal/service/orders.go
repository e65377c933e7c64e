package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/salesportal-qa/sales-portal-tests/internal/api"
	"github.com/salesportal-qa/sales-portal-tests/internal/apiclient"
	"github.com/salesportal-qa/sales-portal-tests/internal/models"
	"github.com/salesportal-qa/sales-portal-tests/internal/testdata"
)

// OrdersService drives full order flows: provisioning the customer and
// products, scheduling delivery, walking the status lifecycle, comments and
// manager assignment. Everything it creates is tracked for cleanup.
type OrdersService struct {
	ordersAPI *api.OrdersAPI
	customers *CustomersService
	products  *ProductsService
	store     *EntitiesStore

	// ManagerIDs feeds CreateOrderInStatus; usually config.ManagerIDs.
	ManagerIDs []string
}

func NewOrdersService(
	ordersAPI *api.OrdersAPI,
	customers *CustomersService,
	products *ProductsService,
	store *EntitiesStore,
) *OrdersService {
	return &OrdersService{
		ordersAPI: ordersAPI,
		customers: customers,
		products:  products,
		store:     store,
	}
}

func (s *OrdersService) decodeOrder(t *testing.T, resp *apiclient.Response) models.Order {
	t.Helper()

	var env models.OrderEnvelope
	require.NoError(t, resp.Decode(&env), "decode order response")
	require.True(t, env.IsSuccess, "order response IsSuccess=false: %s", resp.Body)
	return env.Order
}

// Create posts an order for an existing customer and products.
func (s *OrdersService) Create(t *testing.T, token, customerID string, productIDs []string) models.Order {
	t.Helper()

	resp, err := s.ordersAPI.Create(token, models.OrderInput{Customer: customerID, Products: productIDs})
	require.NoError(t, err, "create order request failed")
	require.Equal(t, http.StatusCreated, resp.Status, "create order rejected: %s", resp.Body)

	order := s.decodeOrder(t, resp)
	s.store.AddOrder(order.ID)
	return order
}

// Delete removes an order and untracks it.
func (s *OrdersService) Delete(t *testing.T, token, orderID string) {
	t.Helper()

	resp, err := s.ordersAPI.Delete(token, orderID)
	require.NoError(t, err, "delete order request failed")
	require.Equal(t, http.StatusNoContent, resp.Status, "delete order rejected: %s", resp.Body)
	s.store.RemoveOrder(orderID)
}

// UpdateStatus transitions the order and returns the updated entity.
func (s *OrdersService) UpdateStatus(t *testing.T, token, orderID string, status models.OrderStatus) models.Order {
	t.Helper()

	resp, err := s.ordersAPI.UpdateStatus(token, orderID, status)
	require.NoError(t, err, "update order status request failed")
	require.Equal(t, http.StatusOK, resp.Status, "status transition to %q rejected: %s", status, resp.Body)
	return s.decodeOrder(t, resp)
}

// CreateOrderAndEntities provisions a customer, count products and an order
// linking them. The order starts in Draft.
func (s *OrdersService) CreateOrderAndEntities(t *testing.T, token string, count int) models.Order {
	t.Helper()

	customer := s.customers.Create(t, token)
	productIDs := s.products.CreateMany(t, token, count)
	return s.Create(t, token, customer.ID, productIDs)
}

// CreateOrderWithDelivery builds a Draft order with a scheduled delivery.
func (s *OrdersService) CreateOrderWithDelivery(t *testing.T, token string, count int) models.Order {
	t.Helper()

	order := s.CreateOrderAndEntities(t, token, count)
	resp, err := s.ordersAPI.AddDelivery(token, order.ID, testdata.Delivery())
	require.NoError(t, err, "add delivery request failed")
	require.Equal(t, http.StatusOK, resp.Status, "add delivery rejected: %s", resp.Body)
	return s.decodeOrder(t, resp)
}

// CreateOrderInProcess builds an order with delivery moved to In Process.
func (s *OrdersService) CreateOrderInProcess(t *testing.T, token string, count int) models.Order {
	t.Helper()

	order := s.CreateOrderWithDelivery(t, token, count)
	return s.UpdateStatus(t, token, order.ID, models.StatusProcessing)
}

// CreateCanceledOrder builds an order with delivery and cancels it.
func (s *OrdersService) CreateCanceledOrder(t *testing.T, token string, count int) models.Order {
	t.Helper()

	order := s.CreateOrderWithDelivery(t, token, count)
	return s.UpdateStatus(t, token, order.ID, models.StatusCanceled)
}

// CreatePartiallyReceivedOrder builds an In Process order and receives only
// the first product. count should be at least 2 for the partial state to be
// meaningful.
func (s *OrdersService) CreatePartiallyReceivedOrder(t *testing.T, token string, count int) models.Order {
	t.Helper()

	order := s.CreateOrderInProcess(t, token, count)
	require.NotEmpty(t, order.Products, "order has no products to receive")
	return s.Receive(t, token, order.ID, []string{order.Products[0].ID})
}

// CreateReceivedOrder builds an In Process order and receives every product.
func (s *OrdersService) CreateReceivedOrder(t *testing.T, token string, count int) models.Order {
	t.Helper()

	order := s.CreateOrderInProcess(t, token, count)
	return s.Receive(t, token, order.ID, order.ProductIDs())
}

// CreateByFactory dispatches to the factory the data-driven cases name.
func (s *OrdersService) CreateByFactory(t *testing.T, token string, factory testdata.OrderFactory, count int) models.Order {
	t.Helper()

	switch factory {
	case testdata.FactoryDraft:
		return s.CreateOrderAndEntities(t, token, count)
	case testdata.FactoryDraftWithDelivery:
		return s.CreateOrderWithDelivery(t, token, count)
	case testdata.FactoryInProcess:
		return s.CreateOrderInProcess(t, token, count)
	case testdata.FactoryPartiallyReceived:
		return s.CreatePartiallyReceivedOrder(t, token, count)
	case testdata.FactoryReceived:
		return s.CreateReceivedOrder(t, token, count)
	case testdata.FactoryCanceled:
		return s.CreateCanceledOrder(t, token, count)
	default:
		t.Fatalf("unknown order factory %q", factory)
		return models.Order{}
	}
}

// CreateOrderInStatus drives a fresh order to the requested status with a
// manager assigned, the way the notification tests need it.
func (s *OrdersService) CreateOrderInStatus(t *testing.T, token string, count int, status models.OrderStatus) models.Order {
	t.Helper()

	order := s.CreateOrderWithDelivery(t, token, count)

	managerID := ""
	if len(s.ManagerIDs) > 0 {
		managerID = s.ManagerIDs[0]
	}
	order = s.AssignManager(t, token, order.ID, managerID)

	switch status {
	case models.StatusDraft:
		return order
	case models.StatusCanceled, models.StatusProcessing:
		return s.UpdateStatus(t, token, order.ID, status)
	case models.StatusPartiallyReceived:
		processing := s.UpdateStatus(t, token, order.ID, models.StatusProcessing)
		require.NotEmpty(t, processing.Products, "order has no products to receive")
		return s.Receive(t, token, processing.ID, []string{processing.Products[0].ID})
	case models.StatusReceived:
		processing := s.UpdateStatus(t, token, order.ID, models.StatusProcessing)
		return s.Receive(t, token, processing.ID, processing.ProductIDs())
	default:
		return s.UpdateStatus(t, token, order.ID, status)
	}
}

// Receive marks products as received and returns the updated order.
func (s *OrdersService) Receive(t *testing.T, token, orderID string, productIDs []string) models.Order {
	t.Helper()

	resp, err := s.ordersAPI.ReceiveProducts(token, orderID, productIDs)
	require.NoError(t, err, "receive products request failed")
	require.Equal(t, http.StatusOK, resp.Status, "receive products rejected: %s", resp.Body)
	return s.decodeOrder(t, resp)
}

// AddComment posts a comment and returns the updated order.
func (s *OrdersService) AddComment(t *testing.T, token, orderID, text string) models.Order {
	t.Helper()

	resp, err := s.ordersAPI.AddComment(token, orderID, text)
	require.NoError(t, err, "add comment request failed")
	require.Equal(t, http.StatusOK, resp.Status, "add comment rejected: %s", resp.Body)
	return s.decodeOrder(t, resp)
}

// DeleteComment removes a comment from an order.
func (s *OrdersService) DeleteComment(t *testing.T, token, orderID, commentID string) {
	t.Helper()

	resp, err := s.ordersAPI.DeleteComment(token, orderID, commentID)
	require.NoError(t, err, "delete comment request failed")
	require.Equal(t, http.StatusNoContent, resp.Status, "delete comment rejected: %s", resp.Body)
}

// AssignManager attaches a manager and returns the updated order.
func (s *OrdersService) AssignManager(t *testing.T, token, orderID, managerID string) models.Order {
	t.Helper()

	resp, err := s.ordersAPI.AssignManager(token, orderID, managerID)
	require.NoError(t, err, "assign manager request failed")
	require.Equal(t, http.StatusOK, resp.Status, "assign manager rejected: %s", resp.Body)
	return s.decodeOrder(t, resp)
}

// UnassignManager detaches the manager and returns the updated order.
func (s *OrdersService) UnassignManager(t *testing.T, token, orderID string) models.Order {
	t.Helper()

	resp, err := s.ordersAPI.UnassignManager(token, orderID)
	require.NoError(t, err, "unassign manager request failed")
	require.Equal(t, http.StatusOK, resp.Status, "unassign manager rejected: %s", resp.Body)
	return s.decodeOrder(t, resp)
}

// FullDelete removes every tracked entity: orders first, then customers,
// then products, respecting referential constraints.
func (s *OrdersService) FullDelete(t *testing.T, token string) {
	t.Helper()

	for _, id := range s.store.Orders() {
		s.Delete(t, token, id)
	}
	for _, id := range s.store.Customers() {
		s.customers.Delete(t, token, id)
	}
	for _, id := range s.store.Products() {
		s.products.Delete(t, token, id)
	}
}
