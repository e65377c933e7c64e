// Package mock intercepts the portal's API calls inside the browser with
// Playwright routes, so UI tests run against pre-programmed responses
// without touching the real backend.
package mock

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/playwright-community/playwright-go"

	"github.com/salesportal-qa/sales-portal-tests/internal/config"
)

// Logf is a log sink compatible with testing.T.Logf.
type Logf func(format string, args ...any)

// Mock wraps page.Route with the intercepts the suites use.
type Mock struct {
	page      playwright.Page
	endpoints *config.Endpoints
	// Log receives fulfill failures, discarded when nil.
	Log Logf
}

func New(page playwright.Page, endpoints *config.Endpoints) *Mock {
	return &Mock{page: page, endpoints: endpoints}
}

// Route intercepts all requests matching url (a string or a *regexp.Regexp)
// and fulfills them with body serialized as JSON.
func (m *Mock) Route(url interface{}, body any, status int) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal mock body: %w", err)
	}
	return m.page.Route(url, func(route playwright.Route) {
		if err := route.Fulfill(playwright.RouteFulfillOptions{
			Status:      playwright.Int(status),
			ContentType: playwright.String("application/json"),
			Body:        raw,
		}); err != nil {
			m.logf("mock: fulfill %v: %v", url, err)
		}
	})
}

func (m *Mock) logf(format string, args ...any) {
	if m.Log != nil {
		m.Log(format, args...)
	}
}

// ProductsPage mocks the products listing, query string included.
func (m *Mock) ProductsPage(body any, status int) error {
	return m.Route("**/api/products?*", body, status)
}

// ProductDetails mocks GET for a single product.
func (m *Mock) ProductDetails(productID string, body any, status int) error {
	return m.Route(m.endpoints.ProductByID(productID), body, status)
}

// Metrics mocks the home page dashboard data.
func (m *Mock) Metrics(body any) error {
	return m.Route(m.endpoints.Metrics(), body, http.StatusOK)
}

// OrdersPage mocks the orders listing, query string included.
func (m *Mock) OrdersPage(body any, status int) error {
	return m.Route("**/api/orders?*", body, status)
}

// OrderDetails mocks GET for a single order.
func (m *Mock) OrderDetails(orderID string, body any, status int) error {
	return m.Route(m.endpoints.OrderByID(orderID), body, status)
}

// CreateOrder mocks POST /api/orders.
func (m *Mock) CreateOrder(body any, status int) error {
	return m.Route(m.endpoints.Orders(), body, status)
}

// CustomersAll mocks the unpaginated customers listing used by dropdowns.
func (m *Mock) CustomersAll(body any) error {
	return m.Route(m.endpoints.CustomersAll(), body, http.StatusOK)
}

// ProductsAll mocks the unpaginated products listing used by dropdowns.
func (m *Mock) ProductsAll(body any) error {
	return m.Route(m.endpoints.ProductsAll(), body, http.StatusOK)
}

// CustomerDetails mocks GET for a single customer.
func (m *Mock) CustomerDetails(customerID string, body any, status int) error {
	return m.Route(m.endpoints.CustomerByID(customerID), body, status)
}

// UpdateCustomer mocks PUT for a single customer.
func (m *Mock) UpdateCustomer(customerID string, body any, status int) error {
	return m.Route(m.endpoints.CustomerByID(customerID), body, status)
}
