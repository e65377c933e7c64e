package config

import "fmt"

// Endpoints builds absolute Sales Portal API URLs from the configured base.
// Single-entity paths carry a trailing slash, matching the backend's routing.
type Endpoints struct {
	base string
}

func NewEndpoints(apiURL string) Endpoints {
	return Endpoints{base: apiURL}
}

func (e Endpoints) Login() string { return e.base + "/api/login" }

func (e Endpoints) Products() string    { return e.base + "/api/products" }
func (e Endpoints) ProductsAll() string { return e.base + "/api/products/all" }
func (e Endpoints) ProductByID(id string) string {
	return fmt.Sprintf("%s/api/products/%s/", e.base, id)
}

func (e Endpoints) Customers() string    { return e.base + "/api/customers" }
func (e Endpoints) CustomersAll() string { return e.base + "/api/customers/all" }
func (e Endpoints) CustomerByID(id string) string {
	return fmt.Sprintf("%s/api/customers/%s/", e.base, id)
}

func (e Endpoints) Orders() string    { return e.base + "/api/orders" }
func (e Endpoints) OrdersAll() string { return e.base + "/api/orders/all" }
func (e Endpoints) OrderByID(id string) string {
	return fmt.Sprintf("%s/api/orders/%s/", e.base, id)
}

func (e Endpoints) OrderDelivery(orderID string) string {
	return fmt.Sprintf("%s/api/orders/%s/delivery", e.base, orderID)
}

func (e Endpoints) OrderStatus(orderID string) string {
	return fmt.Sprintf("%s/api/orders/%s/status", e.base, orderID)
}

func (e Endpoints) OrderReceive(orderID string) string {
	return fmt.Sprintf("%s/api/orders/%s/receive", e.base, orderID)
}

func (e Endpoints) OrderAssignManager(orderID, managerID string) string {
	return fmt.Sprintf("%s/api/orders/%s/assign-manager/%s", e.base, orderID, managerID)
}

func (e Endpoints) OrderUnassignManager(orderID string) string {
	return fmt.Sprintf("%s/api/orders/%s/unassign-manager", e.base, orderID)
}

func (e Endpoints) OrderComments(orderID string) string {
	return fmt.Sprintf("%s/api/orders/%s/comments", e.base, orderID)
}

func (e Endpoints) OrderCommentByID(orderID, commentID string) string {
	return fmt.Sprintf("%s/api/orders/%s/comments/%s", e.base, orderID, commentID)
}

func (e Endpoints) Notifications() string { return e.base + "/api/notifications" }
func (e Endpoints) NotificationsMarkAllRead() string {
	return e.base + "/api/notifications/mark-all-read"
}

func (e Endpoints) NotificationAsRead(id string) string {
	return fmt.Sprintf("%s/api/notifications/%s/read", e.base, id)
}

func (e Endpoints) Metrics() string { return e.base + "/api/metrics" }

func (e Endpoints) Users() string { return e.base + "/api/users" }
func (e Endpoints) UserByID(id string) string {
	return fmt.Sprintf("%s/api/users/%s/", e.base, id)
}
