package api

import (
	"net/http"

	"github.com/salesportal-qa/sales-portal-tests/internal/apiclient"
	"github.com/salesportal-qa/sales-portal-tests/internal/config"
)

// NotificationsAPI wraps the /api/notifications routes.
type NotificationsAPI struct {
	client    apiclient.Client
	endpoints *config.Endpoints
}

func NewNotificationsAPI(client apiclient.Client, endpoints *config.Endpoints) *NotificationsAPI {
	return &NotificationsAPI{client: client, endpoints: endpoints}
}

// GetUserNotifications returns notifications for the token's user.
func (a *NotificationsAPI) GetUserNotifications(token string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodGet,
		URL:     a.endpoints.Notifications(),
		Headers: authHeaders(token),
	})
}

// MarkAsRead marks one notification as read.
func (a *NotificationsAPI) MarkAsRead(token, notificationID string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodPatch,
		URL:     a.endpoints.NotificationAsRead(notificationID),
		Headers: authHeaders(token),
	})
}

// MarkAllAsRead marks every notification of the token's user as read.
func (a *NotificationsAPI) MarkAllAsRead(token string) (*apiclient.Response, error) {
	return a.client.Do(apiclient.RequestOptions{
		Method:  http.MethodPatch,
		URL:     a.endpoints.NotificationsMarkAllRead(),
		Headers: authHeaders(token),
	})
}
