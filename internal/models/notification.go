package models

// Notification is an in-app notification generated by order events.
type Notification struct {
	ID        string `json:"_id"`
	UserID    string `json:"userId"`
	Type      string `json:"type"`
	OrderID   string `json:"orderId"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedOn string `json:"createdAt"`
	ExpiresOn string `json:"expiresAt"`
	UpdatedOn string `json:"updatedAt"`
}

// NotificationsEnvelope wraps the current user's notifications listing.
type NotificationsEnvelope struct {
	Notifications []Notification `json:"Notifications"`
	IsSuccess     bool           `json:"IsSuccess"`
	ErrorMessage  *string        `json:"ErrorMessage"`
}

// ForOrder filters notifications down to those referencing the given order.
func (e NotificationsEnvelope) ForOrder(orderID string) []Notification {
	var out []Notification
	for _, n := range e.Notifications {
		if n.OrderID == orderID {
			out = append(out, n)
		}
	}
	return out
}
