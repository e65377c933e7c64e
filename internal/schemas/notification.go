package schemas

var NotificationSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"_id":       map[string]any{"type": "string"},
		"userId":    map[string]any{"type": "string"},
		"type":      map[string]any{"type": "string"},
		"orderId":   map[string]any{"type": "string"},
		"message":   map[string]any{"type": "string"},
		"read":      map[string]any{"type": "boolean"},
		"createdAt": map[string]any{"type": "string"},
		"expiresAt": map[string]any{"type": "string"},
		"updatedAt": map[string]any{"type": "string"},
	},
	"required": []string{"_id", "userId", "type", "orderId", "message", "read", "createdAt"},
}

var GetNotificationsSchema = listEnvelope("Notifications", NotificationSchema)
