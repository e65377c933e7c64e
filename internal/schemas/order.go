package schemas

import "github.com/salesportal-qa/sales-portal-tests/internal/models"

var OrderProductSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"_id":          map[string]any{"type": "string"},
		"name":         map[string]any{"type": "string"},
		"amount":       map[string]any{"type": "number"},
		"price":        map[string]any{"type": "number"},
		"manufacturer": map[string]any{"type": "string"},
		"notes":        map[string]any{"type": "string"},
		"received":     map[string]any{"type": "boolean"},
	},
	"required":             []string{"_id", "name", "amount", "price", "manufacturer", "notes", "received"},
	"additionalProperties": false,
}

var CommentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"_id":       map[string]any{"type": "string"},
		"text":      map[string]any{"type": "string"},
		"createdOn": map[string]any{"type": "string"},
	},
	"required":             []string{"_id", "text", "createdOn"},
	"additionalProperties": false,
}

var nullableDelivery = map[string]any{
	"anyOf": []any{DeliveryInfoSchema, map[string]any{"type": "null"}},
}

var nullableUser = map[string]any{
	"anyOf": []any{UserSchema, map[string]any{"type": "null"}},
}

var OrderHistorySchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"status":          map[string]any{"type": "string", "enum": enumOf(models.OrderStatuses())},
		"customer":        map[string]any{"type": "string"},
		"products":        map[string]any{"type": "array", "items": OrderProductSchema},
		"total_price":     map[string]any{"type": "number"},
		"delivery":        nullableDelivery,
		"assignedManager": nullableUser,
		"changedOn":       map[string]any{"type": "string"},
		"action":          map[string]any{"type": "string", "enum": enumOf(models.OrderHistoryActions())},
		"performer":       UserSchema,
	},
	"required": []string{
		"status", "customer", "products", "total_price", "delivery",
		"assignedManager", "changedOn", "action", "performer",
	},
	"additionalProperties": false,
}

// OrderSchema describes a full order entity with its embedded customer,
// products, delivery, comments, history and manager.
var OrderSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"_id":             map[string]any{"type": "string"},
		"status":          map[string]any{"type": "string", "enum": enumOf(models.OrderStatuses())},
		"customer":        CustomerSchema,
		"products":        map[string]any{"type": "array", "items": OrderProductSchema},
		"delivery":        nullableDelivery,
		"total_price":     map[string]any{"type": "number"},
		"createdOn":       map[string]any{"type": "string"},
		"comments":        map[string]any{"type": "array", "items": CommentSchema},
		"history":         map[string]any{"type": "array", "items": OrderHistorySchema},
		"assignedManager": nullableUser,
	},
	"required": []string{
		"_id", "status", "customer", "products", "total_price",
		"createdOn", "comments", "history", "assignedManager", "delivery",
	},
	"additionalProperties": false,
}

// CreateOrderSchema covers every single-order response: create, get by id,
// update, delivery, status, receive, manager and comment operations.
var CreateOrderSchema = envelope("Order", OrderSchema)

// GetAllOrdersSchema covers the paginated orders listing. The entity key is
// lower-case here, unlike the other listings.
var GetAllOrdersSchema = func() map[string]any {
	s := listEnvelope("orders", OrderSchema)
	props := s["properties"].(map[string]any)
	props["total"] = map[string]any{"type": "number"}
	props["page"] = map[string]any{"type": "number"}
	props["limit"] = map[string]any{"type": "number"}
	props["search"] = map[string]any{"type": "string"}
	props["status"] = map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string", "enum": enumOf(models.OrderStatuses())},
	}
	props["sorting"] = map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sortField": map[string]any{
				"type": "string",
				"enum": []string{"orderNumber", "email", "price", "delivery", "status", "assignedManager", "createdOn"},
			},
			"sortOrder": map[string]any{"type": "string", "enum": []string{"asc", "desc"}},
		},
		"required":             []string{"sortField", "sortOrder"},
		"additionalProperties": false,
	}
	s["required"] = append(s["required"].([]string), "total", "page", "limit", "search", "status", "sorting")
	return s
}()
