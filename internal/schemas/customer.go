package schemas

import "github.com/salesportal-qa/sales-portal-tests/internal/models"

// CustomerSchema describes a single customer entity.
var CustomerSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"_id":       map[string]any{"type": "string"},
		"email":     map[string]any{"type": "string"},
		"name":      map[string]any{"type": "string"},
		"country":   map[string]any{"type": "string", "enum": enumOf(models.Countries())},
		"city":      map[string]any{"type": "string"},
		"street":    map[string]any{"type": "string"},
		"house":     map[string]any{"type": "number"},
		"flat":      map[string]any{"type": "number"},
		"phone":     map[string]any{"type": "string"},
		"notes":     map[string]any{"type": "string"},
		"createdOn": map[string]any{"type": "string"},
	},
	"required": []string{
		"_id", "email", "name", "country", "city",
		"street", "house", "flat", "phone", "createdOn",
	},
}

// CreateCustomerSchema covers POST, GET by id and PUT responses.
var CreateCustomerSchema = envelope("Customer", CustomerSchema)

var GetAllCustomersSchema = listEnvelope("Customers", CustomerSchema)

// GetListCustomersSchema covers the paginated listing with its metadata.
var GetListCustomersSchema = func() map[string]any {
	s := listEnvelope("Customers", CustomerSchema)
	props := s["properties"].(map[string]any)
	props["total"] = map[string]any{"type": "number"}
	props["page"] = map[string]any{"type": "number"}
	props["limit"] = map[string]any{"type": "number"}
	props["search"] = map[string]any{"type": "string"}
	props["country"] = map[string]any{"type": "array"}
	props["sorting"] = map[string]any{"type": "object"}
	return s
}()
