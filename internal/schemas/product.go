package schemas

import "github.com/salesportal-qa/sales-portal-tests/internal/models"

// ProductSchema describes a single product entity.
var ProductSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"_id":          map[string]any{"type": "string"},
		"name":         map[string]any{"type": "string"},
		"amount":       map[string]any{"type": "number"},
		"price":        map[string]any{"type": "number"},
		"createdOn":    map[string]any{"type": "string"},
		"notes":        map[string]any{"type": "string"},
		"manufacturer": map[string]any{"type": "string", "enum": enumOf(models.Manufacturers())},
	},
	"required":             []string{"_id", "name", "amount", "price", "manufacturer", "createdOn"},
	"additionalProperties": false,
}

// CreateProductSchema covers POST, GET by id and PUT responses.
var CreateProductSchema = envelope("Product", ProductSchema)

var GetAllProductsSchema = listEnvelope("Products", ProductSchema)

// GetListProductsSchema covers the paginated listing with its metadata.
var GetListProductsSchema = func() map[string]any {
	s := listEnvelope("Products", ProductSchema)
	props := s["properties"].(map[string]any)
	props["total"] = map[string]any{"type": "number"}
	props["page"] = map[string]any{"type": "number"}
	props["limit"] = map[string]any{"type": "number"}
	props["search"] = map[string]any{"type": "string"}
	props["manufacturer"] = map[string]any{"type": "array"}
	props["sorting"] = map[string]any{"type": "object"}
	return s
}()
