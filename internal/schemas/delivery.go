package schemas

import "github.com/salesportal-qa/sales-portal-tests/internal/models"

var DeliveryAddressSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"country": map[string]any{"type": "string"},
		"city":    map[string]any{"type": "string"},
		"street":  map[string]any{"type": "string"},
		"house":   map[string]any{"type": "number"},
		"flat":    map[string]any{"type": "number"},
	},
	"required":             []string{"country", "city", "street", "house", "flat"},
	"additionalProperties": false,
}

var DeliveryInfoSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"address":   DeliveryAddressSchema,
		"finalDate": map[string]any{"type": "string"},
		"condition": map[string]any{
			"type": "string",
			"enum": enumOf([]models.DeliveryCondition{models.ConditionDelivery, models.ConditionPickup}),
		},
	},
	"required":             []string{"address", "condition", "finalDate"},
	"additionalProperties": false,
}
