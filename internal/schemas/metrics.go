package schemas

var metricsBodySchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"orders": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"totalRevenue":        map[string]any{"type": "number"},
				"totalOrders":         map[string]any{"type": "number"},
				"averageOrderValue":   map[string]any{"type": "number"},
				"totalCanceledOrders": map[string]any{"type": "number"},
				"recentOrders":        map[string]any{"type": "array"},
				"ordersCountPerDay":   map[string]any{"type": "array"},
			},
			"required": []string{"totalRevenue", "totalOrders", "averageOrderValue", "totalCanceledOrders"},
		},
		"customers": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"totalNewCustomers": map[string]any{"type": "number"},
				"topCustomers":      map[string]any{"type": "array"},
				"customerGrowth":    map[string]any{"type": "array"},
			},
			"required": []string{"totalNewCustomers"},
		},
		"products": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topProducts": map[string]any{"type": "array"},
			},
		},
	},
	"required": []string{"orders", "customers", "products"},
}

var GetMetricsSchema = envelope("Metrics", metricsBodySchema)
