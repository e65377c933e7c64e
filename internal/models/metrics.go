package models

// TopProduct is one row of the products metrics leaderboard.
type TopProduct struct {
	Name  string `json:"name"`
	Sales int    `json:"sales"`
}

type OrdersMetrics struct {
	TotalRevenue        float64 `json:"totalRevenue"`
	TotalOrders         int     `json:"totalOrders"`
	AverageOrderValue   float64 `json:"averageOrderValue"`
	TotalCanceledOrders int     `json:"totalCanceledOrders"`
	RecentOrders        []any   `json:"recentOrders"`
	OrdersCountPerDay   []any   `json:"ordersCountPerDay"`
}

type MetricsDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

type CustomerGrowth struct {
	Date  MetricsDate `json:"date"`
	Count int         `json:"count"`
}

type CustomersMetrics struct {
	TotalNewCustomers int              `json:"totalNewCustomers"`
	TopCustomers      []any            `json:"topCustomers"`
	CustomerGrowth    []CustomerGrowth `json:"customerGrowth"`
}

type ProductsMetrics struct {
	TopProducts []TopProduct `json:"topProducts"`
}

// Metrics is the home dashboard metrics block.
type Metrics struct {
	Orders    OrdersMetrics    `json:"orders"`
	Customers CustomersMetrics `json:"customers"`
	Products  ProductsMetrics  `json:"products"`
}

// MetricsEnvelope wraps the metrics response.
type MetricsEnvelope struct {
	Metrics      Metrics `json:"Metrics"`
	IsSuccess    bool    `json:"IsSuccess"`
	ErrorMessage *string `json:"ErrorMessage"`
}
