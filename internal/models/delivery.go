package models

// DeliveryAddress is the destination of a scheduled delivery.
type DeliveryAddress struct {
	Country Country `json:"country"`
	City    string  `json:"city"`
	Street  string  `json:"street"`
	House   int     `json:"house"`
	Flat    int     `json:"flat"`
}

// DeliveryInfo is the delivery block attached to an order. FinalDate uses
// the YYYY/MM/DD format the backend expects.
type DeliveryInfo struct {
	FinalDate string            `json:"finalDate"`
	Condition DeliveryCondition `json:"condition"`
	Address   DeliveryAddress   `json:"address"`
}
