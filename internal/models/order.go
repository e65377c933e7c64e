package models

// OrderInput is the request body for creating or updating an order.
type OrderInput struct {
	Customer string   `json:"customer"`
	Products []string `json:"products"`
}

// OrderProduct is a product snapshot inside an order, with its receipt flag.
type OrderProduct struct {
	ID           string       `json:"_id"`
	Name         string       `json:"name"`
	Manufacturer Manufacturer `json:"manufacturer"`
	Price        int          `json:"price"`
	Amount       int          `json:"amount"`
	Notes        string       `json:"notes"`
	Received     bool         `json:"received"`
}

// Comment is a single order comment.
type Comment struct {
	ID        string `json:"_id"`
	Text      string `json:"text"`
	CreatedOn string `json:"createdOn"`
}

// HistoryEntry is one record in an order's audit trail. Customer holds the
// customer id rather than the full entity.
type HistoryEntry struct {
	Action          OrderHistoryAction `json:"action"`
	Status          OrderStatus        `json:"status"`
	Customer        string             `json:"customer"`
	Products        []OrderProduct     `json:"products"`
	TotalPrice      float64            `json:"total_price"`
	Delivery        *DeliveryInfo      `json:"delivery"`
	AssignedManager *User              `json:"assignedManager"`
	ChangedOn       string             `json:"changedOn"`
	Performer       User               `json:"performer"`
}

// Order is an order entity as the backend returns it.
type Order struct {
	ID              string         `json:"_id"`
	Status          OrderStatus    `json:"status"`
	Customer        Customer       `json:"customer"`
	Products        []OrderProduct `json:"products"`
	Delivery        *DeliveryInfo  `json:"delivery"`
	TotalPrice      float64        `json:"total_price"`
	Comments        []Comment      `json:"comments"`
	History         []HistoryEntry `json:"history"`
	AssignedManager *User          `json:"assignedManager"`
	CreatedOn       string         `json:"createdOn"`
}

// ProductIDs returns the ids of the requested products in order.
func (o Order) ProductIDs() []string {
	ids := make([]string, 0, len(o.Products))
	for _, p := range o.Products {
		ids = append(ids, p.ID)
	}
	return ids
}

// Sorting describes a listing's active sort.
type Sorting struct {
	SortField string `json:"sortField"`
	SortOrder string `json:"sortOrder"`
}

// OrderEnvelope wraps a single order response.
type OrderEnvelope struct {
	Order        Order   `json:"Order"`
	IsSuccess    bool    `json:"IsSuccess"`
	ErrorMessage *string `json:"ErrorMessage"`
}

// OrderListEnvelope wraps the paginated orders listing. Note the lower-case
// "orders" key, unlike the other listings.
type OrderListEnvelope struct {
	Orders       []Order       `json:"orders"`
	Total        int           `json:"total"`
	Page         int           `json:"page"`
	Limit        int           `json:"limit"`
	Search       string        `json:"search"`
	Status       []OrderStatus `json:"status"`
	Sorting      Sorting       `json:"sorting"`
	IsSuccess    bool          `json:"IsSuccess"`
	ErrorMessage *string       `json:"ErrorMessage"`
}

// StatusInput is the body of a status-change request.
type StatusInput struct {
	Status OrderStatus `json:"status"`
}

// ReceiveInput is the body of a receive-products request.
type ReceiveInput struct {
	Products []string `json:"products"`
}

// CommentInput is the body of an add-comment request.
type CommentInput struct {
	Comment string `json:"comment"`
}
