package models

// ProductInput is the request body for creating or updating a product.
type ProductInput struct {
	Name         string       `json:"name"`
	Manufacturer Manufacturer `json:"manufacturer"`
	Price        int          `json:"price"`
	Amount       int          `json:"amount"`
	Notes        string       `json:"notes"`
}

// Product is a product entity as the backend returns it.
type Product struct {
	ID           string       `json:"_id"`
	Name         string       `json:"name"`
	Manufacturer Manufacturer `json:"manufacturer"`
	Price        int          `json:"price"`
	Amount       int          `json:"amount"`
	Notes        string       `json:"notes,omitempty"`
	CreatedOn    string       `json:"createdOn"`
}

func (p Product) Input() ProductInput {
	return ProductInput{
		Name:         p.Name,
		Manufacturer: p.Manufacturer,
		Price:        p.Price,
		Amount:       p.Amount,
		Notes:        p.Notes,
	}
}

// ProductEnvelope wraps a single product response.
type ProductEnvelope struct {
	Product      Product `json:"Product"`
	IsSuccess    bool    `json:"IsSuccess"`
	ErrorMessage *string `json:"ErrorMessage"`
}

// ProductsEnvelope wraps the unpaginated products listing.
type ProductsEnvelope struct {
	Products     []Product `json:"Products"`
	IsSuccess    bool      `json:"IsSuccess"`
	ErrorMessage *string   `json:"ErrorMessage"`
}

// ProductListEnvelope wraps the paginated, filterable products listing.
type ProductListEnvelope struct {
	Products     []Product      `json:"Products"`
	Total        int            `json:"total"`
	Page         int            `json:"page"`
	Limit        int            `json:"limit"`
	Search       string         `json:"search"`
	Manufacturer []Manufacturer `json:"manufacturer"`
	Sorting      Sorting        `json:"sorting"`
	IsSuccess    bool           `json:"IsSuccess"`
	ErrorMessage *string        `json:"ErrorMessage"`
}
