package models

// CustomerInput is the request body for creating or updating a customer.
type CustomerInput struct {
	Email   string  `json:"email"`
	Name    string  `json:"name"`
	Country Country `json:"country"`
	City    string  `json:"city"`
	Street  string  `json:"street"`
	House   int     `json:"house"`
	Flat    int     `json:"flat"`
	Phone   string  `json:"phone"`
	Notes   string  `json:"notes"`
}

// Customer is a customer entity as the backend returns it.
type Customer struct {
	ID        string  `json:"_id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Country   Country `json:"country"`
	City      string  `json:"city"`
	Street    string  `json:"street"`
	House     int     `json:"house"`
	Flat      int     `json:"flat"`
	Phone     string  `json:"phone"`
	Notes     string  `json:"notes,omitempty"`
	CreatedOn string  `json:"createdOn"`
}

// Input projects the entity back into a request body, useful for
// update-with-overrides flows.
func (c Customer) Input() CustomerInput {
	return CustomerInput{
		Email:   c.Email,
		Name:    c.Name,
		Country: c.Country,
		City:    c.City,
		Street:  c.Street,
		House:   c.House,
		Flat:    c.Flat,
		Phone:   c.Phone,
		Notes:   c.Notes,
	}
}

// CustomerEnvelope wraps a single customer response.
type CustomerEnvelope struct {
	Customer     Customer `json:"Customer"`
	IsSuccess    bool     `json:"IsSuccess"`
	ErrorMessage *string  `json:"ErrorMessage"`
}

// CustomersEnvelope wraps the unpaginated customers listing.
type CustomersEnvelope struct {
	Customers    []Customer `json:"Customers"`
	IsSuccess    bool       `json:"IsSuccess"`
	ErrorMessage *string    `json:"ErrorMessage"`
}

// CustomerListEnvelope wraps the paginated, filterable customers listing.
type CustomerListEnvelope struct {
	Customers    []Customer `json:"Customers"`
	Total        int        `json:"total"`
	Page         int        `json:"page"`
	Limit        int        `json:"limit"`
	Search       string     `json:"search"`
	Country      []Country  `json:"country"`
	Sorting      Sorting    `json:"sorting"`
	IsSuccess    bool       `json:"IsSuccess"`
	ErrorMessage *string    `json:"ErrorMessage"`
}
