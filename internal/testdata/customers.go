package testdata

import (
	"net/http"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/salesportal-qa/sales-portal-tests/internal/models"
)

// CustomerCase is one data-driven case for customer create and update.
// Body is the request payload, already shaped for positive or negative use.
type CustomerCase struct {
	Case
	Body any
}

func customerWith(mutate func(*models.CustomerInput)) models.CustomerInput {
	c := Customer()
	mutate(&c)
	return c
}

func positiveCustomer(name string, mutate func(*models.CustomerInput)) CustomerCase {
	return CustomerCase{
		Case: Case{Name: name, Status: http.StatusCreated, IsSuccess: true},
		Body: customerWith(mutate),
	}
}

func negativeCustomer(name string, body any) CustomerCase {
	return CustomerCase{
		Case: Case{
			Name:         name,
			Status:       http.StatusBadRequest,
			IsSuccess:    false,
			ErrorMessage: errMsg(models.ErrIncorrectBody),
		},
		Body: body,
	}
}

// CreateCustomerPositiveCases covers the boundary values of every customer
// field. Cases are regenerated per call so repeated runs stay unique.
func CreateCustomerPositiveCases() []CustomerCase {
	return []CustomerCase{
		positiveCustomer("name 1 char", func(c *models.CustomerInput) { c.Name = "K" }),
		positiveCustomer("name 40 chars", func(c *models.CustomerInput) {
			c.Name = "Alexandria Catherine Montgomery Smith Jr"
		}),
		positiveCustomer("name uppercase", func(c *models.CustomerInput) { c.Name = "STESHA" }),
		positiveCustomer("email uppercase", func(c *models.CustomerInput) { c.Email = "DONNY.BLACK@TEST.COM" }),
		positiveCustomer("city 1 char", func(c *models.CustomerInput) { c.City = "M" }),
		positiveCustomer("city 20 chars", func(c *models.CustomerInput) { c.City = "Nolagthiosd Ghdipiso" }),
		positiveCustomer("city uppercase", func(c *models.CustomerInput) { c.City = "TORONTO" }),
		positiveCustomer("street 1 char", func(c *models.CustomerInput) { c.Street = "J" }),
		positiveCustomer("street 40 chars", func(c *models.CustomerInput) {
			c.Street = "Alexandria Catherine Montgomery Smith Jr"
		}),
		positiveCustomer("street uppercase", func(c *models.CustomerInput) { c.Street = "SAINT JAMES" }),
		positiveCustomer("house min", func(c *models.CustomerInput) { c.House = 1 }),
		positiveCustomer("house max", func(c *models.CustomerInput) { c.House = 999 }),
		positiveCustomer("flat min", func(c *models.CustomerInput) { c.Flat = 1 }),
		positiveCustomer("flat max", func(c *models.CustomerInput) { c.Flat = 9999 }),
		positiveCustomer("phone 10 digits", func(c *models.CustomerInput) { c.Phone = "+1234567890" }),
		positiveCustomer("phone 20 digits", func(c *models.CustomerInput) { c.Phone = "+12345678901234567890" }),
		positiveCustomer("notes empty", func(c *models.CustomerInput) { c.Notes = "" }),
		positiveCustomer("notes 250 chars", func(c *models.CustomerInput) { c.Notes = gofakeit.LetterN(250) }),
	}
}

// CreateCustomerNegativeCases covers missing fields, format violations and
// out-of-range values, all rejected with 400.
func CreateCustomerNegativeCases() []CustomerCase {
	return []CustomerCase{
		negativeCustomer("name missing", Payload(Customer(), "name")),
		negativeCustomer("name empty", customerWith(func(c *models.CustomerInput) { c.Name = "" })),
		negativeCustomer("name 41 chars", customerWith(func(c *models.CustomerInput) {
			c.Name = strings.Repeat("a", 41)
		})),
		negativeCustomer("name with numbers", customerWith(func(c *models.CustomerInput) { c.Name = "Sony87" })),
		negativeCustomer("name with underscore", customerWith(func(c *models.CustomerInput) { c.Name = "Dan_99" })),
		negativeCustomer("name double space", customerWith(func(c *models.CustomerInput) { c.Name = "Test  Customer" })),

		negativeCustomer("email missing", Payload(Customer(), "email")),
		negativeCustomer("email empty", customerWith(func(c *models.CustomerInput) { c.Email = "" })),
		negativeCustomer("email without at", customerWith(func(c *models.CustomerInput) { c.Email = "tata.com" })),

		negativeCustomer("country missing", Payload(Customer(), "country")),

		negativeCustomer("city missing", Payload(Customer(), "city")),
		negativeCustomer("city empty", customerWith(func(c *models.CustomerInput) { c.City = "" })),
		negativeCustomer("city with dash", customerWith(func(c *models.CustomerInput) { c.City = "Baden-Baden" })),
		negativeCustomer("city with apostrophe", customerWith(func(c *models.CustomerInput) { c.City = "Kapa'a" })),

		negativeCustomer("street missing", Payload(Customer(), "street")),
		negativeCustomer("street empty", customerWith(func(c *models.CustomerInput) { c.Street = "" })),
		negativeCustomer("street with dash", customerWith(func(c *models.CustomerInput) { c.Street = "Rose-street" })),
		negativeCustomer("street with apostrophe", customerWith(func(c *models.CustomerInput) { c.Street = "Jamie's" })),
		negativeCustomer("street double space", customerWith(func(c *models.CustomerInput) { c.Street = "Test  Street" })),

		negativeCustomer("house missing", Payload(Customer(), "house")),
		negativeCustomer("house too large", customerWith(func(c *models.CustomerInput) { c.House = 100000 })),
		negativeCustomer("house zero", customerWith(func(c *models.CustomerInput) { c.House = 0 })),
		negativeCustomer("house negative", customerWith(func(c *models.CustomerInput) { c.House = -10 })),
		negativeCustomer("house not integer", func() map[string]any {
			m := Payload(Customer())
			m["house"] = gofakeit.LetterN(5)
			return m
		}()),

		negativeCustomer("flat missing", Payload(Customer(), "flat")),
		negativeCustomer("flat too large", customerWith(func(c *models.CustomerInput) { c.Flat = 100000 })),
		negativeCustomer("flat zero", customerWith(func(c *models.CustomerInput) { c.Flat = 0 })),
		negativeCustomer("flat negative", customerWith(func(c *models.CustomerInput) { c.Flat = -10 })),
		negativeCustomer("flat not integer", func() map[string]any {
			m := Payload(Customer())
			m["flat"] = gofakeit.LetterN(5)
			return m
		}()),

		negativeCustomer("phone missing", Payload(Customer(), "phone")),
		negativeCustomer("phone empty", customerWith(func(c *models.CustomerInput) { c.Phone = "" })),
		negativeCustomer("phone too short", customerWith(func(c *models.CustomerInput) { c.Phone = "+12345678" })),
		negativeCustomer("phone too long", customerWith(func(c *models.CustomerInput) {
			c.Phone = "+123456789123456789123"
		})),
		negativeCustomer("phone dash only", customerWith(func(c *models.CustomerInput) { c.Phone = "-" })),
		negativeCustomer("phone without plus", customerWith(func(c *models.CustomerInput) { c.Phone = "12345678910" })),
		negativeCustomer("phone negative", customerWith(func(c *models.CustomerInput) { c.Phone = "-1234567890" })),

		negativeCustomer("notes 251 chars", customerWith(func(c *models.CustomerInput) {
			c.Notes = gofakeit.LetterN(251)
		})),
		negativeCustomer("notes with angle brackets", customerWith(func(c *models.CustomerInput) {
			c.Notes = "Invalid notes with <symbol>"
		})),
	}
}

// UpdateCustomerPositiveCases reuses the create boundaries since PUT applies
// the same validation, expecting 200 instead of 201.
func UpdateCustomerPositiveCases() []CustomerCase {
	cases := CreateCustomerPositiveCases()
	for i := range cases {
		cases[i].Status = http.StatusOK
	}
	return cases
}

// UpdateCustomerNegativeCases mirrors the create negatives for PUT.
func UpdateCustomerNegativeCases() []CustomerCase {
	return CreateCustomerNegativeCases()
}
