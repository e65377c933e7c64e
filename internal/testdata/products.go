package testdata

import (
	"net/http"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/salesportal-qa/sales-portal-tests/internal/models"
)

// ProductCase is one data-driven case for product create and update.
type ProductCase struct {
	Case
	Body any
}

func productWith(mutate func(*models.ProductInput)) models.ProductInput {
	p := Product()
	mutate(&p)
	return p
}

func positiveProduct(name string, mutate func(*models.ProductInput)) ProductCase {
	return ProductCase{
		Case: Case{Name: name, Status: http.StatusCreated, IsSuccess: true},
		Body: productWith(mutate),
	}
}

func negativeProduct(name string, body any) ProductCase {
	return ProductCase{
		Case: Case{
			Name:         name,
			Status:       http.StatusBadRequest,
			IsSuccess:    false,
			ErrorMessage: errMsg(models.ErrIncorrectBody),
		},
		Body: body,
	}
}

// CreateProductPositiveCases covers the boundary values of every product
// field.
func CreateProductPositiveCases() []ProductCase {
	return []ProductCase{
		positiveProduct("name 3 chars", func(p *models.ProductInput) { p.Name = gofakeit.LetterN(3) }),
		positiveProduct("name 40 chars", func(p *models.ProductInput) { p.Name = gofakeit.LetterN(40) }),
		positiveProduct("name with space", func(p *models.ProductInput) { p.Name = "Test Product" }),
		positiveProduct("price min", func(p *models.ProductInput) { p.Price = 1 }),
		positiveProduct("price max", func(p *models.ProductInput) { p.Price = 99999 }),
		positiveProduct("amount min", func(p *models.ProductInput) { p.Amount = 0 }),
		positiveProduct("amount max", func(p *models.ProductInput) { p.Amount = 999 }),
		positiveProduct("notes 250 chars", func(p *models.ProductInput) { p.Notes = gofakeit.LetterN(250) }),
		positiveProduct("notes empty", func(p *models.ProductInput) { p.Notes = "" }),
		{
			Case: Case{Name: "notes omitted", Status: http.StatusCreated, IsSuccess: true},
			Body: Payload(Product(), "notes"),
		},
	}
}

// CreateProductNegativeCases covers out-of-range values and missing fields,
// all rejected with 400.
func CreateProductNegativeCases() []ProductCase {
	return []ProductCase{
		negativeProduct("name too short", productWith(func(p *models.ProductInput) { p.Name = gofakeit.LetterN(2) })),
		negativeProduct("name too long", productWith(func(p *models.ProductInput) { p.Name = gofakeit.LetterN(41) })),
		negativeProduct("name missing", Payload(Product(), "name")),
		negativeProduct("name double space", productWith(func(p *models.ProductInput) { p.Name = "Test  Product" })),
		negativeProduct("price zero", productWith(func(p *models.ProductInput) { p.Price = 0 })),
		negativeProduct("price above max", productWith(func(p *models.ProductInput) { p.Price = 100000 })),
		negativeProduct("price negative", productWith(func(p *models.ProductInput) { p.Price = -5 })),
		negativeProduct("price missing", Payload(Product(), "price")),
		negativeProduct("amount above max", productWith(func(p *models.ProductInput) { p.Amount = 1000 })),
		negativeProduct("amount negative", productWith(func(p *models.ProductInput) { p.Amount = -1 })),
		negativeProduct("amount missing", Payload(Product(), "amount")),
		negativeProduct("manufacturer missing", Payload(Product(), "manufacturer")),
		negativeProduct("manufacturer unknown", func() map[string]any {
			m := Payload(Product())
			m["manufacturer"] = "Nokia"
			return m
		}()),
		negativeProduct("notes too long", productWith(func(p *models.ProductInput) {
			p.Notes = gofakeit.LetterN(251)
		})),
		negativeProduct("notes with angle brackets", productWith(func(p *models.ProductInput) {
			p.Notes = "Notes with <b>markup</b>"
		})),
	}
}

// UpdateProductPositiveCases reuses the create boundaries for PUT,
// expecting 200.
func UpdateProductPositiveCases() []ProductCase {
	cases := CreateProductPositiveCases()
	for i := range cases {
		cases[i].Status = http.StatusOK
	}
	return cases
}

func UpdateProductNegativeCases() []ProductCase {
	return CreateProductNegativeCases()
}

// LongProductName is handy for UI validation checks.
func LongProductName() string {
	return strings.Repeat("P", 41)
}
