// Package testdata generates randomized entities and holds the data-driven
// case tables the suites iterate over.
package testdata

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/salesportal-qa/sales-portal-tests/internal/models"
)

var (
	nonLetters     = regexp.MustCompile(`[^A-Za-z ]+`)
	nonAlphaNum    = regexp.MustCompile(`[^A-Za-z0-9 ]+`)
	multipleSpaces = regexp.MustCompile(`\s{2,}`)
)

// OnlyLetters strips everything but letters and single spaces, then trims
// to maxLen. Faker output can contain characters the portal rejects.
func OnlyLetters(text string, maxLen int) string {
	cleaned := nonLetters.ReplaceAllString(text, " ")
	cleaned = strings.TrimSpace(multipleSpaces.ReplaceAllString(cleaned, " "))
	if cleaned == "" {
		cleaned = "John"
	}
	if len(cleaned) > maxLen {
		cleaned = strings.TrimSpace(cleaned[:maxLen])
	}
	return cleaned
}

// AlphaNumSpace strips everything but letters, digits and single spaces,
// then trims to maxLen.
func AlphaNumSpace(text string, maxLen int) string {
	cleaned := nonAlphaNum.ReplaceAllString(text, " ")
	cleaned = strings.TrimSpace(multipleSpaces.ReplaceAllString(cleaned, " "))
	if cleaned == "" {
		cleaned = "Main"
	}
	if len(cleaned) > maxLen {
		cleaned = strings.TrimSpace(cleaned[:maxLen])
	}
	return cleaned
}

// ObjectID returns a random 24-hex-char id in the backend's id format.
// Handy for not-found negative cases alongside uuid-based invalid ids.
func ObjectID() string {
	const hex = "0123456789abcdef"
	b := make([]byte, 24)
	for i := range b {
		b[i] = hex[rand.Intn(len(hex))]
	}
	return string(b)
}

func randomCountry() models.Country {
	countries := models.Countries()
	return countries[rand.Intn(len(countries))]
}

func randomManufacturer() models.Manufacturer {
	manufacturers := models.Manufacturers()
	return manufacturers[rand.Intn(len(manufacturers))]
}

// Customer generates a valid random customer request body. Mutate fields on
// the returned value to build override cases.
func Customer() models.CustomerInput {
	return models.CustomerInput{
		Email:   strings.ReplaceAll(gofakeit.Email(), " ", ""),
		Name:    OnlyLetters(gofakeit.FirstName()+" "+gofakeit.LastName(), 40),
		Country: randomCountry(),
		City:    OnlyLetters(gofakeit.City(), 20),
		Street:  AlphaNumSpace(fmt.Sprintf("%s %d", gofakeit.Street(), gofakeit.Number(1, 99)), 40),
		House:   gofakeit.Number(1, 999),
		Flat:    gofakeit.Number(1, 9999),
		Phone:   "+" + gofakeit.DigitN(15),
		Notes:   gofakeit.LetterN(30),
	}
}

// CustomerResponse generates a customer entity as it would appear in an API
// response, for mocked UI flows.
func CustomerResponse() models.Customer {
	base := Customer()
	return models.Customer{
		ID:        ObjectID(),
		Email:     base.Email,
		Name:      base.Name,
		Country:   base.Country,
		City:      base.City,
		Street:    base.Street,
		House:     base.House,
		Flat:      base.Flat,
		Phone:     base.Phone,
		Notes:     base.Notes,
		CreatedOn: time.Now().UTC().Format(time.RFC3339),
	}
}

// Product generates a valid random product request body. The numeric suffix
// keeps names unique across runs.
func Product() models.ProductInput {
	return models.ProductInput{
		Name:         gofakeit.HackerNoun() + fmt.Sprint(gofakeit.Number(1, 100000)),
		Manufacturer: randomManufacturer(),
		Price:        gofakeit.Number(1, 99999),
		Amount:       gofakeit.Number(0, 999),
		Notes:        gofakeit.LetterN(250),
	}
}

// ProductResponse generates a product entity as it would appear in an API
// response.
func ProductResponse() models.Product {
	base := Product()
	return models.Product{
		ID:           ObjectID(),
		Name:         base.Name,
		Manufacturer: base.Manufacturer,
		Price:        base.Price,
		Amount:       base.Amount,
		Notes:        base.Notes,
		CreatedOn:    time.Now().UTC().Format(time.RFC3339),
	}
}

// OrderProduct generates a product snapshot inside an order, not yet
// received.
func OrderProduct() models.OrderProduct {
	base := ProductResponse()
	return models.OrderProduct{
		ID:           base.ID,
		Name:         base.Name,
		Manufacturer: base.Manufacturer,
		Price:        base.Price,
		Amount:       base.Amount,
		Notes:        base.Notes,
		Received:     false,
	}
}

// Delivery generates a delivery scheduled 7 days out, in the YYYY/MM/DD
// format the backend expects.
func Delivery() models.DeliveryInfo {
	return models.DeliveryInfo{
		FinalDate: FinalDate(7),
		Condition: models.ConditionDelivery,
		Address: models.DeliveryAddress{
			Country: randomCountry(),
			City:    OnlyLetters(gofakeit.City(), 20),
			Street:  AlphaNumSpace(gofakeit.Street(), 40),
			House:   gofakeit.Number(1, 999),
			Flat:    gofakeit.Number(1, 9999),
		},
	}
}

// FinalDate formats a date the given number of days from now the way the
// delivery endpoint expects.
func FinalDate(daysFromNow int) string {
	return time.Now().AddDate(0, 0, daysFromNow).Format("2006/01/02")
}

// Order generates a full order entity for route mocking in UI tests.
func Order() models.Order {
	delivery := Delivery()
	statuses := models.OrderStatuses()
	return models.Order{
		ID:              ObjectID(),
		Status:          statuses[rand.Intn(len(statuses))],
		Customer:        CustomerResponse(),
		Products:        []models.OrderProduct{OrderProduct()},
		Delivery:        &delivery,
		TotalPrice:      float64(gofakeit.Number(1, 99999)),
		Comments:        []models.Comment{},
		History:         []models.HistoryEntry{},
		AssignedManager: nil,
		CreatedOn:       time.Now().UTC().Format(time.RFC3339),
	}
}

// Comment generates a random order comment entity.
func Comment() models.Comment {
	return models.Comment{
		ID:        ObjectID(),
		Text:      gofakeit.Sentence(6),
		CreatedOn: time.Now().UTC().Format(time.RFC3339),
	}
}
