package testdata

import (
	"net/http"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/salesportal-qa/sales-portal-tests/internal/models"
)

// DeliveryCase is one data-driven case for scheduling an order delivery.
type DeliveryCase struct {
	Case
	Body any
}

func deliveryWith(mutate func(*models.DeliveryInfo)) models.DeliveryInfo {
	d := Delivery()
	mutate(&d)
	return d
}

func positiveDelivery(name string, mutate func(*models.DeliveryInfo)) DeliveryCase {
	return DeliveryCase{
		Case: Case{Name: name, Status: http.StatusOK, IsSuccess: true},
		Body: deliveryWith(mutate),
	}
}

func negativeDelivery(name, message string, body any) DeliveryCase {
	return DeliveryCase{
		Case: Case{
			Name:         name,
			Status:       http.StatusBadRequest,
			IsSuccess:    false,
			ErrorMessage: errMsg(message),
		},
		Body: body,
	}
}

// deliveryWithoutAddressField drops one key from the nested address block.
func deliveryWithoutAddressField(field string) map[string]any {
	m := Payload(Delivery())
	if addr, ok := m["address"].(map[string]any); ok {
		delete(addr, field)
	}
	return m
}

func ScheduleDeliveryPositiveCases() []DeliveryCase {
	return []DeliveryCase{
		positiveDelivery("all required fields", func(*models.DeliveryInfo) {}),
		positiveDelivery("pickup condition", func(d *models.DeliveryInfo) {
			d.Condition = models.ConditionPickup
		}),
		positiveDelivery("far future date", func(d *models.DeliveryInfo) {
			d.FinalDate = FinalDate(365)
		}),
		positiveDelivery("city 1 char", func(d *models.DeliveryInfo) {
			d.Address.City = "A"
		}),
	}
}

func ScheduleDeliveryNegativeCases() []DeliveryCase {
	return []DeliveryCase{
		// missing fields
		negativeDelivery("missing final date", models.ErrIncorrectBody, Payload(Delivery(), "finalDate")),
		negativeDelivery("missing condition", models.ErrIncorrectBody, Payload(Delivery(), "condition")),
		negativeDelivery("missing address", models.ErrIncorrectBody, Payload(Delivery(), "address")),
		negativeDelivery("missing address country", models.ErrIncorrectBody, deliveryWithoutAddressField("country")),

		// invalid values
		negativeDelivery("invalid condition", models.ErrIncorrectBody, func() map[string]any {
			m := Payload(Delivery())
			m["condition"] = "Express"
			return m
		}()),
		negativeDelivery("invalid date format", models.ErrInvalidFinalDate, deliveryWith(func(d *models.DeliveryInfo) {
			d.FinalDate = "15-01-2026"
		})),
		negativeDelivery("past date", models.ErrIncorrectBody, deliveryWith(func(d *models.DeliveryInfo) {
			d.FinalDate = FinalDate(-30)
		})),

		// address validation
		negativeDelivery("house negative", models.ErrIncorrectDelivery, deliveryWith(func(d *models.DeliveryInfo) {
			d.Address.House = -1
		})),
		negativeDelivery("flat zero", models.ErrIncorrectDelivery, deliveryWith(func(d *models.DeliveryInfo) {
			d.Address.Flat = 0
		})),
		negativeDelivery("city empty", models.ErrIncorrectDelivery, deliveryWith(func(d *models.DeliveryInfo) {
			d.Address.City = ""
		})),
		negativeDelivery("street empty", models.ErrIncorrectDelivery, deliveryWith(func(d *models.DeliveryInfo) {
			d.Address.Street = ""
		})),

		// boundaries
		negativeDelivery("city 21 chars", models.ErrIncorrectDelivery, deliveryWith(func(d *models.DeliveryInfo) {
			d.Address.City = gofakeit.LetterN(21)
		})),
		negativeDelivery("street 41 chars", models.ErrIncorrectDelivery, deliveryWith(func(d *models.DeliveryInfo) {
			d.Address.Street = gofakeit.LetterN(41)
		})),
		negativeDelivery("house above max", models.ErrIncorrectDelivery, deliveryWith(func(d *models.DeliveryInfo) {
			d.Address.House = 1000
		})),

		// special characters
		negativeDelivery("street special chars", models.ErrIncorrectDelivery, deliveryWith(func(d *models.DeliveryInfo) {
			d.Address.Street = "!@#$%^&*Street!@#$%^&*"
		})),
		negativeDelivery("city unicode", models.ErrIncorrectDelivery, deliveryWith(func(d *models.DeliveryInfo) {
			d.Address.City = "北京市"
		})),
	}
}
