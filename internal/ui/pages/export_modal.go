package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Export field label to checkbox value, one mapper per listing.
var (
	ProductsExportFields = map[string]string{
		"Select All":   "selectAll",
		"Name":         "product_name",
		"Price":        "product_price",
		"Manufacturer": "product_manufacturer",
		"Amount":       "product_amount",
		"Created On":   "product_createdOn",
		"Notes":        "product_notes",
	}
	CustomersExportFields = map[string]string{
		"Select All": "selectAll",
		"Email":      "customer_email",
		"Name":       "customer_name",
		"Country":    "customer_country",
		"City":       "customer_city",
		"Street":     "customer_street",
		"House":      "customer_house",
		"Flat":       "customer_flat",
		"Phone":      "customer_phone",
		"Created On": "customer_createdOn",
	}
	OrdersExportFields = map[string]string{
		"Select All":       "selectAll",
		"Status":           "status",
		"Total Price":      "total_price",
		"Delivery":         "delivery",
		"Customer":         "customer",
		"Products":         "products",
		"Assigned Manager": "assignedManager",
		"Created On":       "createdOn",
	}
)

// ExportModal is the download dialog with format radios (CSV or JSON) and
// field checkboxes.
type ExportModal struct {
	Base
	fields map[string]string
}

func NewExportModal(page playwright.Page, baseURL string, fields map[string]string) *ExportModal {
	return &ExportModal{
		Base:   Base{Page: page, BaseURL: baseURL},
		fields: fields,
	}
}

func (m *ExportModal) Root() playwright.Locator {
	return m.Page.Locator("#exportModal")
}

func (m *ExportModal) SelectAllCheckbox() playwright.Locator {
	return m.Root().Locator("#select-all-fields")
}

func (m *ExportModal) DownloadButton() playwright.Locator {
	return m.Root().Locator("#export-button")
}

func (m *ExportModal) CancelButton() playwright.Locator {
	return m.Root().Locator("button.btn-secondary")
}

func (m *ExportModal) FormatRadio(format string) playwright.Locator {
	id := map[string]string{"CSV": "exportCsv", "JSON": "exportJson"}[format]
	return m.Root().Locator("#" + id)
}

func (m *ExportModal) FieldCheckbox(label string) (playwright.Locator, error) {
	value, ok := m.fields[label]
	if !ok {
		return nil, fmt.Errorf("unknown export field %q", label)
	}
	return m.Root().Locator("#fields-checkboxes").Locator(fmt.Sprintf(`input[value=%q]`, value)), nil
}

// CheckField toggles one field checkbox.
func (m *ExportModal) CheckField(label string, checked bool) error {
	box, err := m.FieldCheckbox(label)
	if err != nil {
		return err
	}
	if checked {
		return box.Check()
	}
	return box.Uncheck()
}

// CheckFields checks every listed field.
func (m *ExportModal) CheckFields(labels ...string) error {
	for _, label := range labels {
		if err := m.CheckField(label, true); err != nil {
			return err
		}
	}
	return nil
}

// SelectFormat picks CSV or JSON. Falls back to the label when the radio is
// covered by styling.
func (m *ExportModal) SelectFormat(format string) error {
	radio := m.FormatRadio(format)
	count, err := radio.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return radio.Check()
	}
	id := map[string]string{"CSV": "exportCsv", "JSON": "exportJson"}[format]
	return m.Root().Locator(fmt.Sprintf(`label[for=%q]`, id)).Click()
}

// Download clicks the download button and returns the resulting download.
func (m *ExportModal) Download() (playwright.Download, error) {
	download, err := m.Page.ExpectDownload(func() error {
		return m.DownloadButton().Click()
	})
	if err != nil {
		return nil, fmt.Errorf("export download: %w", err)
	}
	return download, nil
}

func (m *ExportModal) Cancel() error {
	return m.CancelButton().Click()
}
