package pages

import (
	"fmt"
	"strconv"

	"github.com/playwright-community/playwright-go"

	"github.com/salesportal-qa/sales-portal-tests/internal/models"
)

// CustomersListPage is the customers table with search, sorting, export and
// per-row actions.
type CustomersListPage struct {
	Base
	NavBar       *NavBar
	DetailsModal *CustomerDetailsModal
	DeleteModal  *ConfirmationModal
	ExportModal  *ExportModal
}

func NewCustomersListPage(page playwright.Page, baseURL string) *CustomersListPage {
	return &CustomersListPage{
		Base:         Base{Page: page, BaseURL: baseURL},
		NavBar:       NewNavBar(page, baseURL),
		DetailsModal: NewCustomerDetailsModal(page, baseURL),
		DeleteModal:  NewConfirmationModal(page, baseURL),
		ExportModal:  NewExportModal(page, baseURL, CustomersExportFields),
	}
}

func (p *CustomersListPage) AddNewCustomerButton() playwright.Locator {
	return p.Page.Locator(`[name="add-button"]`)
}

func (p *CustomersListPage) Title() playwright.Locator {
	return p.Page.Locator("h2.fw-bold")
}

func (p *CustomersListPage) TableRows() playwright.Locator {
	return p.Page.Locator("tbody tr")
}

// RowByEmail finds a table row containing the given email.
func (p *CustomersListPage) RowByEmail(email string) playwright.Locator {
	return p.Page.Locator("table tbody tr", playwright.PageLocatorOptions{
		Has: p.Page.Locator("td", playwright.PageLocatorOptions{HasText: email}),
	})
}

func (p *CustomersListPage) EmailCell(email string) playwright.Locator {
	return p.RowByEmail(email).Locator("td").Nth(0)
}

func (p *CustomersListPage) NameCell(email string) playwright.Locator {
	return p.RowByEmail(email).Locator("td").Nth(1)
}

func (p *CustomersListPage) CountryCell(email string) playwright.Locator {
	return p.RowByEmail(email).Locator("td").Nth(2)
}

func (p *CustomersListPage) SearchInput() playwright.Locator {
	return p.Page.Locator("#search")
}

func (p *CustomersListPage) SearchButton() playwright.Locator {
	return p.Page.Locator("#search-customers")
}

func (p *CustomersListPage) ExportButton() playwright.Locator {
	return p.Page.Locator(`button[name="export-button"]`)
}

func (p *CustomersListPage) WaitForLoaded() error {
	return p.WaitForOpened(p.AddNewCustomerButton())
}

func (p *CustomersListPage) ClickAddNewCustomer() error {
	return p.AddNewCustomerButton().Click()
}

// RowData reads one customer row: email, name, country, created on.
func (p *CustomersListPage) RowData(email string) ([]string, error) {
	cells, err := p.RowByEmail(email).Locator("td").AllInnerTexts()
	if err != nil {
		return nil, fmt.Errorf("read customer row %q: %w", email, err)
	}
	return cells, nil
}

// ClickAction clicks the edit, details or delete button on a row.
func (p *CustomersListPage) ClickAction(email, action string) error {
	switch action {
	case "edit":
		return p.RowByEmail(email).GetByTitle("Edit").Click()
	case "details":
		return p.RowByEmail(email).GetByTitle("Details").Click()
	case "delete":
		return p.RowByEmail(email).GetByTitle("Delete").Click()
	default:
		return fmt.Errorf("unknown row action %q", action)
	}
}

func (p *CustomersListPage) Search(text string) error {
	if err := p.SearchInput().Fill(text); err != nil {
		return err
	}
	return p.SearchButton().Click()
}

// OpenExportModal opens the export dialog and pre-checks the default
// customer columns.
func (p *CustomersListPage) OpenExportModal() error {
	if err := p.ExportButton().Click(); err != nil {
		return err
	}
	return p.ExportModal.CheckFields(
		"Email", "Name", "Country", "City", "Street", "House", "Flat", "Phone", "Created On",
	)
}

// CustomerDetailsModal is the read-only customer dialog.
type CustomerDetailsModal struct {
	Base
}

func NewCustomerDetailsModal(page playwright.Page, baseURL string) *CustomerDetailsModal {
	return &CustomerDetailsModal{Base{Page: page, BaseURL: baseURL}}
}

func (m *CustomerDetailsModal) Root() playwright.Locator {
	return m.Page.Locator("#CustomerDetailsModal")
}

// AddCustomerPage is the create-customer form.
type AddCustomerPage struct {
	Base
}

func NewAddCustomerPage(page playwright.Page, baseURL string) *AddCustomerPage {
	return &AddCustomerPage{Base{Page: page, BaseURL: baseURL}}
}

func (p *AddCustomerPage) Title() playwright.Locator {
	return p.Page.Locator("h2.page-title-text")
}

func (p *AddCustomerPage) EmailInput() playwright.Locator   { return p.Page.Locator("#inputEmail") }
func (p *AddCustomerPage) NameInput() playwright.Locator    { return p.Page.Locator("#inputName") }
func (p *AddCustomerPage) CountrySelect() playwright.Locator { return p.Page.Locator("#inputCountry") }
func (p *AddCustomerPage) CityInput() playwright.Locator    { return p.Page.Locator("#inputCity") }
func (p *AddCustomerPage) StreetInput() playwright.Locator  { return p.Page.Locator("#inputStreet") }
func (p *AddCustomerPage) HouseInput() playwright.Locator   { return p.Page.Locator("#inputHouse") }
func (p *AddCustomerPage) FlatInput() playwright.Locator    { return p.Page.Locator("#inputFlat") }
func (p *AddCustomerPage) PhoneInput() playwright.Locator   { return p.Page.Locator("#inputPhone") }
func (p *AddCustomerPage) NotesInput() playwright.Locator   { return p.Page.Locator("#textareaNotes") }

func (p *AddCustomerPage) SaveButton() playwright.Locator {
	return p.Page.Locator("#save-new-customer")
}

func (p *AddCustomerPage) WaitForLoaded() error {
	return p.WaitForOpened(p.Title())
}

// FillForm fills only non-zero fields, so validation cases can leave inputs
// blank.
func (p *AddCustomerPage) FillForm(customer models.CustomerInput) error {
	steps := []struct {
		value string
		fill  func() error
	}{
		{customer.Name, func() error { return p.NameInput().Fill(customer.Name) }},
		{customer.Email, func() error { return p.EmailInput().Fill(customer.Email) }},
		{string(customer.Country), func() error {
			_, err := p.CountrySelect().SelectOption(playwright.SelectOptionValues{
				Values: &[]string{string(customer.Country)},
			})
			return err
		}},
		{customer.City, func() error { return p.CityInput().Fill(customer.City) }},
		{customer.Street, func() error { return p.StreetInput().Fill(customer.Street) }},
		{customer.Phone, func() error { return p.PhoneInput().Fill(customer.Phone) }},
		{customer.Notes, func() error { return p.NotesInput().Fill(customer.Notes) }},
	}
	for _, s := range steps {
		if s.value == "" {
			continue
		}
		if err := s.fill(); err != nil {
			return err
		}
	}
	if customer.House != 0 {
		if err := p.HouseInput().Fill(strconv.Itoa(customer.House)); err != nil {
			return err
		}
	}
	if customer.Flat != 0 {
		if err := p.FlatInput().Fill(strconv.Itoa(customer.Flat)); err != nil {
			return err
		}
	}
	return nil
}

func (p *AddCustomerPage) ClickSave() error {
	return p.SaveButton().Click()
}
