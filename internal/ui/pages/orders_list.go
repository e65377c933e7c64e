package pages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/salesportal-qa/sales-portal-tests/internal/models"
)

// ordersHeaderText maps the sortable order fields to the rendered header text.
var ordersHeaderText = map[string]string{
	"_id":             "Order Number",
	"email":           "Email",
	"price":           "Price",
	"delivery":        "Delivery",
	"status":          "Status",
	"assignedManager": "Assigned Manager",
	"createdOn":       "Created On",
}

// OrderRow is one row of the orders table as rendered.
type OrderRow struct {
	OrderID         string
	Email           string
	Price           float64
	Delivery        string
	Status          models.OrderStatus
	AssignedManager string
	CreatedOn       string
}

// OrdersListPage is the orders table with search, sorting, export and the
// create order entry point.
type OrdersListPage struct {
	Base
	NavBar           *NavBar
	CreateOrderModal *CreateOrderModal
	ExportModal      *ExportModal
}

func NewOrdersListPage(page playwright.Page, baseURL string) *OrdersListPage {
	return &OrdersListPage{
		Base:             Base{Page: page, BaseURL: baseURL},
		NavBar:           NewNavBar(page, baseURL),
		CreateOrderModal: NewCreateOrderModal(page, baseURL),
		ExportModal:      NewExportModal(page, baseURL, OrdersExportFields),
	}
}

func (p *OrdersListPage) CreateOrderButton() playwright.Locator {
	return p.Page.Locator(`[name="add-button"]`)
}

func (p *OrdersListPage) Title() playwright.Locator {
	return p.Page.Locator("h2.fw-bold")
}

func (p *OrdersListPage) TableRows() playwright.Locator {
	return p.Page.Locator("tbody tr")
}

func (p *OrdersListPage) RowByNumber(orderNumber string) playwright.Locator {
	return p.Page.Locator("table tbody tr", playwright.PageLocatorOptions{
		Has: p.Page.Locator("td", playwright.PageLocatorOptions{HasText: orderNumber}),
	})
}

func (p *OrdersListPage) StatusCell(orderNumber string) playwright.Locator {
	return p.RowByNumber(orderNumber).Locator("td").Nth(4)
}

func (p *OrdersListPage) AssignedManagerCell(orderNumber string) playwright.Locator {
	return p.RowByNumber(orderNumber).Locator("td").Nth(5)
}

func (p *OrdersListPage) TableHeader(field string) playwright.Locator {
	return p.Page.Locator(`thead th div[onclick*="sortOrdersInTable"]`,
		playwright.PageLocatorOptions{HasText: ordersHeaderText[field]})
}

func (p *OrdersListPage) TableHeaderArrow(field, direction string) playwright.Locator {
	arrowClass := "bi-arrow-down"
	if direction == "desc" {
		arrowClass = "bi-arrow-up"
	}
	return p.Page.Locator("thead th", playwright.PageLocatorOptions{
		Has: p.Page.Locator("div", playwright.PageLocatorOptions{HasText: ordersHeaderText[field]}),
	}).Locator("i." + arrowClass)
}

func (p *OrdersListPage) DetailsButton(orderNumber string) playwright.Locator {
	return p.RowByNumber(orderNumber).GetByTitle("Details", playwright.LocatorGetByTitleOptions{
		Exact: playwright.Bool(true),
	})
}

func (p *OrdersListPage) ReopenButton(orderNumber string) playwright.Locator {
	return p.RowByNumber(orderNumber).GetByTitle("Reopen")
}

func (p *OrdersListPage) SearchInput() playwright.Locator {
	return p.Page.Locator("#search")
}

func (p *OrdersListPage) SearchButton() playwright.Locator {
	return p.Page.Locator("#search-orders")
}

func (p *OrdersListPage) ExportButton() playwright.Locator {
	return p.Page.Locator("#export")
}

func (p *OrdersListPage) WaitForLoaded() error {
	return p.WaitForOpened(p.CreateOrderButton())
}

func (p *OrdersListPage) ClickCreateOrder() (*CreateOrderModal, error) {
	if err := p.CreateOrderButton().Click(); err != nil {
		return nil, err
	}
	return p.CreateOrderModal, nil
}

// RowData reads one order row and parses the rendered cells.
func (p *OrdersListPage) RowData(orderNumber string) (OrderRow, error) {
	cells, err := p.RowByNumber(orderNumber).Locator("td").AllInnerTexts()
	if err != nil {
		return OrderRow{}, fmt.Errorf("read order row %q: %w", orderNumber, err)
	}
	return parseOrderRow(cells)
}

// TableData reads every order row currently in the table.
func (p *OrdersListPage) TableData() ([]OrderRow, error) {
	rows, err := p.TableRows().All()
	if err != nil {
		return nil, err
	}
	data := make([]OrderRow, 0, len(rows))
	for _, row := range rows {
		cells, err := row.Locator("td").AllInnerTexts()
		if err != nil {
			return nil, err
		}
		parsed, err := parseOrderRow(cells)
		if err != nil {
			return nil, err
		}
		data = append(data, parsed)
	}
	return data, nil
}

func parseOrderRow(cells []string) (OrderRow, error) {
	if len(cells) < 7 {
		return OrderRow{}, fmt.Errorf("order row has %d cells, want 7", len(cells))
	}
	price, err := strconv.ParseFloat(strings.TrimPrefix(cells[2], "$"), 64)
	if err != nil {
		return OrderRow{}, fmt.Errorf("parse order price %q: %w", cells[2], err)
	}
	return OrderRow{
		OrderID:         cells[0],
		Email:           cells[1],
		Price:           price,
		Delivery:        cells[3],
		Status:          models.OrderStatus(cells[4]),
		AssignedManager: cells[5],
		CreatedOn:       cells[6],
	}, nil
}

func (p *OrdersListPage) ClickAction(orderNumber, action string) error {
	switch action {
	case "details":
		return p.DetailsButton(orderNumber).Click()
	case "reopen":
		return p.ReopenButton(orderNumber).Click()
	default:
		return fmt.Errorf("unknown row action %q", action)
	}
}

func (p *OrdersListPage) ClickTableHeader(field string) error {
	return p.TableHeader(field).Click()
}

func (p *OrdersListPage) Search(text string) error {
	if err := p.SearchInput().Fill(text); err != nil {
		return err
	}
	return p.SearchButton().Click()
}

func (p *OrdersListPage) OpenExportModal() error {
	if err := p.ExportButton().Click(); err != nil {
		return err
	}
	return p.ExportModal.CheckFields(
		"Status", "Total Price", "Delivery", "Customer", "Products", "Assigned Manager", "Created On",
	)
}
