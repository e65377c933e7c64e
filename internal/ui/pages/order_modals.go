package pages

import (
	"encoding/json"
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/salesportal-qa/sales-portal-tests/internal/models"
)

// CreateOrderModal is the dialog for creating an order from the orders list.
type CreateOrderModal struct {
	Base
}

func NewCreateOrderModal(page playwright.Page, baseURL string) *CreateOrderModal {
	return &CreateOrderModal{Base{Page: page, BaseURL: baseURL}}
}

func (m *CreateOrderModal) Root() playwright.Locator {
	return m.Page.Locator("#add-order-modal")
}

func (m *CreateOrderModal) Title() playwright.Locator {
	return m.Root().GetByText("Create Order")
}

func (m *CreateOrderModal) CloseButton() playwright.Locator {
	return m.Root().Locator("button.btn-close")
}

func (m *CreateOrderModal) CustomersDropdown() playwright.Locator {
	return m.Root().Locator("#inputCustomerOrder")
}

func (m *CreateOrderModal) ProductsSection() playwright.Locator {
	return m.Root().Locator("#products-section")
}

func (m *CreateOrderModal) ProductsDropdown() playwright.Locator {
	return m.ProductsSection().Locator(`.form-select[name='Product']`)
}

func (m *CreateOrderModal) AddProductButton() playwright.Locator {
	return m.Root().Locator("#add-product-btn")
}

func (m *CreateOrderModal) CreateButton() playwright.Locator {
	return m.Root().Locator("#create-order-btn")
}

func (m *CreateOrderModal) CancelButton() playwright.Locator {
	return m.Root().Locator("#cancel-order-modal-btn")
}

func (m *CreateOrderModal) TotalPrice() playwright.Locator {
	return m.Root().Locator("#total-price-order-modal")
}

func (m *CreateOrderModal) SelectCustomer(name string) error {
	_, err := m.CustomersDropdown().SelectOption(playwright.SelectOptionValues{
		Labels: &[]string{name},
	})
	return err
}

func (m *CreateOrderModal) SelectProduct(index int, name string) error {
	dropdown := m.ProductsDropdown().Nth(index)
	if err := dropdown.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(timeoutShort),
	}); err != nil {
		return err
	}
	_, err := dropdown.SelectOption(playwright.SelectOptionValues{Labels: &[]string{name}})
	return err
}

func (m *CreateOrderModal) ClickAddProduct() error {
	return m.AddProductButton().Click()
}

func (m *CreateOrderModal) DeleteProduct(index int) error {
	return m.ProductsSection().
		Locator("div[data-id]").Nth(index).
		Locator(`button.del-btn-modal[title="Delete"]`).
		Click()
}

func (m *CreateOrderModal) ClickCreate() error {
	return m.CreateButton().Click()
}

func (m *CreateOrderModal) ClickCancel() error {
	return m.CancelButton().Click()
}

func (m *CreateOrderModal) ClickClose() error {
	return m.CloseButton().Click()
}

// CreateOrder selects the customer and products, submits the modal and
// returns the order decoded from the create response.
func (m *CreateOrderModal) CreateOrder(customerName string, products []string) (models.Order, error) {
	if err := m.WaitForOpened(m.Root()); err != nil {
		return models.Order{}, err
	}
	if len(products) < 1 || len(products) > 5 {
		return models.Order{}, fmt.Errorf("expected 1-5 products, got %d", len(products))
	}
	if err := m.SelectCustomer(customerName); err != nil {
		return models.Order{}, err
	}
	for i, product := range products {
		if i > 0 {
			if err := m.ClickAddProduct(); err != nil {
				return models.Order{}, err
			}
		}
		if err := m.SelectProduct(i, product); err != nil {
			return models.Order{}, err
		}
	}
	resp, err := m.InterceptResponse("/api/orders", m.ClickCreate)
	if err != nil {
		return models.Order{}, err
	}
	return decodeOrderResponse(resp, 201)
}

// CustomerOptions returns the texts of the customers dropdown.
func (m *CreateOrderModal) CustomerOptions() ([]string, error) {
	return m.CustomersDropdown().Locator("option").AllTextContents()
}

// ProductOptions returns the texts of the products dropdowns.
func (m *CreateOrderModal) ProductOptions() ([]string, error) {
	return m.ProductsDropdown().Locator("option").AllTextContents()
}

// EditProductsModal is the dialog for changing the products of a draft order.
type EditProductsModal struct {
	Base
}

func NewEditProductsModal(page playwright.Page, baseURL string) *EditProductsModal {
	return &EditProductsModal{Base{Page: page, BaseURL: baseURL}}
}

func (m *EditProductsModal) Root() playwright.Locator {
	return m.Page.Locator("#edit-products-modal")
}

func (m *EditProductsModal) Title() playwright.Locator {
	return m.Root().GetByText("Edit Products")
}

func (m *EditProductsModal) CloseButton() playwright.Locator {
	return m.Root().Locator("button.btn-close")
}

func (m *EditProductsModal) ProductsSection() playwright.Locator {
	return m.Root().Locator("#edit-products-section")
}

func (m *EditProductsModal) ProductRows() playwright.Locator {
	return m.ProductsSection().Locator("div[data-id]")
}

func (m *EditProductsModal) ProductsDropdown() playwright.Locator {
	return m.ProductsSection().Locator(`.form-select[name='Product']`)
}

func (m *EditProductsModal) AddProductButton() playwright.Locator {
	return m.Root().Locator("#add-product-btn")
}

func (m *EditProductsModal) CancelButton() playwright.Locator {
	return m.Root().Locator("#cancel-edit-products-modal-btn")
}

func (m *EditProductsModal) SaveButton() playwright.Locator {
	return m.Root().Locator("#update-products-btn")
}

func (m *EditProductsModal) TotalPrice() playwright.Locator {
	return m.Root().Locator("#total-price-order-modal")
}

func (m *EditProductsModal) ProductsCount() (int, error) {
	return m.ProductRows().Count()
}

func (m *EditProductsModal) SelectProduct(index int, name string) error {
	dropdown := m.ProductsDropdown().Nth(index)
	if err := dropdown.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(timeoutShort),
	}); err != nil {
		return err
	}
	_, err := dropdown.SelectOption(playwright.SelectOptionValues{Labels: &[]string{name}})
	return err
}

func (m *EditProductsModal) ClickAddProduct() error {
	return m.AddProductButton().Click()
}

func (m *EditProductsModal) DeleteProduct(index int) error {
	return m.ProductsSection().
		Locator("div[data-id]").Nth(index).
		Locator(`button.del-btn-modal[title="Delete"]`).
		Click()
}

func (m *EditProductsModal) ClickSave() error {
	return m.SaveButton().Click()
}

func (m *EditProductsModal) ClickCancel() error {
	return m.CancelButton().Click()
}

func (m *EditProductsModal) ClickClose() error {
	return m.CloseButton().Click()
}

// EditOrder replaces the order's product rows with products and saves,
// returning the order decoded from the update response. Extra rows are
// removed from the end, missing rows are added.
func (m *EditProductsModal) EditOrder(products []string) (models.Order, error) {
	if err := m.WaitForOpened(m.Root()); err != nil {
		return models.Order{}, err
	}
	if len(products) < 1 || len(products) > 5 {
		return models.Order{}, fmt.Errorf("expected 1-5 products, got %d", len(products))
	}
	current, err := m.ProductsCount()
	if err != nil {
		return models.Order{}, err
	}
	for i := current - 1; i >= len(products); i-- {
		if err := m.DeleteProduct(i); err != nil {
			return models.Order{}, err
		}
	}
	for i, product := range products {
		if i >= current {
			if err := m.ClickAddProduct(); err != nil {
				return models.Order{}, err
			}
		}
		if err := m.SelectProduct(i, product); err != nil {
			return models.Order{}, err
		}
	}
	resp, err := m.InterceptResponse("/api/orders", m.ClickSave)
	if err != nil {
		return models.Order{}, err
	}
	return decodeOrderResponse(resp, 200)
}

func decodeOrderResponse(resp playwright.Response, wantStatus int) (models.Order, error) {
	if resp.Status() != wantStatus {
		return models.Order{}, fmt.Errorf("order response status %d, want %d", resp.Status(), wantStatus)
	}
	body, err := resp.Body()
	if err != nil {
		return models.Order{}, fmt.Errorf("read order response: %w", err)
	}
	var envelope models.OrderEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return models.Order{}, fmt.Errorf("decode order response: %w", err)
	}
	return envelope.Order, nil
}
