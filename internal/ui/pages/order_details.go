package pages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/salesportal-qa/sales-portal-tests/internal/models"
)

// OrderDetailsPage orchestrates the order details screen. The page is split
// into components: header, customer details, requested products, the
// delivery, history and comments tabs plus modals.
type OrderDetailsPage struct {
	Base
	NavBar            *NavBar
	Header            *OrderDetailsHeader
	CustomerDetails   *OrderCustomerSection
	RequestedProducts *RequestedProductsSection
	CommentsTab       *CommentsTab
	DeliveryTab       *DeliveryTab
	HistoryTab        *OrderHistoryTab
	ScheduleDelivery  *ScheduleDeliveryPage
	AssignManager     *AssignManagerModal
	ConfirmModal      *ConfirmationModal
	EditProducts      *EditProductsModal
}

func NewOrderDetailsPage(page playwright.Page, baseURL string) *OrderDetailsPage {
	return &OrderDetailsPage{
		Base:              Base{Page: page, BaseURL: baseURL},
		NavBar:            NewNavBar(page, baseURL),
		Header:            &OrderDetailsHeader{Base{Page: page, BaseURL: baseURL}},
		CustomerDetails:   NewOrderCustomerSection(page, baseURL),
		RequestedProducts: &RequestedProductsSection{Base{Page: page, BaseURL: baseURL}},
		CommentsTab:       &CommentsTab{Base{Page: page, BaseURL: baseURL}},
		DeliveryTab:       &DeliveryTab{Base{Page: page, BaseURL: baseURL}},
		HistoryTab:        &OrderHistoryTab{Base{Page: page, BaseURL: baseURL}},
		ScheduleDelivery:  &ScheduleDeliveryPage{Base{Page: page, BaseURL: baseURL}},
		AssignManager:     &AssignManagerModal{Base{Page: page, BaseURL: baseURL}},
		ConfirmModal:      NewConfirmationModal(page, baseURL),
		EditProducts:      NewEditProductsModal(page, baseURL),
	}
}

// anchor matches whichever of the page containers the frontend rendered.
func (p *OrderDetailsPage) anchor() playwright.Locator {
	return p.Page.Locator(strings.Join([]string{
		"#order-info-container",
		"#order-details-tabs",
		"#order-details-tabs-section",
		"#order-status-bar-container",
		"#assigned-manager-container",
		"#customer-section",
		"#products-section",
	}, ", "))
}

func (p *OrderDetailsPage) ProcessOrderButton() playwright.Locator {
	return p.Page.Locator("#process-order")
}

func (p *OrderDetailsPage) CancelOrderButton() playwright.Locator {
	return p.Page.Locator("#cancel-order")
}

func (p *OrderDetailsPage) ReopenOrderButton() playwright.Locator {
	return p.Page.Locator("#reopen-order")
}

func (p *OrderDetailsPage) RefreshOrderButton() playwright.Locator {
	return p.Page.Locator("#refresh-order")
}

func (p *OrderDetailsPage) DeliveryTabButton() playwright.Locator {
	return p.Page.Locator("#delivery-tab")
}

func (p *OrderDetailsPage) HistoryTabButton() playwright.Locator {
	return p.Page.Locator("#history-tab")
}

func (p *OrderDetailsPage) CommentsTabButton() playwright.Locator {
	return p.Page.Locator("#comments-tab")
}

// OpenByOrderID navigates straight to the order details route.
func (p *OrderDetailsPage) OpenByOrderID(orderID string) error {
	if err := p.Open("#/orders/" + orderID); err != nil {
		return err
	}
	return p.WaitForSpinners()
}

func (p *OrderDetailsPage) WaitForLoaded() error {
	return p.WaitForOpened(p.anchor().First())
}

func (p *OrderDetailsPage) OpenDeliveryTab() error {
	return p.DeliveryTabButton().Click()
}

func (p *OrderDetailsPage) OpenHistoryTab() error {
	return p.HistoryTabButton().Click()
}

func (p *OrderDetailsPage) OpenCommentsTab() error {
	return p.CommentsTabButton().Click()
}

// ClickProcess opens the confirmation modal for moving the order to
// processing.
func (p *OrderDetailsPage) ClickProcess() error {
	if err := p.ProcessOrderButton().Click(); err != nil {
		return err
	}
	return p.ConfirmModal.WaitForLoaded()
}

func (p *OrderDetailsPage) ClickCancel() error {
	if err := p.CancelOrderButton().Click(); err != nil {
		return err
	}
	return p.ConfirmModal.WaitForLoaded()
}

func (p *OrderDetailsPage) ClickReopen() error {
	if err := p.ReopenOrderButton().Click(); err != nil {
		return err
	}
	return p.ConfirmModal.WaitForLoaded()
}

func (p *OrderDetailsPage) ClickRefresh() error {
	if err := p.RefreshOrderButton().Click(); err != nil {
		return err
	}
	return p.WaitForSpinners()
}

// OrderDetailsHeader is the status bar, action buttons and manager section.
type OrderDetailsHeader struct {
	Base
}

func (h *OrderDetailsHeader) Container() playwright.Locator {
	return h.Page.Locator("#order-info-container")
}

func (h *OrderDetailsHeader) AssignedManagerContainer() playwright.Locator {
	return h.Page.Locator("#assigned-manager-container")
}

func (h *OrderDetailsHeader) StatusBar() playwright.Locator {
	return h.Page.Locator("#order-status-bar-container")
}

func (h *OrderDetailsHeader) OrderNumber() playwright.Locator {
	return h.Page.
		Locator("//div[./span[contains(text(), 'Order number')]]").
		Locator("//span[@class='fst-italic']")
}

func (h *OrderDetailsHeader) StatusText() playwright.Locator {
	return h.StatusBar().Locator(
		".status-text, span.text-primary, span.text-danger, span.text-warning, span.text-success",
	)
}

func (h *OrderDetailsHeader) AssignManagerTrigger() playwright.Locator {
	return h.AssignedManagerContainer().
		Locator(`[onclick^="renderAssigneManagerModal"], a[href], button`).First()
}

func (h *OrderDetailsHeader) UnassignManagerTrigger() playwright.Locator {
	return h.AssignedManagerContainer().Locator(`[onclick^="renderRemoveAssignedManagerModal"]`)
}

func (h *OrderDetailsHeader) Status() (models.OrderStatus, error) {
	text, err := h.StatusText().First().InnerText()
	if err != nil {
		return "", fmt.Errorf("read order status: %w", err)
	}
	return models.OrderStatus(strings.TrimSpace(text)), nil
}

func (h *OrderDetailsHeader) OrderNumberText() (string, error) {
	text, err := h.OrderNumber().InnerText()
	if err != nil {
		return "", fmt.Errorf("read order number: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func (h *OrderDetailsHeader) OpenAssignManagerModal() error {
	if err := h.AssignedManagerContainer().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(timeoutShort),
	}); err != nil {
		return err
	}
	return h.AssignManagerTrigger().Click()
}

func (h *OrderDetailsHeader) OpenUnassignManagerModal() error {
	return h.UnassignManagerTrigger().First().Click()
}

// OrderCustomerSection is the customer details block of the order page.
type OrderCustomerSection struct {
	Base
	EditCustomerModal *EditOrderCustomerModal
}

func NewOrderCustomerSection(page playwright.Page, baseURL string) *OrderCustomerSection {
	return &OrderCustomerSection{
		Base:              Base{Page: page, BaseURL: baseURL},
		EditCustomerModal: &EditOrderCustomerModal{Base{Page: page, BaseURL: baseURL}},
	}
}

func (s *OrderCustomerSection) Container() playwright.Locator {
	return s.Page.Locator("#customer-section")
}

func (s *OrderCustomerSection) EditButton() playwright.Locator {
	return s.Page.Locator("#edit-customer-pencil")
}

func (s *OrderCustomerSection) values() playwright.Locator {
	return s.Container().Locator("div.c-details > span:nth-child(2)")
}

func (s *OrderCustomerSection) ClickEdit() (*EditOrderCustomerModal, error) {
	if err := s.EditButton().Click(); err != nil {
		return nil, err
	}
	return s.EditCustomerModal, nil
}

// CustomerData reads the rendered customer block in field order: email, name,
// country, city, street, house, flat, phone, created on, notes.
func (s *OrderCustomerSection) CustomerData() (models.Customer, error) {
	values, err := s.values().AllInnerTexts()
	if err != nil {
		return models.Customer{}, err
	}
	if len(values) < 10 {
		return models.Customer{}, fmt.Errorf("customer section has %d fields, want 10", len(values))
	}
	house, err := strconv.Atoi(values[5])
	if err != nil {
		return models.Customer{}, fmt.Errorf("parse house %q: %w", values[5], err)
	}
	flat, err := strconv.Atoi(values[6])
	if err != nil {
		return models.Customer{}, fmt.Errorf("parse flat %q: %w", values[6], err)
	}
	return models.Customer{
		Email:     values[0],
		Name:      values[1],
		Country:   models.Country(values[2]),
		City:      values[3],
		Street:    values[4],
		House:     house,
		Flat:      flat,
		Phone:     values[7],
		CreatedOn: values[8],
		Notes:     values[9],
	}, nil
}

// RequestedProductsSection is the products block plus the receiving flow.
type RequestedProductsSection struct {
	Base
}

func (s *RequestedProductsSection) Container() playwright.Locator {
	return s.Page.Locator("#products-section").First()
}

func (s *RequestedProductsSection) Accordion() playwright.Locator {
	return s.Page.Locator("#products-accordion-section")
}

func (s *RequestedProductsSection) EditButton() playwright.Locator {
	return s.Page.Locator("#edit-products-pencil")
}

func (s *RequestedProductsSection) StartReceivingButton() playwright.Locator {
	return s.Container().Locator("#start-receiving-products, #start-receiving").First()
}

func (s *RequestedProductsSection) SaveReceivingButton() playwright.Locator {
	return s.Container().Locator("#save-received-products, #save-receiving").First()
}

func (s *RequestedProductsSection) CancelReceivingButton() playwright.Locator {
	return s.Container().Locator("#cancel-receiving").First()
}

func (s *RequestedProductsSection) SelectAllCheckbox() playwright.Locator {
	return s.Container().Locator("#selectAll")
}

func (s *RequestedProductsSection) ProductCheckbox(productID string) playwright.Locator {
	return s.Page.Locator(fmt.Sprintf(`input[name="product"][value="%s"]`, productID)).First()
}

func (s *RequestedProductsSection) ProductCheckboxByIndex(index int) playwright.Locator {
	return s.Page.Locator(fmt.Sprintf("#check%d", index))
}

func (s *RequestedProductsSection) ClickEdit() error {
	return s.EditButton().Click()
}

func (s *RequestedProductsSection) StartReceiving() error {
	return s.StartReceivingButton().Click()
}

func (s *RequestedProductsSection) SaveReceiving() error {
	return s.SaveReceivingButton().Click()
}

func (s *RequestedProductsSection) CancelReceiving() error {
	return s.CancelReceivingButton().Click()
}

func (s *RequestedProductsSection) SelectAll() error {
	return s.SelectAllCheckbox().Click()
}

func (s *RequestedProductsSection) ToggleProduct(productID string) error {
	return s.ProductCheckbox(productID).Click()
}

// IsProductReceived reports whether the product row shows a received label
// or a checked checkbox.
func (s *RequestedProductsSection) IsProductReceived(productID string) (bool, error) {
	checkbox := s.ProductCheckbox(productID)
	count, err := checkbox.Count()
	if err != nil || count == 0 {
		return false, err
	}
	row := checkbox.Locator("xpath=ancestor::*[self::div or self::li or self::tr][1]")
	if visible, err := row.Locator(".received-label").First().IsVisible(); err == nil && visible {
		return true, nil
	}
	return checkbox.IsChecked()
}

func (s *RequestedProductsSection) WaitForReceivingControls() error {
	for _, loc := range []playwright.Locator{s.CancelReceivingButton(), s.SaveReceivingButton()} {
		if err := loc.WaitFor(playwright.LocatorWaitForOptions{
			State:   playwright.WaitForSelectorStateVisible,
			Timeout: playwright.Float(timeoutShort),
		}); err != nil {
			return err
		}
	}
	return nil
}

// AssignManagerModal assigns or changes the manager of an order.
type AssignManagerModal struct {
	Base
}

func (m *AssignManagerModal) Root() playwright.Locator {
	return m.Page.Locator("#assign-manager-modal")
}

func (m *AssignManagerModal) Title() playwright.Locator {
	return m.Root().Locator("h5")
}

func (m *AssignManagerModal) SearchInput() playwright.Locator {
	return m.Root().Locator("#manager-search-input")
}

func (m *AssignManagerModal) ManagerList() playwright.Locator {
	return m.Root().Locator("#manager-list")
}

func (m *AssignManagerModal) ManagerItems() playwright.Locator {
	return m.ManagerList().Locator("li.list-group-item")
}

func (m *AssignManagerModal) SaveButton() playwright.Locator {
	return m.Root().Locator("#update-manager-btn")
}

func (m *AssignManagerModal) CancelButton() playwright.Locator {
	return m.Root().Locator("#cancel-edit-manager-modal-btn")
}

func (m *AssignManagerModal) WaitForLoaded() error {
	if err := m.Root().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(timeoutShort),
	}); err != nil {
		return err
	}
	return m.ManagerList().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(timeoutShort),
	})
}

func (m *AssignManagerModal) SearchManager(name string) error {
	if err := m.SearchInput().Fill(name); err != nil {
		return err
	}
	// the list filters on keyup with a small debounce
	m.Page.WaitForTimeout(300)
	return nil
}

// SelectManager clicks the first list item containing name.
func (m *AssignManagerModal) SelectManager(name string) error {
	items, err := m.ManagerItems().All()
	if err != nil {
		return err
	}
	for _, item := range items {
		text, err := item.InnerText()
		if err != nil {
			return err
		}
		if strings.Contains(strings.ToLower(text), strings.ToLower(name)) {
			return item.Click()
		}
	}
	return fmt.Errorf("manager %q not found in list", name)
}

// AvailableManagers clears the search and returns the visible manager names.
func (m *AssignManagerModal) AvailableManagers() ([]string, error) {
	if err := m.SearchInput().Clear(); err != nil {
		return nil, err
	}
	m.Page.WaitForTimeout(300)
	items, err := m.ManagerItems().All()
	if err != nil {
		return nil, err
	}
	var managers []string
	for _, item := range items {
		text, err := item.InnerText()
		if err != nil {
			return nil, err
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			managers = append(managers, trimmed)
		}
	}
	return managers, nil
}

func (m *AssignManagerModal) ClickSave() error {
	return m.SaveButton().Click()
}

func (m *AssignManagerModal) ClickCancel() error {
	return m.CancelButton().Click()
}

// EditOrderCustomerModal changes the customer assigned to an order.
type EditOrderCustomerModal struct {
	Base
}

func (m *EditOrderCustomerModal) Root() playwright.Locator {
	return m.Page.Locator("#edit-customer-modal")
}

func (m *EditOrderCustomerModal) CustomersDropdown() playwright.Locator {
	return m.Page.Locator("#inputCustomerOrder")
}

func (m *EditOrderCustomerModal) SaveButton() playwright.Locator {
	return m.Page.Locator("#update-customer-btn")
}

func (m *EditOrderCustomerModal) CancelButton() playwright.Locator {
	return m.Page.Locator("#cancel-edit-customer-modal-btn")
}

func (m *EditOrderCustomerModal) SelectCustomer(name string) error {
	_, err := m.CustomersDropdown().SelectOption(playwright.SelectOptionValues{
		Labels: &[]string{name},
	})
	return err
}

func (m *EditOrderCustomerModal) ClickSave() error {
	return m.SaveButton().Click()
}

func (m *EditOrderCustomerModal) ClickCancel() error {
	return m.CancelButton().Click()
}

func (m *EditOrderCustomerModal) CustomerOptions() ([]string, error) {
	return m.CustomersDropdown().Locator("option").AllTextContents()
}
