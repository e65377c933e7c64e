package uiservice

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"github.com/salesportal-qa/sales-portal-tests/internal/models"
	"github.com/salesportal-qa/sales-portal-tests/internal/ui/pages"
)

// CustomersFlow covers the customers list and the add-customer form.
type CustomersFlow struct {
	ListPage *pages.CustomersListPage
	AddPage  *pages.AddCustomerPage
}

func NewCustomersFlow(page playwright.Page, baseURL string) *CustomersFlow {
	return &CustomersFlow{
		ListPage: pages.NewCustomersListPage(page, baseURL),
		AddPage:  pages.NewAddCustomerPage(page, baseURL),
	}
}

func (f *CustomersFlow) OpenList(t *testing.T) {
	t.Helper()
	require.NoError(t, f.ListPage.Open("#/customers"))
	require.NoError(t, f.ListPage.WaitForLoaded())
}

func (f *CustomersFlow) OpenAddForm(t *testing.T) {
	t.Helper()
	require.NoError(t, f.AddPage.Open("#/customers/add"))
	require.NoError(t, f.AddPage.WaitForLoaded())
}

func (f *CustomersFlow) OpenAddFormFromList(t *testing.T) {
	t.Helper()
	require.NoError(t, f.ListPage.ClickAddNewCustomer())
	require.NoError(t, f.AddPage.WaitForLoaded())
}

// Create fills the add-customer form, saves and waits for the list page.
func (f *CustomersFlow) Create(t *testing.T, customer models.CustomerInput) {
	t.Helper()
	require.NoError(t, f.AddPage.FillForm(customer))
	require.NoError(t, f.AddPage.ClickSave())
	require.NoError(t, f.ListPage.WaitForLoaded())
}

// OpenDetails opens the details modal for the customer row with email.
func (f *CustomersFlow) OpenDetails(t *testing.T, email string) {
	t.Helper()
	require.NoError(t, f.ListPage.ClickAction(email, "details"))
	require.NoError(t, f.ListPage.DetailsModal.WaitForOpened(f.ListPage.DetailsModal.Root()))
}

// Delete removes the customer row with email through the confirm dialog.
func (f *CustomersFlow) Delete(t *testing.T, email string) {
	t.Helper()
	require.NoError(t, f.ListPage.ClickAction(email, "delete"))
	require.NoError(t, f.ListPage.DeleteModal.WaitForLoaded())
	require.NoError(t, f.ListPage.DeleteModal.Confirm())
	require.NoError(t, f.ListPage.WaitForClosed(f.ListPage.DeleteModal.Root()))
}

func (f *CustomersFlow) Search(t *testing.T, text string) {
	t.Helper()
	require.NoError(t, f.ListPage.Search(text))
	require.NoError(t, f.ListPage.WaitForLoaded())
}

// RequireRowVisible asserts presence (or absence) of a customer row.
func (f *CustomersFlow) RequireRowVisible(t *testing.T, email string, visible bool) {
	t.Helper()
	got, err := f.ListPage.RowByEmail(email).IsVisible()
	require.NoError(t, err)
	require.Equal(t, visible, got, "customer row %q visibility", email)
}
