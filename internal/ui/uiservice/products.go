package uiservice

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"github.com/salesportal-qa/sales-portal-tests/internal/models"
	"github.com/salesportal-qa/sales-portal-tests/internal/ui/pages"
)

// ProductsFlow covers the products list plus the add and edit forms.
type ProductsFlow struct {
	ListPage *pages.ProductsListPage
	AddPage  *pages.AddProductPage
	EditPage *pages.EditProductPage
}

func NewProductsFlow(page playwright.Page, baseURL string) *ProductsFlow {
	return &ProductsFlow{
		ListPage: pages.NewProductsListPage(page, baseURL),
		AddPage:  pages.NewAddProductPage(page, baseURL),
		EditPage: pages.NewEditProductPage(page, baseURL),
	}
}

func (f *ProductsFlow) OpenList(t *testing.T) {
	t.Helper()
	require.NoError(t, f.ListPage.Open("#/products"))
	require.NoError(t, f.ListPage.WaitForLoaded())
}

func (f *ProductsFlow) OpenAddForm(t *testing.T) {
	t.Helper()
	require.NoError(t, f.AddPage.Open("#/products/add"))
	require.NoError(t, f.AddPage.WaitForLoaded())
}

func (f *ProductsFlow) OpenEditForm(t *testing.T, productID string) {
	t.Helper()
	require.NoError(t, f.EditPage.Open("#/products/"+productID+"/edit"))
	require.NoError(t, f.EditPage.WaitForLoaded())
}

// Create fills the add-product form, saves and waits for the list page.
func (f *ProductsFlow) Create(t *testing.T, product models.ProductInput) {
	t.Helper()
	require.NoError(t, f.AddPage.FillForm(product))
	require.NoError(t, f.AddPage.ClickSave())
	require.NoError(t, f.ListPage.WaitForLoaded())
}

// Update fills the edit-product form, saves and waits for the list page.
func (f *ProductsFlow) Update(t *testing.T, product models.ProductInput) {
	t.Helper()
	require.NoError(t, f.EditPage.FillForm(product))
	require.NoError(t, f.EditPage.ClickSave())
	require.NoError(t, f.ListPage.WaitForLoaded())
}

// OpenDetails opens the details modal for the product row with name.
func (f *ProductsFlow) OpenDetails(t *testing.T, name string) {
	t.Helper()
	require.NoError(t, f.ListPage.ClickAction(name, "details"))
	require.NoError(t, f.ListPage.DetailsModal.WaitForOpened(f.ListPage.DetailsModal.Root()))
}

// Delete removes the product row with name through the confirm dialog.
func (f *ProductsFlow) Delete(t *testing.T, name string) {
	t.Helper()
	require.NoError(t, f.ListPage.ClickAction(name, "delete"))
	require.NoError(t, f.ListPage.DeleteModal.WaitForLoaded())
	require.NoError(t, f.ListPage.DeleteModal.Confirm())
	require.NoError(t, f.ListPage.WaitForClosed(f.ListPage.DeleteModal.Root()))
}

func (f *ProductsFlow) Search(t *testing.T, text string) {
	t.Helper()
	require.NoError(t, f.ListPage.Search(text))
	require.NoError(t, f.ListPage.WaitForLoaded())
}

// RequireRowVisible asserts presence (or absence) of a product row.
func (f *ProductsFlow) RequireRowVisible(t *testing.T, name string, visible bool) {
	t.Helper()
	got, err := f.ListPage.RowByName(name).IsVisible()
	require.NoError(t, err)
	require.Equal(t, visible, got, "product row %q visibility", name)
}
