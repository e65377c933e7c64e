package uiservice

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesportal-qa/sales-portal-tests/internal/ui/pages"
)

// HomeFlow covers the home page and navigation into the three modules.
type HomeFlow struct {
	HomePage      *pages.HomePage
	ProductsList  *pages.ProductsListPage
	CustomersList *pages.CustomersListPage
	OrdersList    *pages.OrdersListPage
}

func NewHomeFlow(page playwright.Page, baseURL string) *HomeFlow {
	return &HomeFlow{
		HomePage:      pages.NewHomePage(page, baseURL),
		ProductsList:  pages.NewProductsListPage(page, baseURL),
		CustomersList: pages.NewCustomersListPage(page, baseURL),
		OrdersList:    pages.NewOrdersListPage(page, baseURL),
	}
}

func (f *HomeFlow) Open(t *testing.T) {
	t.Helper()
	require.NoError(t, f.HomePage.Open("#/home"))
	require.NoError(t, f.HomePage.WaitForLoaded())
}

// NavigateTo clicks the module card button and waits for the target list
// page. module is "Products", "Customers" or "Orders".
func (f *HomeFlow) NavigateTo(t *testing.T, module string) {
	t.Helper()
	require.NoError(t, f.HomePage.ClickModule(module))
	switch module {
	case "Products":
		require.NoError(t, f.ProductsList.WaitForLoaded())
	case "Customers":
		require.NoError(t, f.CustomersList.WaitForLoaded())
	case "Orders":
		require.NoError(t, f.OrdersList.WaitForLoaded())
	default:
		t.Fatalf("unknown home module %q", module)
	}
}

// VerifyMetrics asserts all five metric cards are visible.
func (f *HomeFlow) VerifyMetrics(t *testing.T) {
	t.Helper()
	cards := map[string]playwright.Locator{
		"orders this year": f.HomePage.OrdersThisYearValue(),
		"total revenue":    f.HomePage.TotalRevenueValue(),
		"new customers":    f.HomePage.NewCustomersValue(),
		"average order":    f.HomePage.AvgOrderValue(),
		"canceled orders":  f.HomePage.CanceledOrdersValue(),
	}
	for name, card := range cards {
		visible, err := card.IsVisible()
		require.NoError(t, err)
		assert.True(t, visible, "%s metric card should be visible", name)
	}
}
