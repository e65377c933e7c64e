package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// HomePage is the dashboard with welcome text, module buttons and metric
// cards.
type HomePage struct {
	Base
	NavBar *NavBar
}

func NewHomePage(page playwright.Page, baseURL string) *HomePage {
	return &HomePage{
		Base:   Base{Page: page, BaseURL: baseURL},
		NavBar: NewNavBar(page, baseURL),
	}
}

func (p *HomePage) WelcomeText() playwright.Locator {
	return p.Page.Locator(".welcome-text")
}

func (p *HomePage) metricsContainer() playwright.Locator {
	return p.Page.Locator(".row.text-center.mb-5.d-flex.justify-content-between")
}

func (p *HomePage) OrdersThisYearValue() playwright.Locator {
	return p.metricsContainer().Locator("#total-orders-container p.card-text")
}

func (p *HomePage) TotalRevenueValue() playwright.Locator {
	return p.metricsContainer().Locator("#total-revenue-container p.card-text")
}

func (p *HomePage) NewCustomersValue() playwright.Locator {
	return p.metricsContainer().Locator("#total-customers-container p.card-text")
}

func (p *HomePage) AvgOrderValue() playwright.Locator {
	return p.metricsContainer().Locator("#avg-orders-value-container p.card-text")
}

func (p *HomePage) CanceledOrdersValue() playwright.Locator {
	return p.metricsContainer().Locator("#canceled-orders-container p.card-text")
}

func (p *HomePage) WaitForLoaded() error {
	return p.WaitForOpened(p.WelcomeText())
}

// ClickModule clicks one of the Products, Customers, Orders buttons on the
// dashboard body.
func (p *HomePage) ClickModule(module string) error {
	switch module {
	case "Products":
		return p.Page.Locator("#products-from-home").Click()
	case "Customers":
		return p.Page.Locator("#customers-from-home").Click()
	case "Orders":
		return p.Page.Locator("#orders-from-home").Click()
	default:
		return fmt.Errorf("unknown home module %q", module)
	}
}
