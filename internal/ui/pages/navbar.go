package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// NavBar is the top navigation shared by every authenticated page.
type NavBar struct {
	Base
}

func NewNavBar(page playwright.Page, baseURL string) *NavBar {
	return &NavBar{Base{Page: page, BaseURL: baseURL}}
}

func (n *NavBar) Container() playwright.Locator {
	return n.Page.Locator(".navbar")
}

func (n *NavBar) HomeButton() playwright.Locator {
	return n.Container().Locator("[name='home']")
}

func (n *NavBar) ProductsButton() playwright.Locator {
	return n.Container().Locator("[name='products']")
}

func (n *NavBar) CustomersButton() playwright.Locator {
	return n.Container().Locator("[name='customers']")
}

func (n *NavBar) OrdersButton() playwright.Locator {
	return n.Container().Locator("[name='orders']")
}

// ClickNav clicks one of Home, Products, Customers, Orders.
func (n *NavBar) ClickNav(name string) error {
	switch name {
	case "Home":
		return n.HomeButton().Click()
	case "Products":
		return n.ProductsButton().Click()
	case "Customers":
		return n.CustomersButton().Click()
	case "Orders":
		return n.OrdersButton().Click()
	default:
		return fmt.Errorf("unknown nav button %q", name)
	}
}
