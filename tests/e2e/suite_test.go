//go:build integration

// Package e2e_test drives the Sales Portal UI in a real browser. Run with:
//
//	go test -tags integration ./tests/e2e/...
//
// Listing and modal tests mock the portal's API calls inside the browser, so
// only the frontend needs to be reachable for them.
package e2e_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"github.com/salesportal-qa/sales-portal-tests/internal/api"
	"github.com/salesportal-qa/sales-portal-tests/internal/apiclient"
	"github.com/salesportal-qa/sales-portal-tests/internal/config"
	"github.com/salesportal-qa/sales-portal-tests/internal/mock"
	"github.com/salesportal-qa/sales-portal-tests/internal/models"
	"github.com/salesportal-qa/sales-portal-tests/internal/service"
)

// browserSuite holds one browser page plus the API-side services used to
// provision and clean up entities for UI scenarios.
type browserSuite struct {
	cfg       *config.Config
	endpoints *config.Endpoints

	page playwright.Page
	mock *mock.Mock

	customersAPI *api.CustomersAPI
	productsAPI  *api.ProductsAPI
	ordersAPI    *api.OrdersAPI

	store     *service.EntitiesStore
	login     *service.LoginService
	customers *service.CustomersService
	products  *service.ProductsService
	orders    *service.OrdersService

	token string
}

func newBrowserSuite(t *testing.T) *browserSuite {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err, "load configuration")

	pw, err := playwright.Run()
	require.NoError(t, err, "start playwright driver")
	t.Cleanup(func() { _ = pw.Stop() })

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(float64(cfg.SlowMo.Milliseconds())),
	})
	require.NoError(t, err, "launch chromium")
	t.Cleanup(func() { _ = browser.Close() })

	ctx, err := browser.NewContext()
	require.NoError(t, err, "create browser context")

	page, err := ctx.NewPage()
	require.NoError(t, err, "open page")
	page.SetDefaultTimeout(float64(cfg.Timeout.Milliseconds()))
	t.Cleanup(func() { screenshotOnFailure(t, page) })

	client, err := apiclient.NewFromPlaywright(pw)
	require.NoError(t, err, "create api request context")
	t.Cleanup(func() { _ = client.Dispose() })
	client.Log = t.Logf

	endpoints := config.NewEndpoints(cfg.APIURL)

	routeMock := mock.New(page, &endpoints)
	routeMock.Log = t.Logf

	store := service.NewEntitiesStore()
	customersAPI := api.NewCustomersAPI(client, &endpoints)
	productsAPI := api.NewProductsAPI(client, &endpoints)
	ordersAPI := api.NewOrdersAPI(client, &endpoints)

	s := &browserSuite{
		cfg:          cfg,
		endpoints:    &endpoints,
		page:         page,
		mock:         routeMock,
		customersAPI: customersAPI,
		productsAPI:  productsAPI,
		ordersAPI:    ordersAPI,
		store:        store,
		login:        service.NewLoginService(api.NewLoginAPI(client, &endpoints)),
		customers:    service.NewCustomersService(customersAPI, store),
		products:     service.NewProductsService(productsAPI, store),
	}
	s.orders = service.NewOrdersService(ordersAPI, s.customers, s.products, store)
	s.orders.ManagerIDs = cfg.ManagerIDs

	s.token = s.login.Token(t, models.Credentials{Username: cfg.Username, Password: cfg.Password})
	t.Cleanup(func() { s.orders.FullDelete(t, s.token) })
	return s
}

// authenticate injects the admin token as the Authorization cookie, skipping
// the login form for tests that are not about logging in.
func (s *browserSuite) authenticate(t *testing.T) {
	t.Helper()

	err := s.page.Context().AddCookies([]playwright.OptionalCookie{{
		Name:  "Authorization",
		Value: s.token,
		URL:   playwright.String(s.cfg.PortalURL),
	}})
	require.NoError(t, err, "set auth cookie")
}

// screenshotOnFailure captures the page into test-results/ when a test fails,
// named after the test.
func screenshotOnFailure(t *testing.T, page playwright.Page) {
	if !t.Failed() {
		return
	}
	dir := "test-results"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Logf("screenshot dir: %v", err)
		return
	}
	name := fmt.Sprintf("%s-%d.png", filepath.Base(t.Name()), time.Now().Unix())
	path := filepath.Join(dir, sanitize(name))
	if _, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		t.Logf("screenshot: %v", err)
		return
	}
	t.Logf("screenshot saved to %s", path)
}

// findCustomerByEmail resolves a customer created through the UI so the
// suite can track and verify it on the API side.
func findCustomerByEmail(t *testing.T, s *browserSuite, email string) models.Customer {
	t.Helper()

	resp, err := s.customersAPI.GetList(s.token, map[string]string{"search": email})
	require.NoError(t, err)

	var env models.CustomerListEnvelope
	require.NoError(t, resp.Decode(&env))
	for _, c := range env.Customers {
		if c.Email == email {
			return c
		}
	}
	t.Fatalf("customer %s not found via API", email)
	return models.Customer{}
}

// findProductByName is findCustomerByEmail for products.
func findProductByName(t *testing.T, s *browserSuite, name string) models.Product {
	t.Helper()

	resp, err := s.productsAPI.GetList(s.token, map[string]string{"search": name})
	require.NoError(t, err)

	var env models.ProductListEnvelope
	require.NoError(t, resp.Decode(&env))
	for _, p := range env.Products {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("product %s not found via API", name)
	return models.Product{}
}

func sanitize(name string) string {
	out := []rune(name)
	for i, r := range out {
		switch r {
		case '/', '\\', ' ', ':':
			out[i] = '_'
		}
	}
	return string(out)
}
