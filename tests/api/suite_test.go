//go:build integration

// Package api_test runs the black-box REST tests against a live Sales
// Portal instance. Configure the target via env vars or .env, then:
//
//	go test -tags integration ./tests/api/...
package api_test

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"github.com/salesportal-qa/sales-portal-tests/internal/api"
	"github.com/salesportal-qa/sales-portal-tests/internal/apiclient"
	"github.com/salesportal-qa/sales-portal-tests/internal/config"
	"github.com/salesportal-qa/sales-portal-tests/internal/models"
	"github.com/salesportal-qa/sales-portal-tests/internal/service"
	"github.com/salesportal-qa/sales-portal-tests/internal/testdata"
	"github.com/salesportal-qa/sales-portal-tests/internal/validate"
)

// suite wires the API clients and services against one authenticated admin
// session. Entities created through the services are deleted on cleanup.
type suite struct {
	cfg       *config.Config
	endpoints *config.Endpoints

	loginAPI         *api.LoginAPI
	customersAPI     *api.CustomersAPI
	productsAPI      *api.ProductsAPI
	ordersAPI        *api.OrdersAPI
	notificationsAPI *api.NotificationsAPI
	usersAPI         *api.UsersAPI
	metricsAPI       *api.MetricsAPI

	store     *service.EntitiesStore
	login     *service.LoginService
	customers *service.CustomersService
	products  *service.ProductsService
	orders    *service.OrdersService
	facade    *service.OrdersFacade

	token string
}

func newSuite(t *testing.T) *suite {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err, "load configuration")

	pw, err := playwright.Run()
	require.NoError(t, err, "start playwright driver")
	t.Cleanup(func() { _ = pw.Stop() })

	client, err := apiclient.NewFromPlaywright(pw)
	require.NoError(t, err, "create api request context")
	t.Cleanup(func() { _ = client.Dispose() })
	client.Log = t.Logf

	endpoints := config.NewEndpoints(cfg.APIURL)

	s := &suite{
		cfg:              cfg,
		endpoints:        &endpoints,
		loginAPI:         api.NewLoginAPI(client, &endpoints),
		customersAPI:     api.NewCustomersAPI(client, &endpoints),
		productsAPI:      api.NewProductsAPI(client, &endpoints),
		ordersAPI:        api.NewOrdersAPI(client, &endpoints),
		notificationsAPI: api.NewNotificationsAPI(client, &endpoints),
		usersAPI:         api.NewUsersAPI(client, &endpoints),
		metricsAPI:       api.NewMetricsAPI(client, &endpoints),
		store:            service.NewEntitiesStore(),
	}
	s.login = service.NewLoginService(s.loginAPI)
	s.customers = service.NewCustomersService(s.customersAPI, s.store)
	s.products = service.NewProductsService(s.productsAPI, s.store)
	s.orders = service.NewOrdersService(s.ordersAPI, s.customers, s.products, s.store)
	s.orders.ManagerIDs = cfg.ManagerIDs
	s.facade = service.NewOrdersFacade(s.ordersAPI, s.customers, s.products)

	s.token = s.login.Token(t, s.adminCredentials())
	t.Cleanup(func() { s.orders.FullDelete(t, s.token) })
	return s
}

func (s *suite) adminCredentials() models.Credentials {
	return models.Credentials{Username: s.cfg.Username, Password: s.cfg.Password}
}

// managerID returns the first configured manager, skipping the test when
// none is set up for the environment.
func (s *suite) managerID(t *testing.T) string {
	t.Helper()
	if len(s.cfg.ManagerIDs) == 0 {
		t.Skip("no manager IDs configured")
	}
	return s.cfg.ManagerIDs[0]
}

// expectCase maps a data-driven case onto response expectations.
func expectCase(c testdata.Case, schema map[string]any) validate.Expect {
	return validate.Expect{
		Status:       c.Status,
		IsSuccess:    validate.Bool(c.IsSuccess),
		ErrorMessage: c.ErrorMessage,
		Schema:       schema,
	}
}
