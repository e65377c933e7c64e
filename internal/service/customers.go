package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/salesportal-qa/sales-portal-tests/internal/api"
	"github.com/salesportal-qa/sales-portal-tests/internal/models"
	"github.com/salesportal-qa/sales-portal-tests/internal/testdata"
)

// CustomersService provisions and removes customers, tracking them for
// cleanup.
type CustomersService struct {
	customersAPI *api.CustomersAPI
	store        *EntitiesStore
}

func NewCustomersService(customersAPI *api.CustomersAPI, store *EntitiesStore) *CustomersService {
	return &CustomersService{customersAPI: customersAPI, store: store}
}

// Create posts a random customer and returns the created entity.
func (s *CustomersService) Create(t *testing.T, token string) models.Customer {
	t.Helper()
	return s.CreateFrom(t, token, testdata.Customer())
}

// CreateFrom posts the given customer body and returns the created entity.
func (s *CustomersService) CreateFrom(t *testing.T, token string, input models.CustomerInput) models.Customer {
	t.Helper()

	resp, err := s.customersAPI.Create(token, input)
	require.NoError(t, err, "create customer request failed")
	require.Equal(t, http.StatusCreated, resp.Status, "create customer rejected: %s", resp.Body)

	var env models.CustomerEnvelope
	require.NoError(t, resp.Decode(&env), "decode create customer response")
	require.True(t, env.IsSuccess, "create customer IsSuccess=false")
	require.NotEmpty(t, env.Customer.ID, "created customer has no id")

	s.store.AddCustomer(env.Customer.ID)
	return env.Customer
}

// GetByID fetches a customer that must exist.
func (s *CustomersService) GetByID(t *testing.T, token, id string) models.Customer {
	t.Helper()

	resp, err := s.customersAPI.GetByID(token, id)
	require.NoError(t, err, "get customer request failed")
	require.Equal(t, http.StatusOK, resp.Status, "get customer rejected: %s", resp.Body)

	var env models.CustomerEnvelope
	require.NoError(t, resp.Decode(&env), "decode get customer response")
	return env.Customer
}

// Delete removes a customer and untracks it.
func (s *CustomersService) Delete(t *testing.T, token, id string) {
	t.Helper()

	resp, err := s.customersAPI.Delete(token, id)
	require.NoError(t, err, "delete customer request failed")
	require.Equal(t, http.StatusNoContent, resp.Status, "delete customer rejected: %s", resp.Body)
	s.store.RemoveCustomer(id)
}
