package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/salesportal-qa/sales-portal-tests/internal/api"
	"github.com/salesportal-qa/sales-portal-tests/internal/models"
	"github.com/salesportal-qa/sales-portal-tests/internal/testdata"
)

// ProductsService provisions and removes products, tracking them for
// cleanup.
type ProductsService struct {
	productsAPI *api.ProductsAPI
	store       *EntitiesStore
}

func NewProductsService(productsAPI *api.ProductsAPI, store *EntitiesStore) *ProductsService {
	return &ProductsService{productsAPI: productsAPI, store: store}
}

// Create posts a random product and returns the created entity.
func (s *ProductsService) Create(t *testing.T, token string) models.Product {
	t.Helper()
	return s.CreateFrom(t, token, testdata.Product())
}

// CreateFrom posts the given product body and returns the created entity.
func (s *ProductsService) CreateFrom(t *testing.T, token string, input models.ProductInput) models.Product {
	t.Helper()

	resp, err := s.productsAPI.Create(token, input)
	require.NoError(t, err, "create product request failed")
	require.Equal(t, http.StatusCreated, resp.Status, "create product rejected: %s", resp.Body)

	var env models.ProductEnvelope
	require.NoError(t, resp.Decode(&env), "decode create product response")
	require.True(t, env.IsSuccess, "create product IsSuccess=false")
	require.NotEmpty(t, env.Product.ID, "created product has no id")

	s.store.AddProduct(env.Product.ID)
	return env.Product
}

// CreateMany posts count random products and returns their ids.
func (s *ProductsService) CreateMany(t *testing.T, token string, count int) []string {
	t.Helper()

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, s.Create(t, token).ID)
	}
	return ids
}

// GetByID fetches a product that must exist.
func (s *ProductsService) GetByID(t *testing.T, token, id string) models.Product {
	t.Helper()

	resp, err := s.productsAPI.GetByID(token, id)
	require.NoError(t, err, "get product request failed")
	require.Equal(t, http.StatusOK, resp.Status, "get product rejected: %s", resp.Body)

	var env models.ProductEnvelope
	require.NoError(t, resp.Decode(&env), "decode get product response")
	return env.Product
}

// Delete removes a product and untracks it.
func (s *ProductsService) Delete(t *testing.T, token, id string) {
	t.Helper()

	resp, err := s.productsAPI.Delete(token, id)
	require.NoError(t, err, "delete product request failed")
	require.Equal(t, http.StatusNoContent, resp.Status, "delete product rejected: %s", resp.Body)
	s.store.RemoveProduct(id)
}
