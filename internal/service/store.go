// Package service holds business-level flows over the raw API wrappers:
// entity factories with provisioning, lifecycle drivers and cleanup.
package service

import "sync"

// EntitiesStore tracks ids of entities created during a test so teardown
// can remove them in dependency order.
type EntitiesStore struct {
	mu        sync.Mutex
	orders    map[string]struct{}
	customers map[string]struct{}
	products  map[string]struct{}
}

func NewEntitiesStore() *EntitiesStore {
	return &EntitiesStore{
		orders:    make(map[string]struct{}),
		customers: make(map[string]struct{}),
		products:  make(map[string]struct{}),
	}
}

func (s *EntitiesStore) AddOrder(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[id] = struct{}{}
}

func (s *EntitiesStore) AddCustomer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[id] = struct{}{}
}

func (s *EntitiesStore) AddProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[id] = struct{}{}
}

// RemoveOrder drops an order id, for tests that delete the order themselves.
func (s *EntitiesStore) RemoveOrder(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orders, id)
}

func (s *EntitiesStore) RemoveCustomer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.customers, id)
}

func (s *EntitiesStore) RemoveProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.products, id)
}

func (s *EntitiesStore) Orders() []string    { return s.snapshot(s.orders) }
func (s *EntitiesStore) Customers() []string { return s.snapshot(s.customers) }
func (s *EntitiesStore) Products() []string  { return s.snapshot(s.products) }

func (s *EntitiesStore) snapshot(set map[string]struct{}) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}
