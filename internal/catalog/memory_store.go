package catalog

import (
	"fmt"
	"sync"

	"github.com/Chahethsen12/MobiTech-Elite/internal/domain"
)

// MemoryStore keeps the catalog in process memory. Products are never deleted
// and stock is the only field that changes after load.
type MemoryStore struct {
	mu       sync.RWMutex
	order    []string                   // load order, used as the stable tie-breaker
	products map[string]*domain.Product // productID -> product
}

// NewMemoryStore creates a store holding copies of the given products.
func NewMemoryStore(products []domain.Product) (*MemoryStore, error) {
	s := &MemoryStore{
		order:    make([]string, 0, len(products)),
		products: make(map[string]*domain.Product, len(products)),
	}

	for _, p := range products {
		if _, exists := s.products[p.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProduct, p.ID)
		}
		product := p
		if product.Stock < 0 {
			product.Stock = 0
		}
		s.products[p.ID] = &product
		s.order = append(s.order, p.ID)
	}

	return s, nil
}

func (s *MemoryStore) List(q Query) ([]domain.Product, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	all := make([]domain.Product, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, *s.products[id])
	}
	s.mu.RUnlock()

	return q.Apply(all), nil
}

func (s *MemoryStore) Get(productID string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.products[productID]
	if !exists {
		return domain.Product{}, ErrProductNotFound
	}
	return *p, nil
}

func (s *MemoryStore) UpdateStock(productID string, newStock int) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.products[productID]
	if !exists {
		return domain.Product{}, ErrProductNotFound
	}

	p.Stock = max(0, newStock)
	return *p, nil
}

func (s *MemoryStore) AdjustStock(productID string, delta int) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.products[productID]
	if !exists {
		return domain.Product{}, ErrProductNotFound
	}

	p.Stock = max(0, p.Stock+delta)
	return *p, nil
}

func (s *MemoryStore) LowStock() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var low []domain.Product
	for _, id := range s.order {
		if p := s.products[id]; p.IsLowStock() {
			low = append(low, *p)
		}
	}
	return low
}
