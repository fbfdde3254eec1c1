package product

import (
	"sort"
	"sync"
)

// Repository provides read access to the catalog.
type Repository interface {
	List() ([]Product, error)
	// ListByIDs returns the products whose id is present in the provided
	// slice, ordered the same way as the ids argument. Unknown ids are
	// skipped. An empty slice returns an empty result without hitting
	// the database.
	ListByIDs(ids []int) ([]Product, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu       sync.RWMutex
	products map[int]Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{products: make(map[int]Product, len(seed))}
	for _, p := range seed {
		r.products[p.ID] = p
	}
	return r
}

func (r *InMemoryRepository) List() ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *InMemoryRepository) ListByIDs(ids []int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
