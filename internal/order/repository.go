package order

import "sync"

// Repository defines persistence for orders. Create must write the order
// header and its line items all-or-nothing: a failed item write leaves no
// dangling order row.
type Repository interface {
	Create(ord Order, items []LineItem) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]Order
	items  map[string][]LineItem
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		orders: make(map[string]Order),
		items:  make(map[string][]LineItem),
	}
}

func (r *InMemoryRepository) Create(ord Order, items []LineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[ord.ID] = ord
	stored := make([]LineItem, len(items))
	copy(stored, items)
	r.items[ord.ID] = stored
	return nil
}

// Get returns a stored order and its line items; used by tests.
func (r *InMemoryRepository) Get(orderID string) (Order, []LineItem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ord, ok := r.orders[orderID]
	return ord, r.items[orderID], ok
}

// Count reports how many orders have been committed; used by tests.
func (r *InMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
