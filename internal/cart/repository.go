package cart

import "sync"

// Repository provides access to cart line items. Implementations must make
// Upsert atomic per (cartId, productId) row so concurrent merges never lose
// a write.
type Repository interface {
	// Upsert creates the line item or, if one already exists for the
	// (cartId, productId) pair, replaces its quantity with the given value
	// while leaving the price/name snapshot untouched. Returns the stored
	// quantity and whether a new row was created.
	Upsert(cartID string, productID int, quantity int, price float64, name string) (int, bool, error)
	// UpdateQuantity overwrites the quantity of an existing line item and
	// returns the updated row. ErrNotFound if the pair does not exist.
	UpdateQuantity(cartID string, productID int, quantity int) (Item, error)
	// Remove deletes the line item if present and returns the number of
	// items remaining in the cart. Removing a missing item is a no-op.
	Remove(cartID string, productID int) (int, error)
	// Items returns the cart's line items in insertion order. An unknown
	// cart id yields an empty slice, not an error.
	Items(cartID string) ([]Item, error)
	// Clear deletes every line item for the cart; idempotent.
	Clear(cartID string) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int
	carts  map[string][]Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, carts: make(map[string][]Item)}
}

func (r *InMemoryRepository) Upsert(cartID string, productID int, quantity int, price float64, name string) (int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[cartID]
	for i, it := range items {
		if it.ProductID == productID {
			items[i].Quantity = quantity
			return quantity, false, nil
		}
	}

	items = append(items, Item{
		ID:        r.nextID,
		CartID:    cartID,
		ProductID: productID,
		Name:      name,
		Price:     price,
		Quantity:  quantity,
	})
	r.nextID++
	r.carts[cartID] = items
	return quantity, true, nil
}

func (r *InMemoryRepository) UpdateQuantity(cartID string, productID int, quantity int) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.carts[cartID] {
		if it.ProductID == productID {
			r.carts[cartID][i].Quantity = quantity
			return r.carts[cartID][i], nil
		}
	}
	return Item{}, ErrNotFound
}

func (r *InMemoryRepository) Remove(cartID string, productID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[cartID]
	for i, it := range items {
		if it.ProductID == productID {
			items = append(items[:i], items[i+1:]...)
			r.carts[cartID] = items
			break
		}
	}
	return len(r.carts[cartID]), nil
}

func (r *InMemoryRepository) Items(cartID string) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.carts[cartID]
	out := make([]Item, len(items))
	copy(out, items)
	return out, nil
}

func (r *InMemoryRepository) Clear(cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, cartID)
	return nil
}
