package cart

// Service orchestrates cart operations and derives cart totals.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddItem stores the submitted quantity as the new total for the
// (cartId, productId) pair, creating the line item with the given
// price/name snapshot on first add.
func (s *Service) AddItem(cartID string, productID int, quantity int, price float64, name string) (AddResult, error) {
	if productID <= 0 {
		return AddResult{}, ErrInvalidProduct
	}
	if quantity < 1 {
		return AddResult{}, ErrInvalidQuantity
	}

	stored, created, err := s.repo.Upsert(cartID, productID, quantity, price, name)
	if err != nil {
		return AddResult{}, err
	}
	return AddResult{CartID: cartID, Quantity: stored, Created: created}, nil
}

func (s *Service) UpdateQuantity(cartID string, productID int, quantity int) (Item, error) {
	if quantity < 1 {
		return Item{}, ErrInvalidQuantity
	}
	return s.repo.UpdateQuantity(cartID, productID, quantity)
}

// RemoveItem deletes the line item if present and reports how many items
// the cart still holds. Removing an absent item succeeds.
func (s *Service) RemoveItem(cartID string, productID int) (int, error) {
	return s.repo.Remove(cartID, productID)
}

// GetCart returns the cart's items with total = Σ(price × quantity) and
// itemCount = Σ(quantity). An unknown or empty cart id yields an empty cart.
func (s *Service) GetCart(cartID string) (Cart, error) {
	if cartID == "" {
		return Cart{Items: []Item{}}, nil
	}

	items, err := s.repo.Items(cartID)
	if err != nil {
		return Cart{}, err
	}

	out := Cart{Items: items}
	for _, it := range items {
		out.Total += it.Price * float64(it.Quantity)
		out.ItemCount += it.Quantity
	}
	return out, nil
}

// ClearCart empties the cart; clearing an unknown cart is a no-op.
func (s *Service) ClearCart(cartID string) error {
	if cartID == "" {
		return nil
	}
	return s.repo.Clear(cartID)
}
