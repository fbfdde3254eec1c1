package cart

import (
	"errors"

	"github.com/google/uuid"
)

// HeaderCartID carries the opaque cart identifier on every cart request.
const HeaderCartID = "X-Cart-Id"

var (
	ErrNotFound        = errors.New("cart item not found")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidProduct  = errors.New("invalid product")
)

// Item is one product's snapshot within a cart. Name and price are captured
// at add time so later catalog changes never alter an in-progress cart.
// At most one item exists per (cartId, productId) pair.
type Item struct {
	ID        int     `json:"id,omitempty"`
	CartID    string  `json:"cartId"`
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart is the view returned to clients: the line items plus derived totals.
type Cart struct {
	Items     []Item  `json:"items"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}

// AddResult reports the outcome of an add/merge, echoing the cart id so a
// client without one learns the identifier the server issued.
type AddResult struct {
	CartID   string `json:"cartId"`
	Quantity int    `json:"quantity"`
	Created  bool   `json:"-"`
}

// NewCartID issues a fresh opaque cart identifier.
func NewCartID() string {
	return "cart_" + uuid.NewString()
}
