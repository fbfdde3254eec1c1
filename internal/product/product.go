package product

import "errors"

var ErrNotFound = errors.New("product not found")

// Product represents a catalog entry and maps to the `products` table.
// Rows are immutable once seeded; the cart snapshots name/price at add time
// instead of joining back to this table.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	CreatedAt   string  `json:"createdAt,omitempty"`
}
