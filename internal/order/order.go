package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaxRate is the flat rate applied to every order's subtotal.
const TaxRate = 0.08

var (
	ErrMissingCustomer = errors.New("missing required fields")
	ErrEmptyCart       = errors.New("cart is empty")
)

// Order is the immutable purchase record written at checkout. Totals are
// stored as computed, unrounded; rounding to two decimals is presentation
// only.
type Order struct {
	ID            string  `json:"orderId"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
	CreatedAt     string  `json:"createdAt,omitempty"`
}

// LineItem is a snapshot copy of one cart line at checkout time, decoupled
// from later catalog or cart changes.
type LineItem struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Receipt is the computed checkout result returned to the caller.
type Receipt struct {
	OrderID       string  `json:"orderId"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
}

// newOrderID generates a high-entropy order identifier of the form
// ORD-<unix millis>-<8 hex chars>.
func newOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
