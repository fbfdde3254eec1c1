package order

import (
	"strings"
	"time"
)

// Service provides checkout business logic.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Checkout computes totals from the submitted line-item snapshot (prices
// are the cart's snapshot, not a fresh catalog lookup), persists the order
// atomically and returns the receipt. Once committed the order never
// changes.
func (s *Service) Checkout(items []LineItem, customerName, customerEmail string) (Receipt, error) {
	if strings.TrimSpace(customerName) == "" || strings.TrimSpace(customerEmail) == "" {
		return Receipt{}, ErrMissingCustomer
	}
	if len(items) == 0 {
		return Receipt{}, ErrEmptyCart
	}

	var subtotal float64
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}
	tax := subtotal * TaxRate
	total := subtotal + tax

	ord := Order{
		ID:            newOrderID(),
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.repo.Create(ord, items); err != nil {
		return Receipt{}, err
	}

	return Receipt{
		OrderID:       ord.ID,
		CustomerName:  ord.CustomerName,
		CustomerEmail: ord.CustomerEmail,
		Subtotal:      ord.Subtotal,
		Tax:           ord.Tax,
		Total:         ord.Total,
	}, nil
}
