package cart

import (
	"errors"
	"math"
	"testing"
)

func TestAddItemThenGetCart(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	res, err := s.AddItem("cart_a", 1, 2, 199.99, "Premium Wireless Headphones")
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if res.CartID != "cart_a" || res.Quantity != 2 {
		t.Fatalf("unexpected add result %+v", res)
	}
	if !res.Created {
		t.Fatalf("expected first add to create the line item")
	}

	crt, err := s.GetCart("cart_a")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(crt.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(crt.Items))
	}
	it := crt.Items[0]
	if it.ProductID != 1 || it.Quantity != 2 || it.Name != "Premium Wireless Headphones" {
		t.Fatalf("unexpected item %+v", it)
	}
	if math.Abs(crt.Total-2*199.99) > 1e-9 {
		t.Fatalf("unexpected total %v", crt.Total)
	}
	if crt.ItemCount != 2 {
		t.Fatalf("unexpected itemCount %d", crt.ItemCount)
	}
}

func TestAddItemTwiceOverwritesQuantity(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	if _, err := s.AddItem("cart_a", 7, 2, 59.99, "USB-C Hub Multi-port"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	res, err := s.AddItem("cart_a", 7, 5, 59.99, "USB-C Hub Multi-port")
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if res.Created {
		t.Fatalf("second add must not create a new line item")
	}
	if res.Quantity != 5 {
		t.Fatalf("expected stored quantity 5, got %d", res.Quantity)
	}

	crt, _ := s.GetCart("cart_a")
	if len(crt.Items) != 1 {
		t.Fatalf("expected a single line item after double add, got %d", len(crt.Items))
	}
	if crt.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", crt.Items[0].Quantity)
	}
}

func TestAddItemRejectsBadInput(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	if _, err := s.AddItem("cart_a", 1, 0, 10, "x"); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity for qty 0, got %v", err)
	}
	if _, err := s.AddItem("cart_a", 0, 1, 10, "x"); !errors.Is(err, ErrInvalidProduct) {
		t.Fatalf("expected ErrInvalidProduct for product 0, got %v", err)
	}
}

func TestRemoveMissingItemIsNoop(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	if _, err := s.AddItem("cart_a", 1, 1, 10, "a"); err != nil {
		t.Fatalf("add: %v", err)
	}

	remaining, err := s.RemoveItem("cart_a", 999)
	if err != nil {
		t.Fatalf("remove of missing item must not error, got %v", err)
	}
	if remaining != 1 {
		t.Fatalf("expected 1 remaining item, got %d", remaining)
	}

	remaining, err = s.RemoveItem("cart_a", 1)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("expected 0 remaining items, got %d", remaining)
	}
}

func TestUpdateQuantityValidation(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	if _, err := s.AddItem("cart_a", 3, 2, 129.99, "4K Webcam Pro"); err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := s.UpdateQuantity("cart_a", 3, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := s.UpdateQuantity("cart_a", 3, -4); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}

	// stored quantity must be untouched after rejected updates
	crt, _ := s.GetCart("cart_a")
	if crt.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity to stay 2, got %d", crt.Items[0].Quantity)
	}

	if _, err := s.UpdateQuantity("cart_a", 42, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown item, got %v", err)
	}

	it, err := s.UpdateQuantity("cart_a", 3, 9)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if it.Quantity != 9 {
		t.Fatalf("expected quantity 9, got %d", it.Quantity)
	}
}

func TestGetCartUnknownIDIsEmpty(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	for _, id := range []string{"", "cart_never_seen"} {
		crt, err := s.GetCart(id)
		if err != nil {
			t.Fatalf("get cart %q: %v", id, err)
		}
		if len(crt.Items) != 0 || crt.Total != 0 || crt.ItemCount != 0 {
			t.Fatalf("expected empty cart for %q, got %+v", id, crt)
		}
	}
}

func TestClearCartIdempotent(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	if _, err := s.AddItem("cart_a", 1, 3, 10, "a"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.ClearCart("cart_a"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := s.ClearCart("cart_a"); err != nil {
		t.Fatalf("second clear must be a no-op, got %v", err)
	}

	crt, _ := s.GetCart("cart_a")
	if len(crt.Items) != 0 {
		t.Fatalf("expected empty cart after clear, got %d items", len(crt.Items))
	}
}
