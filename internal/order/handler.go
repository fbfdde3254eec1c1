package order

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/vibecommerce/storefront-backend/internal/cart"
)

// CartClearer empties the originating cart once an order is committed.
type CartClearer interface {
	ClearCart(cartID string) error
}

// Handler delegates checkout to the order service and clears the source
// cart afterwards.
type Handler struct {
	service *Service
	carts   CartClearer
}

func NewHandler(s *Service, carts CartClearer) *Handler {
	return &Handler{service: s, carts: carts}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/checkout", h.checkout)
}

type checkoutItem struct {
	ProductID int `json:"productId"`
	// some clients send the catalog id instead of productId
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type checkoutRequest struct {
	CartItems     []checkoutItem `json:"cartItems"`
	CustomerName  string         `json:"customerName"`
	CustomerEmail string         `json:"customerEmail"`
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	payload := new(checkoutRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	items := make([]LineItem, 0, len(payload.CartItems))
	for _, it := range payload.CartItems {
		productID := it.ProductID
		if productID == 0 {
			productID = it.ID
		}
		items = append(items, LineItem{
			ProductID: productID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	receipt, err := h.service.Checkout(items, payload.CustomerName, payload.CustomerEmail)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingCustomer), errors.Is(err, ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			slog.Error("checkout failed", "customer", payload.CustomerEmail, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		}
	}

	// the order is committed; clearing the source cart is best-effort and
	// must not fail the response
	if cartID := c.Get(cart.HeaderCartID); cartID != "" && h.carts != nil {
		if err := h.carts.ClearCart(cartID); err != nil {
			slog.Warn("could not clear cart after checkout", "cartId", cartID, "orderId", receipt.OrderID, "error", err)
		}
	}

	return c.JSON(receipt)
}
