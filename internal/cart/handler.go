package cart

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Handler delegates cart operations to the cart service. The cart identity
// travels in the X-Cart-Id header; POST issues a fresh one when absent so a
// first add also creates the cart.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/cart", h.getCart)
	app.Post("/api/cart", h.addItem)
	app.Patch("/api/cart/:id", h.updateQuantity)
	app.Delete("/api/cart/:id", h.removeItem)
	app.Delete("/api/cart", h.clearCart)
}

type addItemRequest struct {
	ProductID int     `json:"productId"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
	Name      string  `json:"name"`
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cartID := c.Get(HeaderCartID)
	if cartID == "" {
		cartID = NewCartID()
	}

	res, err := h.service.AddItem(cartID, payload.ProductID, payload.Qty, payload.Price, payload.Name)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidQuantity), errors.Is(err, ErrInvalidProduct):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			slog.Error("add cart item failed", "cartId", cartID, "productId", payload.ProductID, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		}
	}

	message := "Cart updated"
	if res.Created {
		message = "Item added to cart"
	}
	return c.JSON(fiber.Map{"message": message, "cartId": res.CartID, "quantity": res.Quantity})
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	// no cart id means an empty cart, not an error
	crt, err := h.service.GetCart(c.Get(HeaderCartID))
	if err != nil {
		slog.Error("get cart failed", "cartId", c.Get(HeaderCartID), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(crt)
}

type updateQuantityRequest struct {
	Qty int `json:"qty"`
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	payload := new(updateQuantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if payload.Qty < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quantity"})
	}

	cartID := c.Get(HeaderCartID)
	if cartID == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cart not found"})
	}

	item, err := h.service.UpdateQuantity(cartID, productID, payload.Qty)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quantity"})
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cart item not found"})
		default:
			slog.Error("update quantity failed", "cartId", cartID, "productId", productID, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		}
	}
	return c.JSON(fiber.Map{"message": "Quantity updated", "item": item})
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	cartID := c.Get(HeaderCartID)
	if cartID == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cart not found"})
	}

	remaining, err := h.service.RemoveItem(cartID, productID)
	if err != nil {
		slog.Error("remove cart item failed", "cartId", cartID, "productId", productID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(fiber.Map{"message": "Item removed", "remaining": remaining})
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	cartID := c.Get(HeaderCartID)
	if cartID == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cart not found"})
	}

	if err := h.service.ClearCart(cartID); err != nil {
		slog.Error("clear cart failed", "cartId", cartID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
