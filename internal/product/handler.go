package product

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/products", h.getProducts)
}

// getProducts lists the whole catalog, or only the products named by the
// `ids` query parameter (comma-separated), preserving the requested order.
func (h *Handler) getProducts(c *fiber.Ctx) error {
	var (
		products []Product
		err      error
	)

	if raw := c.Query("ids"); raw != "" {
		ids := make([]int, 0)
		for _, s := range strings.Split(raw, ",") {
			id, convErr := strconv.Atoi(strings.TrimSpace(s))
			if convErr != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid ids parameter"})
			}
			ids = append(ids, id)
		}
		products, err = h.service.ListByIDs(ids)
	} else {
		products, err = h.service.List()
	}

	if err != nil {
		slog.Error("list products failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(products)
}
