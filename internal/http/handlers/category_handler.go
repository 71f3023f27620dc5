package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shelfwise/internal/services"
)

type CategoryHandler struct {
	*view
	Catalog *services.CatalogService
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Catalog.Categories(c.UserContext())
	if err != nil {
		h.failed(c, "categories.list", err, "Failed to load categories")
	}
	return h.render(c, "categories", fiber.Map{"Categories": cats})
}
