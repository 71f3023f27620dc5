package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"shelfwise/internal/api"
	applog "shelfwise/internal/log"
	"shelfwise/internal/services"
)

type HomeHandler struct {
	*view
	Catalog *services.CatalogService
}

// Home is the landing page with a few featured products.
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	data := fiber.Map{}
	res, err := h.Catalog.Browse(c.UserContext(), api.ProductQuery{Page: 1, Limit: 4})
	if err != nil {
		applog.Error(c, "home.featured", err, nil)
	} else {
		data["Featured"] = res.Products.Items
		data["Categories"] = res.Categories
	}
	return h.render(c, "home", data)
}

func (h *HomeHandler) ComingSoon(c *fiber.Ctx) error {
	return h.render(c, "coming_soon", nil)
}

// Theme sets the requested theme, or flips the current one.
func (h *HomeHandler) Theme(c *fiber.Ctx) error {
	next := c.FormValue("theme")
	if next != "light" && next != "dark" {
		next = "dark"
		if theme(c) == "dark" {
			next = "light"
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     themeCookie,
		Value:    next,
		Path:     "/",
		Expires:  time.Now().AddDate(1, 0, 0),
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   h.Secure,
	})
	return back(c, "/")
}
