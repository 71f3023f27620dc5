package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "shelfwise/internal/log"
	"shelfwise/internal/repos"
	"shelfwise/internal/services"
	"shelfwise/internal/validate"
)

type WishlistHandler struct {
	*view
	Wish *services.WishlistService
}

func (h *WishlistHandler) List(c *fiber.Ctx) error {
	items, err := h.Wish.List(c.UserContext(), token(c))
	if err != nil {
		if h.signInFirst(c, err) {
			return nil
		}
		h.failed(c, "wishlist.load", err, "Failed to load wishlist")
	}
	return h.render(c, "wishlist", fiber.Map{"Items": items})
}

func (h *WishlistHandler) Save(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	if err := h.Wish.Save(c.UserContext(), token(c), id); err != nil {
		h.failed(c, "wishlist.add", err, "Failed to add to wishlist")
	} else {
		h.flash(c, repos.FlashSuccess, "Added to wishlist")
	}
	return back(c, "/wishlist")
}

func (h *WishlistHandler) Unsave(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("productId"))
	if !ok {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	if err := h.Wish.Unsave(c.UserContext(), token(c), id); err != nil {
		h.failed(c, "wishlist.remove", err, "Failed to remove item")
	} else {
		h.flash(c, repos.FlashSuccess, "Removed from wishlist")
	}
	return c.Redirect("/wishlist")
}

func (h *WishlistHandler) Clear(c *fiber.Ctx) error {
	if err := h.Wish.Clear(c.UserContext(), token(c)); err != nil {
		h.failed(c, "wishlist.clear", err, "Failed to clear wishlist")
	} else {
		h.flash(c, repos.FlashSuccess, "Wishlist cleared")
	}
	return c.Redirect("/wishlist")
}

func (h *WishlistHandler) MoveToCart(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("productId"))
	if !ok {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	if err := h.Wish.MoveToCart(c.UserContext(), token(c), id); err != nil {
		h.failed(c, "wishlist.move", err, "Failed to move item to cart")
	} else {
		h.flash(c, repos.FlashSuccess, "Moved to cart")
	}
	return c.Redirect("/wishlist")
}
