package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	applog "shelfwise/internal/log"
	"shelfwise/internal/repos"
	"shelfwise/internal/services"
	"shelfwise/internal/validate"
)

type CartHandler struct {
	*view
	Cart *services.CartService
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	cv, err := h.Cart.View(c.UserContext(), token(c))
	if err != nil {
		if h.signInFirst(c, err) {
			return nil
		}
		h.failed(c, "cart.load", err, "Failed to load cart")
	}
	return h.render(c, "cart", fiber.Map{"Cart": cv})
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	qty := validate.Qty(c.FormValue("qty"))
	if err := h.Cart.Add(c.UserContext(), token(c), productID, qty); err != nil {
		if h.signInFirst(c, err) {
			return nil
		}
		h.failed(c, "cart.add", err, "Failed to add to cart")
		return back(c, "/products/"+productID)
	}
	h.flash(c, repos.FlashSuccess, "Added to cart")
	return back(c, "/cart")
}

func itemID(c *fiber.Ctx) (int64, bool) {
	id, ok := validate.NumericID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "itemId"})
	}
	return id, ok
}

// Update sets an item's quantity; the ± buttons post the target quantity.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	id, ok := itemID(c)
	if !ok {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	qty, err := strconv.Atoi(c.FormValue("qty"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	if err := h.Cart.SetQuantity(c.UserContext(), token(c), id, min(qty, 50)); err != nil {
		h.failed(c, "cart.update", err, "Failed to update quantity")
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := itemID(c)
	if !ok {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	if err := h.Cart.Remove(c.UserContext(), token(c), id); err != nil {
		h.failed(c, "cart.remove", err, "Failed to remove item")
	} else {
		h.flash(c, repos.FlashSuccess, "Item removed from cart")
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.Cart.Clear(c.UserContext(), token(c)); err != nil {
		h.failed(c, "cart.clear", err, "Failed to clear cart")
	} else {
		h.flash(c, repos.FlashSuccess, "Cart cleared")
	}
	return c.Redirect("/cart")
}
