package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"shelfwise/internal/api"
	applog "shelfwise/internal/log"
	"shelfwise/internal/repos"
	"shelfwise/internal/services"
	"shelfwise/internal/validate"
)

type OrderHandler struct {
	*view
	Cart   *services.CartService
	Orders *services.OrderService
}

var checkoutSteps = []string{"shipping", "payment", "review"}

// checkoutForm travels between steps as hidden fields. The card number itself is
// never echoed back; only its last four digits are.
type checkoutForm struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	State     string
	ZIP       string
	Phone     string
	CardName  string
	CardLast4 string
	Expiry    string
}

func readCheckout(c *fiber.Ctx) checkoutForm {
	return checkoutForm{
		FirstName: validate.Text(c.FormValue("firstName"), 50),
		LastName:  validate.Text(c.FormValue("lastName"), 50),
		Address:   validate.Text(c.FormValue("address"), 200),
		City:      validate.Text(c.FormValue("city"), 80),
		State:     validate.Text(c.FormValue("state"), 40),
		ZIP:       validate.Text(c.FormValue("zip"), 10),
		Phone:     validate.Text(c.FormValue("phone"), 20),
		CardName:  validate.Text(c.FormValue("cardName"), 80),
		CardLast4: validate.Text(c.FormValue("cardLast4"), 4),
		Expiry:    validate.Text(c.FormValue("expiry"), 5),
	}
}

func (f checkoutForm) shippingErrors() map[string]string {
	errs := map[string]string{}
	if _, ok := validate.Name(f.FirstName); !ok {
		errs["firstName"] = "First name is required"
	}
	if _, ok := validate.Name(f.LastName); !ok {
		errs["lastName"] = "Last name is required"
	}
	if _, ok := validate.Address(f.Address); !ok {
		errs["address"] = "Address is required"
	}
	if f.City == "" {
		errs["city"] = "City is required"
	}
	if f.State == "" {
		errs["state"] = "State is required"
	}
	if _, ok := validate.ZIP(f.ZIP); !ok {
		errs["zip"] = "Enter a valid ZIP code"
	}
	if _, ok := validate.Phone(f.Phone); !ok || f.Phone == "" {
		errs["phone"] = "Enter a valid phone number"
	}
	return errs
}

// paymentErrors re-checks the payment fields carried as hidden inputs after the payment step.
func (f checkoutForm) paymentErrors() map[string]string {
	errs := map[string]string{}
	if !validate.Last4(f.CardLast4) {
		errs["cardNumber"] = "Enter a valid card number"
	}
	if f.CardName == "" {
		errs["cardName"] = "Cardholder name is required"
	}
	if _, ok := validate.Expiry(f.Expiry, time.Now()); !ok {
		errs["expiry"] = "Enter a valid expiry date"
	}
	return errs
}

// ShippingAddress is what the backend stores on the order.
func (f checkoutForm) ShippingAddress() string {
	parts := []string{f.FirstName + " " + f.LastName, f.Address, f.City + ", " + f.State + " " + f.ZIP}
	if f.Phone != "" {
		parts = append(parts, f.Phone)
	}
	return strings.Join(parts, "\n")
}

func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	return h.checkoutStep(c, "shipping", checkoutForm{}, nil)
}

// Step moves between checkout steps, validating everything before the target step.
func (h *OrderHandler) Step(c *fiber.Ctx) error {
	f := readCheckout(c)
	target := c.FormValue("step")
	switch target {
	case "payment":
		if errs := f.shippingErrors(); len(errs) > 0 {
			return h.checkoutStep(c, "shipping", f, errs)
		}
	case "review":
		if errs := f.shippingErrors(); len(errs) > 0 {
			return h.checkoutStep(c, "shipping", f, errs)
		}
		if c.FormValue("cardNumber") != "" || f.CardLast4 == "" {
			errs := map[string]string{}
			last4, ok := validate.CardNumber(c.FormValue("cardNumber"))
			if !ok {
				errs["cardNumber"] = "Enter a valid card number"
			}
			if f.CardName == "" {
				errs["cardName"] = "Cardholder name is required"
			}
			if _, ok := validate.Expiry(f.Expiry, time.Now()); !ok {
				errs["expiry"] = "Enter a valid expiry date"
			}
			if !validate.CVV(c.FormValue("cvv")) {
				errs["cvv"] = "Enter a valid CVV"
			}
			if len(errs) > 0 {
				f.CardLast4 = ""
				return h.checkoutStep(c, "payment", f, errs)
			}
			f.CardLast4 = last4
		} else if errs := f.paymentErrors(); len(errs) > 0 {
			f.CardLast4 = ""
			return h.checkoutStep(c, "payment", f, errs)
		}
	default:
		target = "shipping"
	}
	return h.checkoutStep(c, target, f, nil)
}

func (h *OrderHandler) checkoutStep(c *fiber.Ctx, step string, f checkoutForm, errs map[string]string) error {
	cv, err := h.Cart.View(c.UserContext(), token(c))
	if err != nil {
		if h.signInFirst(c, err) {
			return nil
		}
		h.failed(c, "checkout.load", err, "Failed to load cart")
		return c.Redirect("/cart")
	}
	if cv.Empty() {
		h.flash(c, repos.FlashInfo, "Your cart is empty")
		return c.Redirect("/cart")
	}
	if len(errs) > 0 {
		c.Status(fiber.StatusUnprocessableEntity)
	}
	return h.render(c, "checkout", fiber.Map{
		"Step":   step,
		"Steps":  checkoutSteps,
		"Form":   f,
		"Errors": errs,
		"Cart":   cv,
	})
}

// Place submits the order from the review step.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	f := readCheckout(c)
	if errs := f.shippingErrors(); len(errs) > 0 {
		applog.Security(c, "validation.fail", map[string]any{"field": "shipping"})
		return h.checkoutStep(c, "shipping", f, errs)
	}
	if errs := f.paymentErrors(); len(errs) > 0 {
		applog.Security(c, "validation.fail", map[string]any{"field": "payment"})
		f.CardLast4 = ""
		return h.checkoutStep(c, "payment", f, errs)
	}
	order, err := h.Orders.Place(c.UserContext(), token(c), f.ShippingAddress())
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		h.flash(c, repos.FlashInfo, "Your cart is empty")
		return c.Redirect("/cart")
	case err != nil:
		if h.signInFirst(c, err) {
			return nil
		}
		h.failed(c, "order.place", err, "Failed to place order")
		return h.checkoutStep(c, "review", f, nil)
	}
	applog.Audit(c, "order.place", map[string]any{"order": order.ID, "total": order.TotalPrice})
	h.flash(c, repos.FlashSuccess, "Order placed successfully!")
	return c.Redirect("/orders/" + order.ID)
}

func (h *OrderHandler) History(c *fiber.Ctx) error {
	orders, err := h.Orders.List(c.UserContext(), token(c))
	if err != nil {
		if h.signInFirst(c, err) {
			return nil
		}
		h.failed(c, "orders.list", err, "Failed to load orders")
	}
	return h.render(c, "orders", fiber.Map{"Orders": orders})
}

func (h *OrderHandler) View(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		c.Status(fiber.StatusNotFound)
		return h.render(c, "notfound", fiber.Map{"Message": "Order not found"})
	}
	order, err := h.Orders.Get(c.UserContext(), token(c), id)
	if err != nil {
		if h.signInFirst(c, err) {
			return nil
		}
		if !api.IsNotFound(err) {
			h.failed(c, "order.load", err, "Failed to load order")
		}
		c.Status(fiber.StatusNotFound)
		return h.render(c, "notfound", fiber.Map{"Message": "Order not found"})
	}
	return h.render(c, "order", fiber.Map{"Order": order})
}
