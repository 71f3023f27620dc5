package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shelfwise/internal/domain"
	applog "shelfwise/internal/log"
	"shelfwise/internal/repos"
	"shelfwise/internal/services"
	"shelfwise/internal/validate"
)

type AdminHandler struct {
	*view
	Admin *services.AdminService
}

var adminTabs = []string{"overview", "products", "orders", "customers"}

func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	tab := c.Query("tab", "overview")
	known := false
	for _, t := range adminTabs {
		known = known || t == tab
	}
	if !known {
		tab = "overview"
	}
	d, err := h.Admin.Dashboard(c.UserContext(), token(c))
	if err != nil {
		h.failed(c, "admin.dashboard", err, "Failed to load dashboard")
	}
	return h.render(c, "admin", fiber.Map{
		"Tab":      tab,
		"Tabs":     adminTabs,
		"D":        d,
		"Statuses": domain.OrderStatuses,
	})
}

func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	st, ok := validate.OrderStatus(c.FormValue("status"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "status"})
		h.flash(c, repos.FlashError, "Unknown order status")
		return c.Redirect("/admin?tab=orders")
	}
	if err := h.Admin.UpdateOrderStatus(c.UserContext(), token(c), id, st); err != nil {
		h.failed(c, "admin.order.status", err, "Failed to update order status")
	} else {
		applog.Audit(c, "admin.order.status", map[string]any{"order": id, "status": string(st)})
		h.flash(c, repos.FlashSuccess, "Order status updated")
	}
	return c.Redirect("/admin?tab=orders")
}

func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		h.flash(c, repos.FlashError, "Category name is required")
		return c.Redirect("/admin?tab=products")
	}
	if err := h.Admin.CreateCategory(c.UserContext(), token(c), name); err != nil {
		h.failed(c, "admin.category.create", err, "Failed to create category")
	} else {
		applog.Audit(c, "admin.category.create", map[string]any{"name": name})
		h.flash(c, repos.FlashSuccess, "Category created")
	}
	return c.Redirect("/admin?tab=products")
}

func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	id, ok := validate.NumericID(c.Params("id"))
	if !ok {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	if err := h.Admin.DeleteCategory(c.UserContext(), token(c), id); err != nil {
		h.failed(c, "admin.category.delete", err, "Failed to delete category")
	} else {
		applog.Audit(c, "admin.category.delete", map[string]any{"category": id})
		h.flash(c, repos.FlashSuccess, "Category deleted")
	}
	return c.Redirect("/admin?tab=products")
}

func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	if err := h.Admin.DeleteProduct(c.UserContext(), token(c), id); err != nil {
		h.failed(c, "admin.product.delete", err, "Failed to delete product")
	} else {
		applog.Audit(c, "admin.product.delete", map[string]any{"product": id})
		h.flash(c, repos.FlashSuccess, "Product deleted")
	}
	return c.Redirect("/admin?tab=products")
}

type productForm struct {
	Name        string
	Description string
	Price       string
	CategoryID  string
	Quantity    string
	SKU         string
	ImageURL    string
}

func (h *AdminHandler) NewProductForm(c *fiber.Ctx) error {
	return h.productForm(c, productForm{Quantity: "0"}, nil)
}

func (h *AdminHandler) productForm(c *fiber.Ctx, f productForm, errs map[string]string) error {
	cats, err := h.Admin.Categories(c.UserContext())
	if err != nil {
		h.failed(c, "admin.categories", err, "Failed to load categories")
	}
	if len(errs) > 0 {
		c.Status(fiber.StatusUnprocessableEntity)
	}
	return h.render(c, "admin_product_new", fiber.Map{"Form": f, "Errors": errs, "Categories": cats})
}

func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	f := productForm{
		Name:        c.FormValue("name"),
		Description: validate.Text(c.FormValue("description"), 2000),
		Price:       c.FormValue("price"),
		CategoryID:  c.FormValue("categoryId"),
		Quantity:    c.FormValue("quantity"),
		SKU:         c.FormValue("sku"),
		ImageURL:    validate.Text(c.FormValue("imageUrl"), 500),
	}
	in := domain.NewProduct{Description: f.Description, ImageURL: f.ImageURL}
	errs := map[string]string{}
	var ok bool
	if in.Name, ok = validate.ProductName(f.Name); !ok {
		errs["name"] = "Product name is required"
	}
	if in.Price, ok = validate.Price(f.Price); !ok {
		errs["price"] = "Price must be greater than 0"
	}
	if in.CategoryID, ok = validate.NumericID(f.CategoryID); !ok {
		errs["categoryId"] = "Category is required"
	}
	if in.Quantity, ok = validate.Stock(f.Quantity); !ok {
		errs["quantity"] = "Quantity must be 0 or more"
	}
	if in.SKU, ok = validate.SKU(f.SKU); !ok {
		errs["sku"] = "SKU is required"
	}
	if len(errs) > 0 {
		applog.Security(c, "validation.fail", map[string]any{"form": "product"})
		return h.productForm(c, f, errs)
	}

	p, err := h.Admin.CreateProduct(c.UserContext(), token(c), in)
	if err != nil {
		h.failed(c, "admin.product.create", err, "Failed to create product")
		return h.productForm(c, f, nil)
	}
	applog.Audit(c, "admin.product.create", map[string]any{"product": p.ID, "sku": in.SKU})
	h.flash(c, repos.FlashSuccess, "Product created successfully!")
	return c.Redirect("/admin?tab=products")
}
