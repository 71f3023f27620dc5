package handlers

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"shelfwise/internal/api"
	"shelfwise/internal/domain"
	"shelfwise/internal/live"
	applog "shelfwise/internal/log"
	"shelfwise/internal/repos"
	"shelfwise/internal/services"
	"shelfwise/internal/validate"
)

type ProductHandler struct {
	*view
	Catalog  *services.CatalogService
	Tracker  *live.Tracker
	Debounce time.Duration
}

type categoryChip struct {
	Name   string
	Count  int
	URL    string
	Active bool
}

type listing struct {
	Search   string
	Category string
	View     string
	Page     int
}

func (l listing) url(page int) string {
	v := url.Values{}
	if l.Search != "" {
		v.Set("search", l.Search)
	}
	if l.Category != "" {
		v.Set("category", l.Category)
	}
	if l.View == "list" {
		v.Set("view", "list")
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	if len(v) == 0 {
		return "/products"
	}
	return "/products?" + v.Encode()
}

func parseListing(c *fiber.Ctx) (listing, bool) {
	l := listing{View: "grid", Page: c.QueryInt("page", 1)}
	if c.Query("view") == "list" {
		l.View = "list"
	}
	if l.Page < 1 {
		l.Page = 1
	}
	ok := true
	if raw := c.Query("search"); raw != "" {
		l.Search, ok = validate.Q(raw)
		if !ok {
			l.Search = ""
		}
	}
	if id, valid := validate.NumericID(c.Query("category")); valid {
		l.Category = strconv.FormatInt(id, 10)
	}
	return l, ok
}

// List is the catalog page: search, category toggle, grid or list view, pagination.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	l, ok := parseListing(c)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "search"})
		h.flash(c, repos.FlashError, "Search may not contain < > or control characters")
	}

	res, err := h.Catalog.Browse(c.UserContext(), api.ProductQuery{
		Category: l.Category, Search: l.Search, Page: l.Page, Limit: 12,
	})
	if err != nil {
		h.failed(c, "products.list", err, "Failed to load products")
	}
	if res.CategoriesErr != nil {
		applog.Error(c, "products.categories", res.CategoriesErr, nil)
	}

	chips := make([]categoryChip, 0, len(res.Categories))
	for _, cat := range res.Categories {
		id := strconv.FormatInt(cat.ID, 10)
		next := l
		next.Category = domain.ToggleCategory(l.Category, id)
		chips = append(chips, categoryChip{Name: cat.Name, Count: cat.ProductCount, URL: next.url(1), Active: id == l.Category})
	}
	all := l
	all.Category = ""
	grid, list := l, l
	grid.View, list.View = "grid", "list"

	return h.render(c, "products", fiber.Map{
		"Products":   res.Products,
		"Chips":      chips,
		"AllURL":     all.url(1),
		"GridURL":    grid.url(l.Page),
		"ListURL":    list.url(l.Page),
		"PrevURL":    l.url(l.Page - 1),
		"NextURL":    l.url(l.Page + 1),
		"Listing":    l,
		"Unfiltered": l.Category == "",
	})
}

// Live answers the search box. Requests from the same browser supersede each other;
// a superseded one gets 204 and the page keeps the newer results.
func (h *ProductHandler) Live(c *fiber.Ctx) error {
	l, ok := parseListing(c)
	if !ok {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	var items []domain.Product
	err := h.Tracker.Run(c.UserContext(), h.ensureSID(c), h.Debounce, func(ctx context.Context) error {
		var err error
		items, err = h.Catalog.Search(ctx, l.Search, l.Category)
		return err
	})
	switch {
	case errors.Is(err, live.ErrSuperseded):
		return c.SendStatus(fiber.StatusNoContent)
	case err != nil:
		applog.Error(c, "products.live", err, map[string]any{"q": l.Search})
		return c.Render("products_live", fiber.Map{"Error": api.Message(err, "Failed to load products"), "Listing": l})
	}
	return c.Render("products_live", fiber.Map{"Items": items, "Listing": l, "CSRFToken": c.Locals("csrf")})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		c.Status(fiber.StatusNotFound)
		return h.render(c, "notfound", fiber.Map{"Message": "Product not found"})
	}
	d, err := h.Catalog.Product(c.UserContext(), id)
	if err != nil {
		if !api.IsNotFound(err) {
			h.failed(c, "product.load", err, "Failed to load product")
		}
		c.Status(fiber.StatusNotFound)
		return h.render(c, "notfound", fiber.Map{"Message": "Product not found"})
	}
	if d.ReviewsErr != nil {
		applog.Error(c, "product.reviews", d.ReviewsErr, map[string]any{"product": id})
	}
	return h.render(c, "product", fiber.Map{
		"Product": d.Product,
		"Reviews": d.Reviews,
		"Rating":  averageRating(d.Product, d.Reviews),
		"MaxQty":  min(d.Product.Quantity, 50),
	})
}

func averageRating(p domain.Product, rs []domain.Review) float64 {
	if len(rs) == 0 {
		return p.Rating
	}
	sum := 0
	for _, r := range rs {
		sum += r.Rating
	}
	return float64(sum) / float64(len(rs))
}

func (h *ProductHandler) Review(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}
	rating, ok := validate.Rating(c.FormValue("rating"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "rating"})
		h.flash(c, repos.FlashError, "Please choose a rating from 1 to 5")
		return c.Redirect("/products/" + id)
	}
	in := domain.ReviewInput{Rating: rating, Comment: validate.Text(c.FormValue("comment"), 1000)}
	if err := h.Catalog.Review(c.UserContext(), token(c), id, in); err != nil {
		if h.signInFirst(c, err) {
			return nil
		}
		h.failed(c, "review.create", err, "Failed to submit review")
		return c.Redirect("/products/" + id)
	}
	applog.Audit(c, "review.create", map[string]any{"product": id, "rating": rating})
	h.flash(c, repos.FlashSuccess, "Thanks for your review!")
	return c.Redirect("/products/" + id)
}
