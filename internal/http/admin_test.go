package handlers_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestAdminDeniedForClients(t *testing.T) {
	logs := captureLogs(t)
	b := newBrowser(t, signedIn(tokClient))

	resp := b.get("/admin")
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	if s := body(t, resp); !strings.Contains(s, "Access denied") {
		t.Fatalf("denial message missing; body=%s", s)
	}

	resp = b.post("/admin/categories", url.Values{"name": {"Sneaky"}})
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for form post, got %d", resp.StatusCode)
	}
	if n := b.backend.Hits("POST /api/categories"); n != 0 {
		t.Fatalf("denied request reached the backend %d times", n)
	}
	if !strings.Contains(logs.String(), `"action":"access.denied.admin"`) {
		t.Fatalf("denial not logged: %s", logs.String())
	}
}

func TestAdminDashboardTabs(t *testing.T) {
	b := newBrowser(t, signedIn(tokAdmin))

	s := body(t, b.get("/admin"))
	if !strings.Contains(s, "Admin Dashboard") || !strings.Contains(s, "Total Revenue") {
		t.Fatalf("overview missing; body=%s", s)
	}
	s = body(t, b.get("/admin?tab=products"))
	if !strings.Contains(s, "Chess Set") || !strings.Contains(s, "Out of Stock") {
		t.Fatalf("products tab missing rows; body=%s", s)
	}
	s = body(t, b.get("/admin?tab=customers"))
	if !strings.Contains(s, "casey@example.com") {
		t.Fatalf("customers tab missing users; body=%s", s)
	}
	if s := body(t, b.get("/admin?tab=bogus")); !strings.Contains(s, "Total Revenue") {
		t.Fatal("unknown tab should fall back to the overview")
	}
}

func TestAdminCategoryLifecycle(t *testing.T) {
	b := newBrowser(t, signedIn(tokAdmin))

	expectRedirect(t, b.post("/admin/categories", url.Values{"name": {"Puzzles"}}), "/admin?tab=products")
	s := body(t, b.get("/admin?tab=products"))
	if !strings.Contains(s, "Category created") || !strings.Contains(s, "Puzzles") {
		t.Fatalf("category not shown; body=%s", s)
	}

	expectRedirect(t, b.post("/admin/categories", url.Values{"name": {"  "}}), "/admin?tab=products")
	if n := b.backend.Hits("POST /api/categories"); n != 1 {
		t.Fatalf("blank name reached the backend")
	}
}

func TestAdminCreateProductValidates(t *testing.T) {
	b := newBrowser(t, signedIn(tokAdmin))

	if s := body(t, b.get("/admin/products/new")); !strings.Contains(s, "Add New Product") || !strings.Contains(s, "Books") {
		t.Fatalf("form or categories missing; body=%s", s)
	}

	resp := b.post("/admin/products", url.Values{"name": {"Widget"}, "price": {"0"}, "quantity": {"-1"}})
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
	s := body(t, resp)
	for _, msg := range []string{"Price must be greater than 0", "Category is required", "SKU is required"} {
		if !strings.Contains(s, msg) {
			t.Fatalf("missing %q; body=%s", msg, s)
		}
	}
	if !strings.Contains(s, `value="Widget"`) {
		t.Fatal("entered values should be kept")
	}
	if n := b.backend.Hits("POST /api/products"); n != 0 {
		t.Fatal("invalid product reached the backend")
	}

	expectRedirect(t, b.post("/admin/products", url.Values{
		"name": {"Widget"}, "price": {"12.50"}, "quantity": {"4"}, "categoryId": {"102"}, "sku": {"WG-1"},
	}), "/admin?tab=products")
	if s := body(t, b.get("/admin?tab=products")); !strings.Contains(s, "Widget") {
		t.Fatalf("new product not listed; body=%s", s)
	}
}

func TestAdminOrderStatus(t *testing.T) {
	b := newBrowser(t, signedIn(tokAdmin))
	b.post("/cart/items", url.Values{"productId": {"p-1"}})
	b.post("/orders", paid())
	orders := b.backend.Orders()
	if len(orders) != 1 {
		t.Fatalf("expected an order, got %d", len(orders))
	}
	id := orders[0].ID

	expectRedirect(t, b.post("/admin/orders/"+id+"/status", url.Values{"status": {"lost"}}), "/admin?tab=orders")
	if s := body(t, b.get("/admin?tab=orders")); !strings.Contains(s, "Unknown order status") {
		t.Fatalf("bad status not rejected; body=%s", s)
	}

	expectRedirect(t, b.post("/admin/orders/"+id+"/status", url.Values{"status": {"shipped"}}), "/admin?tab=orders")
	if st := b.backend.Orders()[0].Status; st != "shipped" {
		t.Fatalf("status not updated: %s", st)
	}
	s := body(t, b.get("/admin?tab=orders"))
	if !strings.Contains(s, "Order status updated") || !strings.Contains(s, `value="shipped" selected`) {
		t.Fatalf("orders tab does not reflect the update; body=%s", s)
	}
}
