// Package apitest runs an in-memory ShelfWise backend for tests and local development.
package apitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"shelfwise/internal/domain"
)

type account struct {
	user    domain.User
	profile *domain.Profile
}

// Backend holds every resource in memory. Accounts are keyed by bearer token.
type Backend struct {
	mu sync.Mutex

	accounts   map[string]*account
	categories []domain.Category
	products   []domain.Product
	carts      map[int64]*domain.Cart
	orders     []domain.Order
	wishlist   map[int64][]domain.WishlistItem
	reviews    map[string][]domain.Review
	nextID     int64

	hits map[string]int
}

func New() *Backend {
	return &Backend{
		accounts: map[string]*account{},
		carts:    map[int64]*domain.Cart{},
		wishlist: map[int64][]domain.WishlistItem{},
		reviews:  map[string][]domain.Review{},
		hits:     map[string]int{},
		nextID:   100,
	}
}

// Seeded returns a backend with a small catalog.
func Seeded() *Backend {
	b := New()
	books := b.AddCategory("Books")
	games := b.AddCategory("Games")
	b.AddProduct(domain.Product{ID: "p-1", Name: "Go in Practice", Price: 40, Quantity: 5, SKU: "BK-1", CategoryID: books.ID})
	b.AddProduct(domain.Product{ID: "p-2", Name: "Distributed Systems", Price: 25.5, Quantity: 0, SKU: "BK-2", CategoryID: books.ID})
	b.AddProduct(domain.Product{ID: "p-3", Name: "Chess Set", Price: 60, Quantity: 3, SKU: "GM-1", CategoryID: games.ID})
	return b
}

func (b *Backend) id() int64 {
	b.nextID++
	return b.nextID
}

// AddAccount registers a bearer token. A nil profile means the user has none yet.
func (b *Backend) AddAccount(token string, u domain.User, p *domain.Profile) domain.User {
	b.mu.Lock()
	defer b.mu.Unlock()
	if u.ID == 0 {
		u.ID = b.id()
	}
	if p != nil {
		p.UserID = u.ID
	}
	b.accounts[token] = &account{user: u, profile: p}
	return u
}

func (b *Backend) AddCategory(name string) domain.Category {
	b.mu.Lock()
	defer b.mu.Unlock()
	c := domain.Category{ID: b.id(), Name: name}
	b.categories = append(b.categories, c)
	return c
}

func (b *Backend) AddProduct(p domain.Product) domain.Product {
	b.mu.Lock()
	defer b.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	b.products = append(b.products, p)
	return p
}

func (b *Backend) AddReview(productID string, r domain.Review) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r.ID = b.id()
	r.ProductID = productID
	b.reviews[productID] = append(b.reviews[productID], r)
}

// Hits counts requests by "METHOD /path".
func (b *Backend) Hits(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[key]
}

func (b *Backend) Orders() []domain.Order {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.Order(nil), b.orders...)
}

func (b *Backend) Profile(token string) *domain.Profile {
	b.mu.Lock()
	defer b.mu.Unlock()
	if a, ok := b.accounts[token]; ok && a.profile != nil {
		p := *a.profile
		return &p
	}
	return nil
}

func (b *Backend) User(token string) (domain.User, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.userLocked(token)
}

// userLocked expects b.mu to be held.
func (b *Backend) userLocked(token string) (domain.User, bool) {
	a, ok := b.accounts[token]
	if !ok {
		return domain.User{}, false
	}
	return a.user, true
}

// Server starts an httptest server with the API mounted at /api.
func Server(b *Backend) *httptest.Server {
	return httptest.NewServer(b.Handler())
}

func (b *Backend) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(b.count)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", b.listProducts)
		r.Get("/products/{id}", b.getProduct)
		r.Get("/products/{id}/reviews", b.listReviews)
		r.Get("/categories", b.listCategories)

		r.Group(func(r chi.Router) {
			r.Use(b.authenticated)
			r.Get("/users/me", b.me)
			r.Post("/users/select-role", b.selectRole)

			r.Group(func(r chi.Router) {
				r.Use(b.registered)
				r.Get("/profile", b.getProfile)
				r.Post("/profile", b.createProfile)
				r.Put("/profile", b.saveProfile)

				r.Get("/cart", b.getCart)
				r.Delete("/cart", b.clearCart)
				r.Post("/cart/items", b.addCartItem)
				r.Put("/cart/items/{id}", b.updateCartItem)
				r.Delete("/cart/items/{id}", b.removeCartItem)

				r.Get("/orders", b.listOrders)
				r.Post("/orders", b.createOrder)
				r.Get("/orders/{id}", b.getOrder)

				r.Get("/wishlist", b.listWishlist)
				r.Post("/wishlist", b.addWishlist)
				r.Delete("/wishlist/{productId}", b.removeWishlist)

				r.Post("/products/{id}/reviews", b.createReview)

				r.Group(func(r chi.Router) {
					r.Use(b.adminOnly)
					r.Get("/users", b.listUsers)
					r.Post("/products", b.createProduct)
					r.Put("/products/{id}", b.updateProduct)
					r.Delete("/products/{id}", b.deleteProduct)
					r.Post("/categories", b.createCategory)
					r.Delete("/categories/{id}", b.deleteCategory)
					r.Get("/orders/admin/all", b.adminOrders)
					r.Get("/orders/admin/stats", b.adminStats)
					r.Put("/orders/{id}/status", b.updateOrderStatus)
				})
			})
		})
	})
	return r
}

func (b *Backend) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.hits[r.Method+" "+r.URL.Path]++
		b.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func token(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if t, ok := strings.CutPrefix(h, "Bearer "); ok {
		return strings.TrimSpace(t)
	}
	return ""
}

func (b *Backend) authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token(r) == "" {
			fail(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) registered(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := b.User(token(r)); !ok {
			fail(w, http.StatusNotFound, "User not found")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u, _ := b.User(token(r)); !u.IsAdmin() {
			fail(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func reply(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func fail(w http.ResponseWriter, status int, msg string) {
	reply(w, status, map[string]string{"message": msg})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		fail(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// --- catalog ---

func (b *Backend) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}
	search := strings.ToLower(q.Get("search"))
	cat := q.Get("category")

	b.mu.Lock()
	var match []domain.Product
	for _, p := range b.products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if cat != "" && strconv.FormatInt(p.CategoryID, 10) != cat && !strings.EqualFold(b.categoryName(p.CategoryID), cat) {
			continue
		}
		match = append(match, b.withCategory(p))
	}
	b.mu.Unlock()

	total := len(match)
	start := min((page-1)*limit, total)
	end := min(start+limit, total)
	reply(w, http.StatusOK, map[string]any{
		"products":   nonNil(match[start:end]),
		"total":      total,
		"page":       page,
		"limit":      limit,
		"totalPages": max((total+limit-1)/limit, 1),
	})
}

func (b *Backend) categoryName(id int64) string {
	for _, c := range b.categories {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

func (b *Backend) withCategory(p domain.Product) domain.Product {
	for _, c := range b.categories {
		if c.ID == p.CategoryID {
			c := c
			p.Category = &c
		}
	}
	return p
}

func (b *Backend) findProduct(id string) (int, bool) {
	for i, p := range b.products {
		if p.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (b *Backend) getProduct(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i, ok := b.findProduct(chi.URLParam(r, "id"))
	if !ok {
		fail(w, http.StatusNotFound, "Product not found")
		return
	}
	reply(w, http.StatusOK, map[string]any{"data": b.withCategory(b.products[i])})
}

func (b *Backend) createProduct(w http.ResponseWriter, r *http.Request) {
	var in domain.NewProduct
	if !decode(w, r, &in) {
		return
	}
	if in.Name == "" || in.Price <= 0 || in.SKU == "" {
		fail(w, http.StatusBadRequest, "Name, price and SKU are required")
		return
	}
	p := b.AddProduct(productFrom("", in))
	reply(w, http.StatusCreated, p)
}

func productFrom(id string, in domain.NewProduct) domain.Product {
	return domain.Product{
		ID: id, Name: in.Name, Description: in.Description, Price: in.Price,
		CategoryID: in.CategoryID, Quantity: in.Quantity, SKU: in.SKU, ImageURL: in.ImageURL,
	}
}

func (b *Backend) updateProduct(w http.ResponseWriter, r *http.Request) {
	var in domain.NewProduct
	if !decode(w, r, &in) {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	i, ok := b.findProduct(chi.URLParam(r, "id"))
	if !ok {
		fail(w, http.StatusNotFound, "Product not found")
		return
	}
	b.products[i] = productFrom(b.products[i].ID, in)
	reply(w, http.StatusOK, b.products[i])
}

func (b *Backend) deleteProduct(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i, ok := b.findProduct(chi.URLParam(r, "id"))
	if !ok {
		fail(w, http.StatusNotFound, "Product not found")
		return
	}
	b.products = append(b.products[:i], b.products[i+1:]...)
	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) listCategories(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Category, 0, len(b.categories))
	for _, c := range b.categories {
		for _, p := range b.products {
			if p.CategoryID == c.ID {
				c.ProductCount++
			}
		}
		out = append(out, c)
	}
	reply(w, http.StatusOK, out)
}

func (b *Backend) createCategory(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name string `json:"name"`
	}
	if !decode(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		fail(w, http.StatusBadRequest, "Name is required")
		return
	}
	reply(w, http.StatusCreated, map[string]any{"category": b.AddCategory(in.Name)})
}

func (b *Backend) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, c := range b.categories {
		if c.ID == id {
			b.categories = append(b.categories[:i], b.categories[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	fail(w, http.StatusNotFound, "Category not found")
}

func (b *Backend) listReviews(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	reply(w, http.StatusOK, map[string]any{"reviews": nonNil(b.reviews[chi.URLParam(r, "id")])})
}

func (b *Backend) createReview(w http.ResponseWriter, r *http.Request) {
	var in domain.ReviewInput
	if !decode(w, r, &in) {
		return
	}
	if in.Rating < 1 || in.Rating > 5 {
		fail(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}
	u, _ := b.User(token(r))
	id := chi.URLParam(r, "id")
	rv := domain.Review{UserID: u.ID, Rating: in.Rating, Comment: in.Comment}
	b.AddReview(id, rv)
	reply(w, http.StatusCreated, rv)
}

// --- account ---

func (b *Backend) me(w http.ResponseWriter, r *http.Request) {
	u, ok := b.User(token(r))
	if !ok {
		fail(w, http.StatusNotFound, "User not found")
		return
	}
	reply(w, http.StatusOK, map[string]any{"user": u})
}

func (b *Backend) selectRole(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Role domain.Role `json:"role"`
	}
	if !decode(w, r, &in) {
		return
	}
	if in.Role != domain.RoleClient && in.Role != domain.RoleAdmin {
		fail(w, http.StatusBadRequest, "Invalid role")
		return
	}
	t := token(r)
	b.mu.Lock()
	a, ok := b.accounts[t]
	if !ok {
		a = &account{user: domain.User{ID: b.id(), Email: t + "@example.com"}}
		b.accounts[t] = a
	}
	a.user.Role = in.Role
	u := a.user
	b.mu.Unlock()
	reply(w, http.StatusOK, u)
}

func (b *Backend) listUsers(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.User, 0, len(b.accounts))
	for _, a := range b.accounts {
		out = append(out, a.user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	reply(w, http.StatusOK, map[string]any{"users": out})
}

func (b *Backend) getProfile(w http.ResponseWriter, r *http.Request) {
	p := b.Profile(token(r))
	if p == nil {
		fail(w, http.StatusNotFound, "Profile not found")
		return
	}
	reply(w, http.StatusOK, map[string]any{"profile": p})
}

func (b *Backend) createProfile(w http.ResponseWriter, r *http.Request) {
	if b.Profile(token(r)) != nil {
		fail(w, http.StatusConflict, "Profile already exists")
		return
	}
	b.saveProfile(w, r)
}

// saveProfile applies only the fields present in the body, like a partial update.
func (b *Backend) saveProfile(w http.ResponseWriter, r *http.Request) {
	var in domain.Profile
	if p := b.Profile(token(r)); p != nil {
		in = *p
	}
	if !decode(w, r, &in) {
		return
	}
	b.mu.Lock()
	a := b.accounts[token(r)]
	if a.profile == nil {
		in.ID = b.id()
	} else {
		in.ID = a.profile.ID
	}
	in.UserID = a.user.ID
	a.profile = &in
	b.mu.Unlock()
	reply(w, http.StatusOK, in)
}

// --- cart ---

func (b *Backend) cartFor(userID int64) *domain.Cart {
	c, ok := b.carts[userID]
	if !ok {
		c = &domain.Cart{ID: b.id(), UserID: userID, Items: []domain.CartItem{}}
		b.carts[userID] = c
	}
	return c
}

func (b *Backend) getCart(w http.ResponseWriter, r *http.Request) {
	u, _ := b.User(token(r))
	b.mu.Lock()
	defer b.mu.Unlock()
	c := b.cartFor(u.ID)
	for i, it := range c.Items {
		if j, ok := b.findProduct(it.ProductID); ok {
			c.Items[i].Product = b.products[j]
		}
	}
	reply(w, http.StatusOK, map[string]any{"cart": c})
}

func (b *Backend) clearCart(w http.ResponseWriter, r *http.Request) {
	u, _ := b.User(token(r))
	b.mu.Lock()
	b.cartFor(u.ID).Items = []domain.CartItem{}
	b.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) addCartItem(w http.ResponseWriter, r *http.Request) {
	var in domain.OrderLine
	if !decode(w, r, &in) {
		return
	}
	u, _ := b.User(token(r))
	b.mu.Lock()
	defer b.mu.Unlock()
	i, ok := b.findProduct(in.ProductID)
	if !ok {
		fail(w, http.StatusNotFound, "Product not found")
		return
	}
	if b.products[i].Quantity < in.Quantity {
		fail(w, http.StatusBadRequest, "Insufficient stock")
		return
	}
	c := b.cartFor(u.ID)
	for j := range c.Items {
		if c.Items[j].ProductID == in.ProductID {
			c.Items[j].Quantity += in.Quantity
			reply(w, http.StatusOK, c.Items[j])
			return
		}
	}
	it := domain.CartItem{ID: b.id(), CartID: c.ID, ProductID: in.ProductID, Quantity: in.Quantity}
	c.Items = append(c.Items, it)
	reply(w, http.StatusCreated, it)
}

// cartItem expects b.mu to be held.
func (b *Backend) cartItem(r *http.Request) (*domain.Cart, int) {
	u, _ := b.userLocked(token(r))
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	c := b.cartFor(u.ID)
	for i, it := range c.Items {
		if it.ID == id {
			return c, i
		}
	}
	return c, -1
}

func (b *Backend) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Quantity int `json:"quantity"`
	}
	if !decode(w, r, &in) {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	c, i := b.cartItem(r)
	if i < 0 {
		fail(w, http.StatusNotFound, "Cart item not found")
		return
	}
	c.Items[i].Quantity = in.Quantity
	reply(w, http.StatusOK, c.Items[i])
}

func (b *Backend) removeCartItem(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, i := b.cartItem(r)
	if i < 0 {
		fail(w, http.StatusNotFound, "Cart item not found")
		return
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	w.WriteHeader(http.StatusNoContent)
}

// --- orders ---

func (b *Backend) listOrders(w http.ResponseWriter, r *http.Request) {
	u, _ := b.User(token(r))
	b.mu.Lock()
	defer b.mu.Unlock()
	out := []domain.Order{}
	for _, o := range b.orders {
		if o.UserID == u.ID {
			out = append(out, o)
		}
	}
	reply(w, http.StatusOK, map[string]any{"orders": out})
}

func (b *Backend) getOrder(w http.ResponseWriter, r *http.Request) {
	u, _ := b.User(token(r))
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, o := range b.orders {
		if o.ID == chi.URLParam(r, "id") && (o.UserID == u.ID || u.IsAdmin()) {
			reply(w, http.StatusOK, map[string]any{"order": o})
			return
		}
	}
	fail(w, http.StatusNotFound, "Order not found")
}

func (b *Backend) createOrder(w http.ResponseWriter, r *http.Request) {
	var in domain.NewOrder
	if !decode(w, r, &in) {
		return
	}
	if len(in.Items) == 0 || strings.TrimSpace(in.Address) == "" {
		fail(w, http.StatusBadRequest, "Address and items are required")
		return
	}
	u, _ := b.User(token(r))
	b.mu.Lock()
	defer b.mu.Unlock()
	o := domain.Order{ID: fmt.Sprintf("ord-%d", b.id()), UserID: u.ID, Address: in.Address, Status: domain.StatusPending}
	for _, l := range in.Items {
		i, ok := b.findProduct(l.ProductID)
		if !ok {
			fail(w, http.StatusBadRequest, "Unknown product "+l.ProductID)
			return
		}
		p := b.products[i]
		o.Items = append(o.Items, domain.OrderItem{ID: b.id(), OrderID: o.ID, ProductID: p.ID, Product: p, Quantity: l.Quantity, Price: p.Price})
		o.TotalPrice += p.Price * float64(l.Quantity)
	}
	b.orders = append(b.orders, o)
	reply(w, http.StatusCreated, map[string]any{"order": o})
}

func (b *Backend) adminOrders(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := append([]domain.Order{}, b.orders...)
	reply(w, http.StatusOK, map[string]any{"data": out})
}

func (b *Backend) adminStats(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	st := domain.DashboardStats{TotalOrders: len(b.orders), TotalProducts: len(b.products)}
	for _, o := range b.orders {
		if o.Status != domain.StatusCancelled {
			st.TotalRevenue += o.TotalPrice
		}
	}
	for _, a := range b.accounts {
		if a.user.Role == domain.RoleClient {
			st.TotalCustomers++
		}
	}
	reply(w, http.StatusOK, map[string]any{"stats": st})
}

func (b *Backend) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Status domain.OrderStatus `json:"status"`
	}
	if !decode(w, r, &in) {
		return
	}
	if !in.Status.Valid() {
		fail(w, http.StatusBadRequest, "Invalid status")
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.orders {
		if b.orders[i].ID == chi.URLParam(r, "id") {
			b.orders[i].Status = in.Status
			reply(w, http.StatusOK, b.orders[i])
			return
		}
	}
	fail(w, http.StatusNotFound, "Order not found")
}

// --- wishlist ---

func (b *Backend) listWishlist(w http.ResponseWriter, r *http.Request) {
	u, _ := b.User(token(r))
	b.mu.Lock()
	defer b.mu.Unlock()
	items := nonNil(b.wishlist[u.ID])
	for i := range items {
		if j, ok := b.findProduct(items[i].ProductID); ok {
			items[i].Product = b.products[j]
		}
	}
	reply(w, http.StatusOK, map[string]any{"items": items})
}

func (b *Backend) addWishlist(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ProductID string `json:"productId"`
	}
	if !decode(w, r, &in) {
		return
	}
	u, _ := b.User(token(r))
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, it := range b.wishlist[u.ID] {
		if it.ProductID == in.ProductID {
			fail(w, http.StatusConflict, "Already in wishlist")
			return
		}
	}
	it := domain.WishlistItem{ID: b.id(), UserID: u.ID, ProductID: in.ProductID}
	b.wishlist[u.ID] = append(b.wishlist[u.ID], it)
	reply(w, http.StatusCreated, it)
}

func (b *Backend) removeWishlist(w http.ResponseWriter, r *http.Request) {
	u, _ := b.User(token(r))
	pid := chi.URLParam(r, "productId")
	b.mu.Lock()
	defer b.mu.Unlock()
	items := b.wishlist[u.ID]
	for i, it := range items {
		if it.ProductID == pid {
			b.wishlist[u.ID] = append(items[:i], items[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	fail(w, http.StatusNotFound, "Wishlist item not found")
}

func nonNil[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
