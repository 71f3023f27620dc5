package api

import (
	"context"
	"net/http"
	"net/url"

	"shelfwise/internal/domain"
)

type OrdersAPI struct{ c *Client }

func (a *OrdersAPI) List(ctx context.Context, token string) ([]domain.Order, error) {
	var out []domain.Order
	err := a.c.do(ctx, call{method: http.MethodGet, endpoint: "/orders", token: token, auth: true}, &out, "orders")
	return out, err
}

func (a *OrdersAPI) Get(ctx context.Context, token, id string) (domain.Order, error) {
	var o domain.Order
	err := a.c.do(ctx, call{method: http.MethodGet, endpoint: "/orders/" + url.PathEscape(id), token: token, auth: true}, &o, "order")
	return o, err
}

func (a *OrdersAPI) Create(ctx context.Context, token string, in domain.NewOrder) (domain.Order, error) {
	var o domain.Order
	err := a.c.do(ctx, call{method: http.MethodPost, endpoint: "/orders", body: in, token: token, auth: true}, &o, "order")
	return o, err
}

func (a *OrdersAPI) UpdateStatus(ctx context.Context, token, id string, status domain.OrderStatus) error {
	return a.c.do(ctx, call{
		method: http.MethodPut, endpoint: "/orders/" + url.PathEscape(id) + "/status", token: token, auth: true,
		body: map[string]domain.OrderStatus{"status": status},
	}, nil)
}

// AdminList returns every customer's orders, newest first.
func (a *OrdersAPI) AdminList(ctx context.Context, token string) ([]domain.Order, error) {
	var out []domain.Order
	err := a.c.do(ctx, call{method: http.MethodGet, endpoint: "/orders/admin/all", token: token, auth: true}, &out, "orders")
	return out, err
}

func (a *OrdersAPI) AdminStats(ctx context.Context, token string) (domain.DashboardStats, error) {
	var st domain.DashboardStats
	err := a.c.do(ctx, call{method: http.MethodGet, endpoint: "/orders/admin/stats", token: token, auth: true}, &st, "stats")
	return st, err
}
