package api

import (
	"context"
	"net/http"
	"net/url"

	"shelfwise/internal/domain"
)

type WishlistAPI struct{ c *Client }

func (a *WishlistAPI) List(ctx context.Context, token string) ([]domain.WishlistItem, error) {
	var out []domain.WishlistItem
	err := a.c.do(ctx, call{method: http.MethodGet, endpoint: "/wishlist", token: token, auth: true}, &out, "items", "wishlist")
	return out, err
}

func (a *WishlistAPI) Add(ctx context.Context, token, productID string) error {
	return a.c.do(ctx, call{
		method: http.MethodPost, endpoint: "/wishlist", token: token, auth: true,
		body: map[string]string{"productId": productID},
	}, nil)
}

func (a *WishlistAPI) Remove(ctx context.Context, token, productID string) error {
	return a.c.do(ctx, call{method: http.MethodDelete, endpoint: "/wishlist/" + url.PathEscape(productID), token: token, auth: true}, nil)
}
