package api

import (
	"context"
	"net/http"
	"strconv"

	"shelfwise/internal/domain"
)

type CartAPI struct{ c *Client }

func (a *CartAPI) Get(ctx context.Context, token string) (domain.Cart, error) {
	var cart domain.Cart
	err := a.c.do(ctx, call{method: http.MethodGet, endpoint: "/cart", token: token, auth: true}, &cart, "cart")
	return cart, err
}

func (a *CartAPI) AddItem(ctx context.Context, token, productID string, quantity int) error {
	return a.c.do(ctx, call{
		method: http.MethodPost, endpoint: "/cart/items", token: token, auth: true,
		body: domain.OrderLine{ProductID: productID, Quantity: quantity},
	}, nil)
}

func (a *CartAPI) UpdateItem(ctx context.Context, token string, itemID int64, quantity int) error {
	return a.c.do(ctx, call{
		method: http.MethodPut, endpoint: "/cart/items/" + strconv.FormatInt(itemID, 10), token: token, auth: true,
		body: map[string]int{"quantity": quantity},
	}, nil)
}

func (a *CartAPI) RemoveItem(ctx context.Context, token string, itemID int64) error {
	return a.c.do(ctx, call{method: http.MethodDelete, endpoint: "/cart/items/" + strconv.FormatInt(itemID, 10), token: token, auth: true}, nil)
}

func (a *CartAPI) Clear(ctx context.Context, token string) error {
	return a.c.do(ctx, call{method: http.MethodDelete, endpoint: "/cart", token: token, auth: true}, nil)
}
