package services

import (
	"context"

	"shelfwise/internal/api"
	"shelfwise/internal/domain"
)

type CartService struct {
	API *api.Client
}

func NewCartService(c *api.Client) *CartService { return &CartService{API: c} }

type CartView struct {
	Cart    domain.Cart
	Summary domain.Summary
}

func (v CartView) Empty() bool { return len(v.Cart.Items) == 0 }

func (s *CartService) View(ctx context.Context, token string) (CartView, error) {
	cart, err := s.API.Cart.Get(ctx, token)
	if err != nil {
		return CartView{}, err
	}
	return CartView{Cart: cart, Summary: domain.CartTotals(cart.Items)}, nil
}

func (s *CartService) Add(ctx context.Context, token, productID string, qty int) error {
	if qty < 1 {
		qty = 1
	}
	return s.API.Cart.AddItem(ctx, token, productID, qty)
}

// SetQuantity never drops below one; removing is explicit.
func (s *CartService) SetQuantity(ctx context.Context, token string, itemID int64, qty int) error {
	if qty < 1 {
		qty = 1
	}
	return s.API.Cart.UpdateItem(ctx, token, itemID, qty)
}

func (s *CartService) Remove(ctx context.Context, token string, itemID int64) error {
	return s.API.Cart.RemoveItem(ctx, token, itemID)
}

func (s *CartService) Clear(ctx context.Context, token string) error {
	return s.API.Cart.Clear(ctx, token)
}
