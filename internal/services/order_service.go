package services

import (
	"context"
	"errors"

	"shelfwise/internal/api"
	"shelfwise/internal/domain"
)

var ErrEmptyCart = errors.New("cart is empty")

type OrderService struct {
	API *api.Client
}

func NewOrderService(c *api.Client) *OrderService { return &OrderService{API: c} }

func (s *OrderService) List(ctx context.Context, token string) ([]domain.Order, error) {
	return s.API.Orders.List(ctx, token)
}

func (s *OrderService) Get(ctx context.Context, token, id string) (domain.Order, error) {
	return s.API.Orders.Get(ctx, token, id)
}

// Place turns the current cart into an order shipped to address, then empties the cart.
func (s *OrderService) Place(ctx context.Context, token, address string) (domain.Order, error) {
	cart, err := s.API.Cart.Get(ctx, token)
	if err != nil {
		return domain.Order{}, err
	}
	if len(cart.Items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}
	lines := make([]domain.OrderLine, 0, len(cart.Items))
	for _, it := range cart.Items {
		lines = append(lines, domain.OrderLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	order, err := s.API.Orders.Create(ctx, token, domain.NewOrder{Address: address, Items: lines})
	if err != nil {
		return domain.Order{}, err
	}
	// The order exists either way; a stale cart is only cosmetic.
	_ = s.API.Cart.Clear(ctx, token)
	return order, nil
}
