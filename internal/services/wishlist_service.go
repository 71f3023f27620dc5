package services

import (
	"context"
	"errors"

	"shelfwise/internal/api"
	"shelfwise/internal/domain"
)

type WishlistService struct {
	API *api.Client
}

func NewWishlistService(c *api.Client) *WishlistService { return &WishlistService{API: c} }

func (s *WishlistService) List(ctx context.Context, token string) ([]domain.WishlistItem, error) {
	return s.API.Wishlist.List(ctx, token)
}

func (s *WishlistService) Save(ctx context.Context, token, productID string) error {
	return s.API.Wishlist.Add(ctx, token, productID)
}

func (s *WishlistService) Unsave(ctx context.Context, token, productID string) error {
	return s.API.Wishlist.Remove(ctx, token, productID)
}

// Clear removes every saved item, continuing past individual failures.
func (s *WishlistService) Clear(ctx context.Context, token string) error {
	items, err := s.API.Wishlist.List(ctx, token)
	if err != nil {
		return err
	}
	var errs []error
	for _, it := range items {
		if err := s.API.Wishlist.Remove(ctx, token, it.ProductID); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// MoveToCart adds one unit to the cart and drops the product from the wishlist.
func (s *WishlistService) MoveToCart(ctx context.Context, token, productID string) error {
	if err := s.API.Cart.AddItem(ctx, token, productID, 1); err != nil {
		return err
	}
	return s.API.Wishlist.Remove(ctx, token, productID)
}
