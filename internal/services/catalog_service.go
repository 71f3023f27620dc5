package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"shelfwise/internal/api"
	"shelfwise/internal/domain"
)

const defaultPageSize = 12

type CatalogService struct {
	API *api.Client
}

func NewCatalogService(c *api.Client) *CatalogService { return &CatalogService{API: c} }

type Browse struct {
	Categories []domain.Category
	Products   domain.Page[domain.Product]
	// CategoriesErr is set when only the category list failed; products still render.
	CategoriesErr error
}

// Browse loads the category filter and one page of products concurrently.
func (s *CatalogService) Browse(ctx context.Context, q api.ProductQuery) (Browse, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = defaultPageSize
	}
	var out Browse
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cats, err := s.API.Categories.List(ctx)
		if err != nil {
			out.CategoriesErr = err
			return nil
		}
		out.Categories = cats
		return nil
	})
	g.Go(func() error {
		page, err := s.API.Products.List(ctx, q)
		if err != nil {
			return err
		}
		out.Products = page
		return nil
	})
	if err := g.Wait(); err != nil {
		return Browse{}, err
	}
	return out, nil
}

// Search returns the first page of products matching q.
func (s *CatalogService) Search(ctx context.Context, q, category string) ([]domain.Product, error) {
	page, err := s.API.Products.List(ctx, api.ProductQuery{Search: q, Category: category, Page: 1, Limit: defaultPageSize})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

type ProductDetail struct {
	Product domain.Product
	Reviews []domain.Review
	// ReviewsErr is set when the product loaded but its reviews did not.
	ReviewsErr error
}

func (s *CatalogService) Product(ctx context.Context, id string) (ProductDetail, error) {
	var out ProductDetail
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.API.Products.Get(ctx, id)
		if err != nil {
			return err
		}
		out.Product = p
		return nil
	})
	g.Go(func() error {
		rs, err := s.API.Reviews.ByProduct(ctx, id)
		if err != nil {
			out.ReviewsErr = err
			return nil
		}
		out.Reviews = rs
		return nil
	})
	if err := g.Wait(); err != nil {
		return ProductDetail{}, err
	}
	if len(out.Reviews) == 0 && len(out.Product.Reviews) > 0 {
		out.Reviews = out.Product.Reviews
	}
	return out, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.API.Categories.List(ctx)
}

func (s *CatalogService) Review(ctx context.Context, token, productID string, in domain.ReviewInput) error {
	_, err := s.API.Reviews.Create(ctx, token, productID, in)
	return err
}
