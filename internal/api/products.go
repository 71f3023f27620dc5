package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"shelfwise/internal/domain"
)

type ProductsAPI struct{ c *Client }

type ProductQuery struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

func (q ProductQuery) encode() string {
	v := url.Values{}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v.Encode()
}

// List returns one page of products. Bare arrays are treated as a single page.
func (a *ProductsAPI) List(ctx context.Context, q ProductQuery) (domain.Page[domain.Product], error) {
	var page domain.Page[domain.Product]
	raw, err := a.c.send(ctx, call{method: http.MethodGet, endpoint: "/products?" + q.encode()})
	if err != nil {
		return page, err
	}
	if err := json.Unmarshal(unwrap(raw, "products"), &page.Items); err != nil {
		return page, fmt.Errorf("decode products: %w", err)
	}
	var meta pageMeta
	_ = json.Unmarshal(raw, &meta)

	page.Total = meta.Total
	if page.Total == 0 {
		page.Total = len(page.Items)
	}
	page.Page = meta.Page
	if page.Page == 0 {
		page.Page = max(q.Page, 1)
	}
	page.PageSize = meta.PageSize
	if page.PageSize == 0 {
		page.PageSize = meta.Limit
	}
	page.TotalPages = meta.TotalPages
	if page.TotalPages == 0 {
		page.TotalPages = 1
		if page.PageSize > 0 {
			page.TotalPages = max((page.Total+page.PageSize-1)/page.PageSize, 1)
		}
	}
	return page, nil
}

func (a *ProductsAPI) Get(ctx context.Context, id string) (domain.Product, error) {
	var p domain.Product
	err := a.c.do(ctx, call{method: http.MethodGet, endpoint: "/products/" + url.PathEscape(id)}, &p, "product")
	return p, err
}

func (a *ProductsAPI) Create(ctx context.Context, token string, in domain.NewProduct) (domain.Product, error) {
	var p domain.Product
	err := a.c.do(ctx, call{method: http.MethodPost, endpoint: "/products", body: in, token: token, auth: true}, &p, "product")
	return p, err
}

func (a *ProductsAPI) Update(ctx context.Context, token, id string, in domain.NewProduct) (domain.Product, error) {
	var p domain.Product
	err := a.c.do(ctx, call{method: http.MethodPut, endpoint: "/products/" + url.PathEscape(id), body: in, token: token, auth: true}, &p, "product")
	return p, err
}

func (a *ProductsAPI) Delete(ctx context.Context, token, id string) error {
	return a.c.do(ctx, call{method: http.MethodDelete, endpoint: "/products/" + url.PathEscape(id), token: token, auth: true}, nil)
}
