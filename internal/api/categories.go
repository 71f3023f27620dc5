package api

import (
	"context"
	"net/http"
	"strconv"

	"shelfwise/internal/domain"
)

type CategoriesAPI struct{ c *Client }

func (a *CategoriesAPI) List(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	err := a.c.do(ctx, call{method: http.MethodGet, endpoint: "/categories"}, &out, "categories")
	return out, err
}

func (a *CategoriesAPI) Create(ctx context.Context, token, name string) (domain.Category, error) {
	var cat domain.Category
	err := a.c.do(ctx, call{
		method: http.MethodPost, endpoint: "/categories",
		body: map[string]string{"name": name}, token: token, auth: true,
	}, &cat, "category")
	return cat, err
}

func (a *CategoriesAPI) Delete(ctx context.Context, token string, id int64) error {
	return a.c.do(ctx, call{method: http.MethodDelete, endpoint: "/categories/" + strconv.FormatInt(id, 10), token: token, auth: true}, nil)
}
