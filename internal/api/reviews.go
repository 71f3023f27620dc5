package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"shelfwise/internal/domain"
)

type ReviewsAPI struct{ c *Client }

func (a *ReviewsAPI) ByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	var out []domain.Review
	err := a.c.do(ctx, call{method: http.MethodGet, endpoint: "/products/" + url.PathEscape(productID) + "/reviews"}, &out, "reviews")
	return out, err
}

func (a *ReviewsAPI) Create(ctx context.Context, token, productID string, in domain.ReviewInput) (domain.Review, error) {
	var r domain.Review
	err := a.c.do(ctx, call{
		method: http.MethodPost, endpoint: "/products/" + url.PathEscape(productID) + "/reviews",
		body: in, token: token, auth: true,
	}, &r, "review")
	return r, err
}

func (a *ReviewsAPI) Update(ctx context.Context, token string, reviewID int64, in domain.ReviewInput) (domain.Review, error) {
	var r domain.Review
	err := a.c.do(ctx, call{
		method: http.MethodPut, endpoint: "/reviews/" + strconv.FormatInt(reviewID, 10),
		body: in, token: token, auth: true,
	}, &r, "review")
	return r, err
}

func (a *ReviewsAPI) Delete(ctx context.Context, token string, reviewID int64) error {
	return a.c.do(ctx, call{method: http.MethodDelete, endpoint: "/reviews/" + strconv.FormatInt(reviewID, 10), token: token, auth: true}, nil)
}
