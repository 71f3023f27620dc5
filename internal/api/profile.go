package api

import (
	"context"
	"net/http"

	"shelfwise/internal/domain"
)

type ProfileAPI struct{ c *Client }

// Get returns the caller's profile. A missing profile surfaces as an *APIError
// for which IsNotFound is true.
func (a *ProfileAPI) Get(ctx context.Context, token string) (domain.Profile, error) {
	var p domain.Profile
	err := a.c.do(ctx, call{method: http.MethodGet, endpoint: "/profile", token: token, auth: true}, &p, "profile")
	return p, err
}

func (a *ProfileAPI) Create(ctx context.Context, token string, in domain.Profile) (domain.Profile, error) {
	var p domain.Profile
	err := a.c.do(ctx, call{method: http.MethodPost, endpoint: "/profile", body: in, token: token, auth: true}, &p, "profile")
	return p, err
}

// Save upserts the caller's profile.
func (a *ProfileAPI) Save(ctx context.Context, token string, in domain.Profile) (domain.Profile, error) {
	var p domain.Profile
	err := a.c.do(ctx, call{method: http.MethodPut, endpoint: "/profile", body: in, token: token, auth: true}, &p, "profile")
	return p, err
}
