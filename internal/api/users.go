package api

import (
	"context"
	"net/http"

	"shelfwise/internal/domain"
)

type UsersAPI struct{ c *Client }

func (a *UsersAPI) Me(ctx context.Context, token string) (domain.User, error) {
	var u domain.User
	err := a.c.do(ctx, call{method: http.MethodGet, endpoint: "/users/me", token: token, auth: true}, &u, "user")
	return u, err
}

func (a *UsersAPI) SelectRole(ctx context.Context, token string, role domain.Role) (domain.User, error) {
	var u domain.User
	err := a.c.do(ctx, call{
		method: http.MethodPost, endpoint: "/users/select-role", token: token, auth: true,
		body: map[string]domain.Role{"role": role},
	}, &u, "user")
	return u, err
}

// List returns all accounts; admin only.
func (a *UsersAPI) List(ctx context.Context, token string) ([]domain.User, error) {
	var out []domain.User
	err := a.c.do(ctx, call{method: http.MethodGet, endpoint: "/users", token: token, auth: true}, &out, "users")
	return out, err
}
