// Package onboarding redirects signed-in users who have not picked a role or filled in
// their profile to the matching setup page before any other page renders.
package onboarding

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"shelfwise/internal/api"
	"shelfwise/internal/auth"
	"shelfwise/internal/domain"
	applog "shelfwise/internal/log"
)

const (
	SelectRolePath      = "/select-role"
	CompleteProfilePath = "/complete-profile"
)

type State int

const (
	Checking State = iota
	Allow
	Redirect
)

func (s State) String() string {
	switch s {
	case Allow:
		return "allow"
	case Redirect:
		return "redirect"
	}
	return "checking"
}

type Decision struct {
	State    State
	Redirect string
	// User is set when the backend account was fetched while deciding.
	User *domain.User
}

// Directory is the part of the backend the gate consults.
type Directory interface {
	Me(ctx context.Context, token string) (domain.User, error)
	Profile(ctx context.Context, token string) (domain.Profile, error)
}

type Gate struct {
	Dir Directory
}

func New(dir Directory) *Gate { return &Gate{Dir: dir} }

// Check decides what a navigation to path should do for session s.
// Lookup failures other than a missing account let the user through.
func (g *Gate) Check(ctx context.Context, s auth.Session, path string) Decision {
	if !s.Loaded {
		return Decision{State: Checking}
	}
	if !s.SignedIn || Exempt(path) {
		return Decision{State: Allow}
	}
	token := s.Token()
	if token == "" {
		return Decision{State: Allow}
	}

	u, err := g.Dir.Me(ctx, token)
	if err != nil {
		if api.IsNotFound(err) {
			return Decision{State: Redirect, Redirect: SelectRolePath}
		}
		return Decision{State: Allow}
	}
	if !u.HasRole() {
		return Decision{State: Redirect, Redirect: SelectRolePath, User: &u}
	}

	p, err := g.Dir.Profile(ctx, token)
	if err != nil {
		if api.IsNotFound(err) {
			return Decision{State: Redirect, Redirect: CompleteProfilePath, User: &u}
		}
		return Decision{State: Allow, User: &u}
	}
	if !p.Complete() {
		return Decision{State: Redirect, Redirect: CompleteProfilePath, User: &u}
	}
	return Decision{State: Allow, User: &u}
}

// Exempt paths are the setup pages themselves; gating them would loop.
func Exempt(path string) bool {
	path = strings.TrimRight(path, "/")
	return path == SelectRolePath || path == CompleteProfilePath
}

// skip lists requests that are not page navigations.
func skip(path string) bool {
	for _, p := range []string{"/static/", "/healthz", "/sign-in", "/sign-out", "/theme", "/products/live"} {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Middleware gates every page navigation. Checking renders the loading view so no
// protected content flashes before a redirect.
func (g *Gate) Middleware(loadingView string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet || skip(c.Path()) {
			return c.Next()
		}
		d := g.Check(c.UserContext(), auth.FromCtx(c), c.Path())
		switch d.State {
		case Checking:
			c.Set(fiber.HeaderCacheControl, "no-store")
			return c.Render(loadingView, fiber.Map{"Next": c.OriginalURL()})
		case Redirect:
			applog.Info(c, "onboarding.redirect", map[string]any{"to": d.Redirect})
			return c.Redirect(d.Redirect)
		}
		if d.User != nil {
			SetAccount(c, d.User)
		}
		return c.Next()
	}
}

const accountKey = "account"

// Account returns the backend user fetched by the gate for this request, if any.
func Account(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals(accountKey).(*domain.User)
	return u
}

func SetAccount(c *fiber.Ctx, u *domain.User) { c.Locals(accountKey, u) }

// APIDirectory adapts the REST client to Directory.
type APIDirectory struct {
	Client *api.Client
}

func (d APIDirectory) Me(ctx context.Context, token string) (domain.User, error) {
	return d.Client.Users.Me(ctx, token)
}

func (d APIDirectory) Profile(ctx context.Context, token string) (domain.Profile, error) {
	return d.Client.Profile.Get(ctx, token)
}
