package handlers

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"shelfwise/internal/auth"
	applog "shelfwise/internal/log"
	"shelfwise/internal/onboarding"
	"shelfwise/internal/repos"
	"shelfwise/internal/services"
)

// RequireSignedIn sends anonymous visitors to sign in instead of letting protected
// backend calls fail.
func (v *view) RequireSignedIn() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if auth.FromCtx(c).SignedIn {
			return c.Next()
		}
		v.flash(c, repos.FlashInfo, "Please sign in to continue")
		return c.Redirect("/sign-in?next=" + url.QueryEscape(c.OriginalURL()))
	}
}

// RequireAdmin uses the account resolved by the onboarding gate, looking it up
// itself for requests the gate does not see (form posts).
func (v *view) RequireAdmin(users *services.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := onboarding.Account(c)
		if u == nil {
			if me, err := users.Me(c.UserContext(), token(c)); err == nil {
				u = &me
			}
		}
		if u == nil || !u.IsAdmin() {
			applog.Security(c, "access.denied.admin", map[string]any{"signed_in": auth.FromCtx(c).SignedIn})
			c.Status(fiber.StatusForbidden)
			return v.render(c, "notfound", fiber.Map{"Message": "Access denied"})
		}
		onboarding.SetAccount(c, u)
		return c.Next()
	}
}

// safeNext keeps redirects on this site.
func safeNext(next, fallback string) string {
	if u, err := url.Parse(next); err == nil && u.Host != "" {
		next = u.RequestURI()
	}
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return fallback
	}
	return next
}
