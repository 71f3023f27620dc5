package handlers

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	applog "shelfwise/internal/log"
)

// AuthHandler hands sign-in to the external identity provider and ends sessions.
type AuthHandler struct {
	*view
	SignInURL     string
	SessionCookie string
}

func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	next := safeNext(c.Query("next"), "/")
	target := h.SignInURL
	if target == "" {
		target = "/coming-soon"
	}
	if strings.HasPrefix(target, "http") {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + "redirect_url=" + url.QueryEscape(c.BaseURL()+next)
	}
	return c.Redirect(target)
}

func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   h.Secure,
	})
	applog.Audit(c, "auth.signout", nil)
	return c.Redirect("/")
}
