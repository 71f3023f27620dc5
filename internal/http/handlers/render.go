package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shelfwise/internal/api"
	"shelfwise/internal/auth"
	applog "shelfwise/internal/log"
	"shelfwise/internal/onboarding"
	"shelfwise/internal/repos"
)

const (
	sidCookie   = "sid"
	themeCookie = "theme"
	layout      = "layouts/main"
)

// view is shared by every page handler: the anonymous browser session id, flash
// messages, and the common template bindings.
type view struct {
	Flash  *repos.FlashRepo
	Secure bool
}

func (v *view) ensureSID(c *fiber.Ctx) string {
	if sid, _ := c.Locals(sidCookie).(string); sid != "" {
		return sid
	}
	sid := c.Cookies(sidCookie)
	if _, err := uuid.Parse(sid); err != nil {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     sidCookie,
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   v.Secure,
		})
	}
	c.Locals(sidCookie, sid)
	return sid
}

// flash queues a message for the next page render in this browser.
func (v *view) flash(c *fiber.Ctx, kind repos.FlashKind, msg string) {
	if err := v.Flash.Push(v.ensureSID(c), kind, msg); err != nil {
		applog.Error(c, "flash.push", err, nil)
	}
}

// failed logs err and flashes a user-facing message. Backend messages win over def.
func (v *view) failed(c *fiber.Ctx, action string, err error, def string) {
	applog.Error(c, action, err, nil)
	v.flash(c, repos.FlashError, api.Message(err, def))
}

// signInFirst handles calls that needed a token the session did not have.
func (v *view) signInFirst(c *fiber.Ctx, err error) bool {
	if !errors.Is(err, api.ErrNotSignedIn) {
		return false
	}
	v.flash(c, repos.FlashInfo, "Please sign in to continue")
	_ = c.Redirect("/sign-in")
	return true
}

func (v *view) render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	s := auth.FromCtx(c)
	data["Session"] = s
	if u := onboarding.Account(c); u != nil {
		data["Account"] = u
	}
	if tok, _ := c.Locals("csrf").(string); tok != "" {
		data["CSRFToken"] = tok
	}
	data["Theme"] = theme(c)
	data["Path"] = c.Path()

	sid := v.ensureSID(c)
	flashes, err := v.Flash.Pop(sid)
	if err != nil {
		applog.Error(c, "flash.pop", err, nil)
	}
	data["Flashes"] = flashes
	return c.Render(tmpl, data, layout)
}

// back redirects to the page that submitted the form, or fallback.
func back(c *fiber.Ctx, fallback string) error {
	return c.Redirect(safeNext(c.Get(fiber.HeaderReferer), fallback))
}

func theme(c *fiber.Ctx) string {
	if c.Cookies(themeCookie) == "dark" {
		return "dark"
	}
	return "light"
}

func token(c *fiber.Ctx) string { return auth.FromCtx(c).Token() }
