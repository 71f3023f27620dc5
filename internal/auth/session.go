// Package auth adapts the external identity provider into an explicit per-request
// Session. The app never issues tokens; it only reads sign-in state and forwards the
// provider's bearer token to the backend.
package auth

import "github.com/gofiber/fiber/v2"

const localsKey = "session"

type Session struct {
	// Loaded is false while the provider cannot yet tell whether anyone is signed in.
	Loaded   bool
	SignedIn bool

	UserID    string
	Email     string
	FirstName string
	LastName  string

	token string
}

// Token is the bearer token to forward to the backend; empty when signed out.
func (s Session) Token() string {
	if !s.SignedIn {
		return ""
	}
	return s.token
}

// SignedIn builds a signed-in session around a provider token.
func SignedIn(token string, c Claims) Session {
	return Session{
		Loaded:    true,
		SignedIn:  true,
		UserID:    c.Subject,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		token:     token,
	}
}

// SignedOut is a loaded session with nobody signed in.
func SignedOut() Session { return Session{Loaded: true} }

type Provider interface {
	Session(c *fiber.Ctx) Session
}

// Static always reports the same session. Useful for development and tests.
type Static struct {
	S Session
}

func (p Static) Session(*fiber.Ctx) Session { return p.S }

// Middleware resolves the session once per request and stores it for handlers.
func Middleware(p Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := p.Session(c)
		c.Locals(localsKey, s)
		if s.SignedIn && s.UserID != "" {
			c.Locals("user_id", s.UserID)
		}
		return c.Next()
	}
}

// FromCtx returns the session stored by Middleware, or a not-loaded session.
func FromCtx(c *fiber.Ctx) Session {
	s, _ := c.Locals(localsKey).(Session)
	return s
}
