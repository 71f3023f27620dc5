package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	jwt.RegisteredClaims
}

// JWTProvider reads the identity provider's session token from a cookie or an
// Authorization header and verifies it with the configured key.
type JWTProvider struct {
	cookie  string
	keyFunc jwt.Keyfunc
	methods []string
}

type JWTConfig struct {
	Cookie       string
	SecretKey    string
	PublicKeyPEM string
}

func NewJWTProvider(cfg JWTConfig) (*JWTProvider, error) {
	p := &JWTProvider{cookie: cfg.Cookie}
	switch {
	case cfg.PublicKeyPEM != "":
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("identity public key: %w", err)
		}
		p.keyFunc = func(*jwt.Token) (any, error) { return key, nil }
		p.methods = []string{jwt.SigningMethodRS256.Alg()}
	case cfg.SecretKey != "":
		secret := []byte(cfg.SecretKey)
		p.keyFunc = func(*jwt.Token) (any, error) { return secret, nil }
		p.methods = []string{jwt.SigningMethodHS256.Alg()}
	}
	return p, nil
}

func (p *JWTProvider) Session(c *fiber.Ctx) Session {
	if p.keyFunc == nil {
		return Session{}
	}
	raw := c.Cookies(p.cookie)
	if raw == "" {
		raw = bearer(c.Get(fiber.HeaderAuthorization))
	}
	if raw == "" {
		return SignedOut()
	}
	claims, err := p.verify(raw)
	if err != nil {
		return SignedOut()
	}
	return SignedIn(raw, *claims)
}

func (p *JWTProvider) verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, p.keyFunc,
		jwt.WithValidMethods(p.methods),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !tok.Valid || claims.Subject == "" {
		return nil, errors.New("session token has no subject")
	}
	return claims, nil
}

// CookieName is the session cookie the provider reads, used when signing out.
func (p *JWTProvider) CookieName() string { return p.cookie }

func bearer(h string) string {
	const prefix = "Bearer "
	if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
		return strings.TrimSpace(h[len(prefix):])
	}
	return ""
}
