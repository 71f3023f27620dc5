package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelfwise/internal/auth"
)

const secret = "test-secret"

func sign(t *testing.T, claims auth.Claims, key string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return tok
}

func claimsFor(sub string, exp time.Time) auth.Claims {
	return auth.Claims{
		Email:     "ada@shelfwise.test",
		FirstName: "Ada",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
}

// sessionFor runs one request through the middleware and returns what handlers see.
func sessionFor(t *testing.T, p auth.Provider, req *http.Request) auth.Session {
	t.Helper()
	var got auth.Session
	app := fiber.New()
	app.Use(auth.Middleware(p))
	app.Get("/", func(c *fiber.Ctx) error {
		got = auth.FromCtx(c)
		return nil
	})
	_, err := app.Test(req)
	require.NoError(t, err)
	return got
}

func TestJWTProvider_Cookie(t *testing.T) {
	p, err := auth.NewJWTProvider(auth.JWTConfig{Cookie: "__session", SecretKey: secret})
	require.NoError(t, err)

	tok := sign(t, claimsFor("user_1", time.Now().Add(time.Hour)), secret)
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "__session", Value: tok})

	s := sessionFor(t, p, req)
	assert.True(t, s.Loaded)
	assert.True(t, s.SignedIn)
	assert.Equal(t, "user_1", s.UserID)
	assert.Equal(t, "Ada", s.FirstName)
	assert.Equal(t, tok, s.Token())
}

func TestJWTProvider_BearerHeader(t *testing.T) {
	p, _ := auth.NewJWTProvider(auth.JWTConfig{Cookie: "__session", SecretKey: secret})
	tok := sign(t, claimsFor("user_2", time.Now().Add(time.Hour)), secret)
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	s := sessionFor(t, p, req)
	assert.True(t, s.SignedIn)
	assert.Equal(t, "user_2", s.UserID)
}

func TestJWTProvider_RejectsBadTokens(t *testing.T) {
	p, _ := auth.NewJWTProvider(auth.JWTConfig{Cookie: "__session", SecretKey: secret})
	cases := map[string]string{
		"expired":    sign(t, claimsFor("u", time.Now().Add(-time.Minute)), secret),
		"wrong key":  sign(t, claimsFor("u", time.Now().Add(time.Hour)), "other"),
		"no subject": sign(t, claimsFor("", time.Now().Add(time.Hour)), secret),
		"garbage":    "not-a-jwt",
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.AddCookie(&http.Cookie{Name: "__session", Value: tok})
			s := sessionFor(t, p, req)
			assert.True(t, s.Loaded)
			assert.False(t, s.SignedIn)
			assert.Empty(t, s.Token())
		})
	}
}

func TestJWTProvider_NoCookieIsSignedOut(t *testing.T) {
	p, _ := auth.NewJWTProvider(auth.JWTConfig{Cookie: "__session", SecretKey: secret})
	s := sessionFor(t, p, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, auth.SignedOut(), s)
}

func TestJWTProvider_WithoutKeyIsNotLoaded(t *testing.T) {
	p, err := auth.NewJWTProvider(auth.JWTConfig{Cookie: "__session"})
	require.NoError(t, err)
	s := sessionFor(t, p, httptest.NewRequest("GET", "/", nil))
	assert.False(t, s.Loaded)
}

func TestNewJWTProvider_BadPublicKey(t *testing.T) {
	_, err := auth.NewJWTProvider(auth.JWTConfig{PublicKeyPEM: "nope"})
	assert.Error(t, err)
}

func TestSignedOutHasNoToken(t *testing.T) {
	s := auth.SignedIn("tok", auth.Claims{})
	s.SignedIn = false
	assert.Empty(t, s.Token())
}
