package handlers_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"shelfwise/internal/api"
	"shelfwise/internal/api/apitest"
	"shelfwise/internal/auth"
	"shelfwise/internal/config"
	"shelfwise/internal/domain"
	"shelfwise/internal/http/handlers"
	applog "shelfwise/internal/log"
	"shelfwise/internal/onboarding"
	"shelfwise/internal/repos"
)

const (
	tokClient    = "tok-client"
	tokAdmin     = "tok-admin"
	tokNoRole    = "tok-norole"
	tokNoProfile = "tok-noprofile"
)

// browser drives the storefront through app.Test and keeps cookies between requests.
type browser struct {
	t       *testing.T
	app     *fiber.App
	backend *apitest.Backend
	cookies map[string]string
}

type option func(*config.Config)

func withDebounce(d time.Duration) option {
	return func(c *config.Config) { c.SearchDebounce = d }
}

func withSignInURL(u string) option {
	return func(c *config.Config) { c.Identity.SignInURL = u }
}

func newBrowser(t *testing.T, s auth.Session, opts ...option) *browser {
	t.Helper()
	b := apitest.Seeded()
	b.AddAccount(tokClient, domain.User{Email: "casey@example.com", Role: domain.RoleClient}, &domain.Profile{FirstName: "Casey", LastName: "Client"})
	b.AddAccount(tokAdmin, domain.User{Email: "ada@example.com", Role: domain.RoleAdmin}, &domain.Profile{FirstName: "Ada"})
	b.AddAccount(tokNoRole, domain.User{Email: "new@example.com"}, nil)
	b.AddAccount(tokNoProfile, domain.User{Email: "half@example.com", Role: domain.RoleClient}, nil)
	srv := apitest.Server(b)
	t.Cleanup(srv.Close)

	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{SearchDebounce: 5 * time.Millisecond}
	cfg.Identity.SessionCookie = "__session"
	cfg.Identity.SignInURL = "/coming-soon"
	for _, o := range opts {
		o(cfg)
	}

	client := api.NewClient(api.Config{BaseURL: srv.URL + "/api", Timeout: 5 * time.Second})
	app := handlers.NewApp(handlers.NewDeps(db, client, cfg), auth.Static{S: s}, onboarding.New(onboarding.APIDirectory{Client: client}))
	return &browser{t: t, app: app, backend: b, cookies: map[string]string{}}
}

func signedIn(token string) auth.Session {
	return auth.SignedIn(token, auth.Claims{Email: "casey@example.com", FirstName: "Casey"})
}

func (b *browser) send(req *http.Request) *http.Response {
	b.t.Helper()
	for name, val := range b.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: val})
	}
	resp, err := b.app.Test(req, -1)
	if err != nil {
		b.t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	for _, c := range resp.Cookies() {
		if c.MaxAge < 0 || c.Value == "" {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c.Value
	}
	return resp
}

func (b *browser) get(path string) *http.Response {
	return b.send(httptest.NewRequest(http.MethodGet, path, nil))
}

// post submits a form with the current CSRF token, fetching one first if needed.
func (b *browser) post(path string, form url.Values, headers ...string) *http.Response {
	b.t.Helper()
	if b.cookies["csrf_"] == "" {
		b.get("/healthz")
	}
	if form == nil {
		form = url.Values{}
	}
	if form.Get("csrf") == "" {
		form.Set("csrf", b.cookies["csrf_"])
	}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	return b.send(req)
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(raw)
}

func expectRedirect(t *testing.T, resp *http.Response, to string) {
	t.Helper()
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("expected 302 to %s, got %d", to, resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != to {
		t.Fatalf("expected redirect to %s, got %s", to, loc)
	}
}

type lockedBuf struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (l *lockedBuf) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func (l *lockedBuf) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.String()
}

// captureLogs points the event and access logs at a buffer for the rest of the test.
func captureLogs(t *testing.T) *lockedBuf {
	t.Helper()
	buf := &lockedBuf{}
	applog.SetOutput(buf)
	t.Cleanup(func() { applog.SetOutput(nil) })
	return buf
}
