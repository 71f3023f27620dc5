package handlers_test

import (
	"html"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"shelfwise/internal/auth"
)

var downloadLink = regexp.MustCompile(`/create/events/([A-Za-z0-9-]+)/download`)

func TestInvitationPreviewAndDownload(t *testing.T) {
	b := newBrowser(t, auth.SignedOut())

	s := html.UnescapeString(body(t, b.get("/create/events")))
	if !strings.Contains(s, "Create an Event Invitation") || !strings.Contains(s, `<img class="card preview" src="data:image/svg+xml`) {
		t.Fatalf("form or preview missing; body=%s", s)
	}
	if downloadLink.MatchString(s) {
		t.Fatal("nothing saved yet, no download expected")
	}

	s = body(t, b.post("/create/events", url.Values{"title": {"Summer Picnic"}, "host": {"Ana"}}))
	m := downloadLink.FindStringSubmatch(s)
	if m == nil {
		t.Fatalf("download link missing; body=%s", s)
	}

	resp := b.get(m[0])
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/svg+xml") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment") || !strings.Contains(cd, ".svg") {
		t.Fatalf("unexpected disposition %q", cd)
	}
	svg := body(t, resp)
	if !strings.Contains(svg, "Summer Picnic") || !strings.Contains(svg, "<svg") {
		t.Fatalf("card content missing: %s", svg)
	}

	// Cards belong to the browser session that made them.
	other := newBrowser(t, auth.SignedOut())
	other.app = b.app
	if resp := other.get(m[0]); resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for another session, got %d", resp.StatusCode)
	}
}

func TestInvitationUnknownType(t *testing.T) {
	b := newBrowser(t, auth.SignedOut())
	if resp := b.get("/create/birthdays"); resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if resp := b.post("/create/birthdays", url.Values{"title": {"x"}}); resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
