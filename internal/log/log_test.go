package log_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	applog "shelfwise/internal/log"
)

type event struct {
	Level  string         `json:"level"`
	Kind   string         `json:"kind"`
	Action string         `json:"action"`
	Path   string         `json:"path"`
	ReqID  string         `json:"req_id"`
	Err    string         `json:"err"`
	Fields map[string]any `json:"fields"`
}

func TestEventsCarryRequestContext(t *testing.T) {
	var buf bytes.Buffer
	applog.SetOutput(&buf)
	defer applog.SetOutput(nil)

	app := fiber.New()
	app.Use(requestid.New())
	app.Get("/cart", func(c *fiber.Ctx) error {
		applog.Error(c, "cart.load.fail", errors.New("upstream down"), map[string]any{"item": 3})
		applog.Security(c, "validation.fail", nil)
		return c.SendStatus(fiber.StatusOK)
	})
	if _, err := app.Test(httptest.NewRequest("GET", "/cart", nil)); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 log lines, got %d: %s", len(lines), buf.String())
	}
	var e event
	if err := json.Unmarshal([]byte(lines[0]), &e); err != nil {
		t.Fatal(err)
	}
	if e.Level != "error" || e.Action != "cart.load.fail" || e.Path != "/cart" || e.Err != "upstream down" {
		t.Fatalf("unexpected event %+v", e)
	}
	if e.ReqID == "" {
		t.Fatal("request id missing")
	}
	if e.Fields["item"] != float64(3) {
		t.Fatalf("fields not logged: %+v", e.Fields)
	}
	var s event
	if err := json.Unmarshal([]byte(lines[1]), &s); err != nil {
		t.Fatal(err)
	}
	if s.Level != "warn" || s.Kind != "security" {
		t.Fatalf("unexpected security event %+v", s)
	}
}

func TestAuditWithoutContext(t *testing.T) {
	var buf bytes.Buffer
	applog.SetOutput(&buf)
	defer applog.SetOutput(nil)

	applog.Audit(nil, "boot", map[string]any{"port": "8080"})
	var e event
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatal(err)
	}
	if e.Kind != "audit" || e.Action != "boot" || e.Level != "info" {
		t.Fatalf("unexpected event %+v", e)
	}
}
