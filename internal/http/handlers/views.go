package handlers

import (
	"fmt"
	"net/http"
	"time"

	html "github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"

	"shelfwise/internal/domain"
	"shelfwise/web"
)

// Views builds the template engine over the embedded templates.
func Views() *html.Engine {
	engine := html.NewFileSystem(http.FS(web.Templates()), ".html")
	engine.AddFuncMap(map[string]any{
		"money":    money,
		"status":   func(s domain.OrderStatus) domain.Style { return domain.StatusStyle(s) },
		"stars":    stars,
		"shortID":  shortID,
		"date":     date,
		"dict":     dict,
		"add":      func(a, b int) int { return a + b },
		"sub":      func(a, b int) int { return a - b },
		"mul":      func(p float64, q int) float64 { return p * float64(q) },
		"fieldErr": fieldErr,
	})
	return engine
}

func money(v any) string {
	switch n := v.(type) {
	case decimal.Decimal:
		return "$" + n.StringFixed(2)
	case float64:
		return "$" + decimal.NewFromFloat(n).StringFixed(2)
	case int:
		return "$" + decimal.NewFromInt(int64(n)).StringFixed(2)
	}
	return fmt.Sprintf("$%v", v)
}

// stars maps a rating to five filled/empty flags.
func stars(v any) []bool {
	var r float64
	switch n := v.(type) {
	case float64:
		r = n
	case int:
		r = float64(n)
	}
	out := make([]bool, 5)
	for i := range out {
		out[i] = float64(i) < r
	}
	return out
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func date(s string) string {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format("Jan 2, 2006")
	}
	return s
}

func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}

// fieldErr tolerates pages rendered without an Errors map.
func fieldErr(errs any, field string) string {
	if m, ok := errs.(map[string]string); ok {
		return m[field]
	}
	return ""
}
