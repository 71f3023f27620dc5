package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"shelfwise/internal/domain"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reQ     = regexp.MustCompile(`^[^<>\p{C}]{1,50}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reSKU   = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,31}$`)
	rePhone = regexp.MustCompile(`^\+?[0-9 ()-]{7,20}$`)
	reZIP   = regexp.MustCompile(`^[A-Za-z0-9 -]{3,10}$`)
	reCard  = regexp.MustCompile(`^[0-9]{12,19}$`)
	reCVV   = regexp.MustCompile(`^[0-9]{3,4}$`)
	reLast4 = regexp.MustCompile(`^[0-9]{4}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 254 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Q validates a search query: trims, caps the length and rejects markup and control characters
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if r := []rune(s); len(r) > 50 {
		s = string(r[:50])
	}
	return s, reQ.MatchString(s)
}

// Qty parses a cart quantity, clamped to 1..50.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// ID validates a simple resource identifier (product ids, order ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// NumericID validates integer identifiers (categories, cart items, reviews).
func NumericID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n, err == nil && n > 0
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len([]rune(s)) > 50 {
		return "", false
	}
	return s, true
}

func ProductName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && len([]rune(s)) <= 120
}

// Price requires a positive amount.
func Price(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f, err == nil && f > 0
}

// Stock requires a whole, non-negative quantity.
func Stock(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil && n >= 0
}

func SKU(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reSKU.MatchString(s)
}

func Rating(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil && n >= 1 && n <= 5
}

func Role(s string) (domain.Role, bool) {
	r := domain.Role(strings.TrimSpace(s))
	return r, r == domain.RoleClient || r == domain.RoleAdmin
}

func OrderStatus(s string) (domain.OrderStatus, bool) {
	st := domain.OrderStatus(strings.TrimSpace(s))
	return st, st.Valid()
}

// Phone is optional; an empty value is valid.
func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s == "" || rePhone.MatchString(s)
}

// Birthday is optional and must be a past YYYY-MM-DD date.
func Birthday(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return s, true
	}
	d, err := time.Parse("2006-01-02", s)
	return s, err == nil && d.Before(time.Now())
}

// Text trims free text and caps it at max runes.
func Text(s string, n int) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > n {
		s = string(r[:n])
	}
	return s
}

// Address requires a non-empty shipping address of sane length.
func Address(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && len(s) <= 300
}

func ZIP(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reZIP.MatchString(s)
}

// CardNumber accepts 12-19 digits with optional spaces and returns only the last four.
func CardNumber(s string) (string, bool) {
	s = strings.NewReplacer(" ", "", "-", "").Replace(s)
	if !reCard.MatchString(s) {
		return "", false
	}
	return s[len(s)-4:], true
}

// Expiry validates an MM/YY card expiry that has not passed as of now.
func Expiry(s string, now time.Time) (string, bool) {
	s = strings.TrimSpace(s)
	t, err := time.Parse("01/06", s)
	if err != nil {
		return "", false
	}
	// valid through the last day of the month
	return s, now.Before(t.AddDate(0, 1, 0))
}

func CVV(s string) bool {
	return reCVV.MatchString(strings.TrimSpace(s))
}

// Last4 checks the card digits carried from the payment step to review.
func Last4(s string) bool {
	return reLast4.MatchString(s)
}
