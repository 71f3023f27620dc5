package validate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shelfwise/internal/domain"
	"shelfwise/internal/validate"
)

func TestQ(t *testing.T) {
	q, ok := validate.Q("  desk lamp ")
	assert.True(t, ok)
	assert.Equal(t, "desk lamp", q)

	_, ok = validate.Q("   ")
	assert.False(t, ok)
	_, ok = validate.Q("<script>")
	assert.False(t, ok)
	_, ok = validate.Q("Café & Co.")
	assert.True(t, ok)
	for _, q := range []string{"usb, cable", "C++", "50%", "kids' books (used)", "#1 seller!"} {
		_, ok = validate.Q(q)
		assert.True(t, ok, q)
	}
	_, ok = validate.Q("lamp\x00")
	assert.False(t, ok)
}

func TestQty(t *testing.T) {
	assert.Equal(t, 1, validate.Qty(""))
	assert.Equal(t, 1, validate.Qty("-4"))
	assert.Equal(t, 3, validate.Qty("3"))
	assert.Equal(t, 50, validate.Qty("500"))
}

func TestProductFields(t *testing.T) {
	_, ok := validate.Price("0")
	assert.False(t, ok)
	p, ok := validate.Price("19.99")
	assert.True(t, ok)
	assert.Equal(t, 19.99, p)

	n, ok := validate.Stock("0")
	assert.True(t, ok)
	assert.Zero(t, n)
	_, ok = validate.Stock("-1")
	assert.False(t, ok)
	_, ok = validate.Stock("1.5")
	assert.False(t, ok)

	_, ok = validate.SKU("WHP-001")
	assert.True(t, ok)
	_, ok = validate.SKU("")
	assert.False(t, ok)
	_, ok = validate.SKU("bad sku")
	assert.False(t, ok)
}

func TestRatingAndRole(t *testing.T) {
	for _, s := range []string{"0", "6", "x", ""} {
		_, ok := validate.Rating(s)
		assert.False(t, ok, s)
	}
	r, ok := validate.Rating("5")
	assert.True(t, ok)
	assert.Equal(t, 5, r)

	role, ok := validate.Role("admin")
	assert.True(t, ok)
	assert.Equal(t, domain.RoleAdmin, role)
	_, ok = validate.Role("root")
	assert.False(t, ok)
}

func TestOptionalProfileFields(t *testing.T) {
	_, ok := validate.Phone("")
	assert.True(t, ok)
	_, ok = validate.Phone("+1 (555) 123-4567")
	assert.True(t, ok)
	_, ok = validate.Phone("call me")
	assert.False(t, ok)

	_, ok = validate.Birthday("")
	assert.True(t, ok)
	_, ok = validate.Birthday("1990-01-15")
	assert.True(t, ok)
	_, ok = validate.Birthday("2999-01-01")
	assert.False(t, ok)
	_, ok = validate.Birthday("15/01/1990")
	assert.False(t, ok)
}

func TestNumericID(t *testing.T) {
	id, ok := validate.NumericID("42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
	_, ok = validate.NumericID("0")
	assert.False(t, ok)
	_, ok = validate.NumericID("abc")
	assert.False(t, ok)
}

func TestText(t *testing.T) {
	assert.Equal(t, "abc", validate.Text("  abcdef ", 3))
}

func TestCheckoutPayment(t *testing.T) {
	last4, ok := validate.CardNumber("4242 4242 4242 4242")
	assert.True(t, ok)
	assert.Equal(t, "4242", last4)
	_, ok = validate.CardNumber("4242")
	assert.False(t, ok)
	_, ok = validate.CardNumber("4242x4242x4242")
	assert.False(t, ok)

	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	_, ok = validate.Expiry("03/26", now)
	assert.True(t, ok, "current month is still valid")
	_, ok = validate.Expiry("02/26", now)
	assert.False(t, ok)
	_, ok = validate.Expiry("13/26", now)
	assert.False(t, ok)

	assert.True(t, validate.CVV("123"))
	assert.False(t, validate.CVV("12a"))
	assert.True(t, validate.Last4("4242"))
	assert.False(t, validate.Last4("42a2"))
	assert.False(t, validate.Last4("42424"))

	_, ok = validate.ZIP("10001")
	assert.True(t, ok)
	_, ok = validate.ZIP("")
	assert.False(t, ok)
}
