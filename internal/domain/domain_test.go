package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"shelfwise/internal/domain"
)

func TestTotals(t *testing.T) {
	cases := []struct {
		subtotal, shipping, tax, total string
	}{
		{"40", "9.99", "4", "53.99"},
		{"60", "0", "6", "66"},
		{"50", "9.99", "5", "64.99"},
		{"0", "9.99", "0", "9.99"},
	}
	for _, tc := range cases {
		s := domain.Totals(decimal.RequireFromString(tc.subtotal))
		assert.True(t, s.Shipping.Equal(decimal.RequireFromString(tc.shipping)), "shipping for %s: %s", tc.subtotal, s.Shipping)
		assert.True(t, s.Tax.Equal(decimal.RequireFromString(tc.tax)), "tax for %s: %s", tc.subtotal, s.Tax)
		assert.True(t, s.Total.Equal(decimal.RequireFromString(tc.total)), "total for %s: %s", tc.subtotal, s.Total)
	}
}

func TestCartTotals(t *testing.T) {
	items := []domain.CartItem{
		{Quantity: 2, Product: domain.Product{Price: 12.5}},
		{Quantity: 1, Product: domain.Product{Price: 15}},
	}
	s := domain.CartTotals(items)
	assert.Equal(t, "40.00", s.Subtotal.StringFixed(2))
	assert.Equal(t, "53.99", s.Total.StringFixed(2))
	assert.False(t, s.FreeShipping())
}

func TestOutOfStockOnlyOnZeroQuantity(t *testing.T) {
	assert.True(t, domain.Product{Quantity: 0, Price: 10, SKU: "A"}.OutOfStock())
	assert.True(t, domain.Product{}.OutOfStock())
	assert.False(t, domain.Product{Quantity: 1}.OutOfStock())
	assert.False(t, domain.Product{Quantity: -1}.OutOfStock())
}

func TestToggleCategory(t *testing.T) {
	assert.Equal(t, "3", domain.ToggleCategory("", "3"))
	assert.Equal(t, "", domain.ToggleCategory("3", "3"))
	assert.Equal(t, "4", domain.ToggleCategory("3", "4"))
	assert.Equal(t, "", domain.ToggleCategory(domain.ToggleCategory("", "3"), "3"))
}

func TestStatusStyle(t *testing.T) {
	assert.Equal(t, "Shipped", domain.StatusStyle(domain.StatusShipped).Label)
	assert.Equal(t, "Pending", domain.StatusStyle("lost").Label)
	assert.False(t, domain.OrderStatus("lost").Valid())
	for _, s := range domain.OrderStatuses {
		assert.True(t, s.Valid())
	}
}

func TestProfileComplete(t *testing.T) {
	var p *domain.Profile
	assert.False(t, p.Complete())
	assert.False(t, (&domain.Profile{LastName: "Doe"}).Complete())
	assert.True(t, (&domain.Profile{FirstName: "Jo"}).Complete())
	assert.Equal(t, "Jo Doe", (&domain.Profile{FirstName: "Jo", LastName: "Doe"}).DisplayName())
}
