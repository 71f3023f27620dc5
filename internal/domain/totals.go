package domain

import "github.com/shopspring/decimal"

var (
	freeShippingOver = decimal.NewFromInt(50)
	shippingFee      = decimal.RequireFromString("9.99")
	taxRate          = decimal.RequireFromString("0.1")
)

// Summary is the money breakdown shown on cart and checkout pages.
type Summary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

func (s Summary) FreeShipping() bool { return s.Shipping.IsZero() }

// Totals applies the storefront pricing rules to a subtotal.
// Shipping is free strictly above 50; tax is 10% of the subtotal.
func Totals(subtotal decimal.Decimal) Summary {
	subtotal = subtotal.Round(2)
	shipping := shippingFee
	if subtotal.GreaterThan(freeShippingOver) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(taxRate).Round(2)
	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

func CartTotals(items []CartItem) Summary {
	sub := decimal.Zero
	for _, it := range items {
		sub = sub.Add(decimal.NewFromFloat(it.Product.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return Totals(sub)
}

// ToggleCategory returns the category filter after clicking clicked while current is
// selected. Clicking the active category clears the filter.
func ToggleCategory(current, clicked string) string {
	if clicked == current {
		return ""
	}
	return clicked
}
