package cart

import "github.com/shopspring/decimal"

// ShippingPolicy charges Fee unless the subtotal is strictly above FreeOver.
type ShippingPolicy struct {
	FreeOver decimal.Decimal
	Fee      decimal.Decimal
}

type Summary struct {
	TotalItems int             `json:"total_items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Shipping   decimal.Decimal `json:"shipping"`
	Total      decimal.Decimal `json:"total"`
}

func (p ShippingPolicy) Summarize(lines []Line) Summary {
	s := Summary{Subtotal: decimal.Zero, Shipping: decimal.Zero}
	for _, l := range lines {
		s.TotalItems += l.Quantity
		s.Subtotal = s.Subtotal.Add(l.Subtotal())
	}
	if len(lines) > 0 && !s.Subtotal.GreaterThan(p.FreeOver) {
		s.Shipping = p.Fee
	}
	s.Total = s.Subtotal.Add(s.Shipping)
	return s
}
