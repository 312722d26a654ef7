package dto

import (
	"strings"

	"github.com/fekuna/omnipos-storefront/internal/listing"
	"github.com/shopspring/decimal"
)

// ProductFilters narrow the candidate set a repository returns. The listing
// pipeline re-applies every predicate, so a repository may ignore them.
type ProductFilters struct {
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	MinRating  float64
	InStock    *bool
	SearchTerm string
}

func NewProductFilters(spec listing.FilterSpec) *ProductFilters {
	f := &ProductFilters{
		MinPrice:   spec.MinPrice,
		MaxPrice:   spec.MaxPrice,
		SearchTerm: strings.TrimSpace(spec.Query),
	}
	if t, ok := spec.Rating.Threshold(); ok {
		f.MinRating = t
	}
	switch spec.Availability {
	case listing.InStock:
		v := true
		f.InStock = &v
	case listing.OutOfStock:
		v := false
		f.InStock = &v
	}
	return f
}
