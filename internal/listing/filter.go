package listing

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPageSize = errors.New("items per page must be positive")
	ErrInvalidFilter   = errors.New("invalid filter")
)

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

type PriceRange string

const (
	PriceAll     PriceRange = "all"
	PriceUnder25 PriceRange = "under25"
	Price25To50  PriceRange = "25to50"
	Price50To100 PriceRange = "50to100"
	PriceOver100 PriceRange = "over100"
)

type RatingThreshold string

const (
	RatingAll   RatingThreshold = "all"
	Rating1Plus RatingThreshold = "1plus"
	Rating2Plus RatingThreshold = "2plus"
	Rating3Plus RatingThreshold = "3plus"
	Rating4Plus RatingThreshold = "4plus"
)

type Availability string

const (
	AvailabilityAll Availability = "all"
	InStock         Availability = "in-stock"
	OutOfStock      Availability = "out-of-stock"
)

const anyValue = "all"

// FilterSpec is the closed set of filter and sort options a listing accepts.
// The zero value of every field, and the sentinel "all", means no constraint.
type FilterSpec struct {
	SortBy       SortKey
	Category     string
	PriceRange   PriceRange
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Rating       RatingThreshold
	Availability Availability
	Brands       []string

	Query  string
	City   string
	Status string
	IDs    []string
}

func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		SortBy:       SortFeatured,
		PriceRange:   PriceAll,
		Rating:       RatingAll,
		Availability: AvailabilityAll,
	}
}

var (
	d25  = decimal.NewFromInt(25)
	d50  = decimal.NewFromInt(50)
	d100 = decimal.NewFromInt(100)
)

// Bounds returns the half-open [lo, hi) interval of the bucket. hi is nil for the open-ended bucket.
// ok is false when the bucket places no constraint.
func (r PriceRange) Bounds() (lo decimal.Decimal, hi *decimal.Decimal, ok bool) {
	switch r {
	case PriceUnder25:
		return decimal.Zero, &d25, true
	case Price25To50:
		return d25, &d50, true
	case Price50To100:
		return d50, &d100, true
	case PriceOver100:
		return d100, nil, true
	}
	return decimal.Zero, nil, false
}

func (r RatingThreshold) Threshold() (float64, bool) {
	switch r {
	case Rating1Plus:
		return 1, true
	case Rating2Plus:
		return 2, true
	case Rating3Plus:
		return 3, true
	case Rating4Plus:
		return 4, true
	}
	return 0, false
}

func isAny(s string) bool { return s == "" || s == anyValue }

// Validate rejects values outside the enumerated option sets.
func (f FilterSpec) Validate() error {
	switch f.SortBy {
	case "", SortFeatured, SortPriceLow, SortPriceHigh, SortRating, SortNewest:
	default:
		return errors.Wrapf(ErrInvalidFilter, "unknown sort %q", f.SortBy)
	}
	switch f.PriceRange {
	case "", PriceAll, PriceUnder25, Price25To50, Price50To100, PriceOver100:
	default:
		return errors.Wrapf(ErrInvalidFilter, "unknown price range %q", f.PriceRange)
	}
	switch f.Rating {
	case "", RatingAll, Rating1Plus, Rating2Plus, Rating3Plus, Rating4Plus:
	default:
		return errors.Wrapf(ErrInvalidFilter, "unknown rating %q", f.Rating)
	}
	switch f.Availability {
	case "", AvailabilityAll, InStock, OutOfStock:
	default:
		return errors.Wrapf(ErrInvalidFilter, "unknown availability %q", f.Availability)
	}
	if f.MinPrice != nil && f.MinPrice.IsNegative() {
		return errors.Wrap(ErrInvalidFilter, "min price is negative")
	}
	if f.MaxPrice != nil && f.MaxPrice.IsNegative() {
		return errors.Wrap(ErrInvalidFilter, "max price is negative")
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return errors.Wrap(ErrInvalidFilter, "min price exceeds max price")
	}
	return nil
}

// Sort returns the effective sort key, featured when unset.
func (f FilterSpec) Sort() SortKey {
	if f.SortBy == "" {
		return SortFeatured
	}
	return f.SortBy
}
