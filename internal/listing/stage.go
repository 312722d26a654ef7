package listing

import (
	"cmp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Stage is one filter predicate of a pipeline. Active reports whether the filter
// constrains this dimension at all; Keep is only consulted when it does.
type Stage[T any] struct {
	Name   string
	Active func(spec FilterSpec) bool
	Keep   func(spec FilterSpec, item T) bool
}

// ParentLookup resolves the static category hierarchy.
type ParentLookup interface {
	IsParentOf(parent, child string) bool
}

// CategoryStage keeps items whose category equals the selected one, or is a
// registered parent of it. Comparison is case-insensitive.
func CategoryStage[T any](tree ParentLookup, category func(T) string) Stage[T] {
	return Stage[T]{
		Name:   "category",
		Active: func(s FilterSpec) bool { return !isAny(s.Category) },
		Keep: func(s FilterSpec, item T) bool {
			c := category(item)
			if strings.EqualFold(c, s.Category) {
				return true
			}
			return tree != nil && tree.IsParentOf(c, s.Category)
		},
	}
}

// PriceRangeStage applies the named price bucket.
func PriceRangeStage[T any](price func(T) decimal.Decimal) Stage[T] {
	return Stage[T]{
		Name: "price_range",
		Active: func(s FilterSpec) bool {
			_, _, ok := s.PriceRange.Bounds()
			return ok
		},
		Keep: func(s FilterSpec, item T) bool {
			lo, hi, _ := s.PriceRange.Bounds()
			p := price(item)
			return p.GreaterThanOrEqual(lo) && (hi == nil || p.LessThan(*hi))
		},
	}
}

// PriceBoundsStage applies the inclusive min/max price, each side optional.
func PriceBoundsStage[T any](price func(T) decimal.Decimal) Stage[T] {
	return Stage[T]{
		Name:   "price_bounds",
		Active: func(s FilterSpec) bool { return s.MinPrice != nil || s.MaxPrice != nil },
		Keep: func(s FilterSpec, item T) bool {
			p := price(item)
			if s.MinPrice != nil && p.LessThan(*s.MinPrice) {
				return false
			}
			if s.MaxPrice != nil && p.GreaterThan(*s.MaxPrice) {
				return false
			}
			return true
		},
	}
}

// RatingStage keeps items rated at or above the selected threshold.
func RatingStage[T any](rating func(T) float64) Stage[T] {
	return Stage[T]{
		Name: "rating",
		Active: func(s FilterSpec) bool {
			_, ok := s.Rating.Threshold()
			return ok
		},
		Keep: func(s FilterSpec, item T) bool {
			threshold, _ := s.Rating.Threshold()
			return rating(item) >= threshold
		},
	}
}

// AvailabilityStage keeps in-stock or out-of-stock items.
func AvailabilityStage[T any](inStock func(T) bool) Stage[T] {
	return Stage[T]{
		Name:   "availability",
		Active: func(s FilterSpec) bool { return s.Availability == InStock || s.Availability == OutOfStock },
		Keep: func(s FilterSpec, item T) bool {
			return inStock(item) == (s.Availability == InStock)
		},
	}
}

// BrandStage keeps items whose brand is in the selected set. Items without a
// brand never match a non-empty selection.
func BrandStage[T any](brand func(T) (string, bool)) Stage[T] {
	return Stage[T]{
		Name:   "brand",
		Active: func(s FilterSpec) bool { return len(s.Brands) > 0 },
		Keep: func(s FilterSpec, item T) bool {
			b, ok := brand(item)
			if !ok {
				return false
			}
			for _, want := range s.Brands {
				if strings.EqualFold(b, want) {
					return true
				}
			}
			return false
		},
	}
}

// QueryStage does a case-insensitive substring match over any of the item's searchable fields.
func QueryStage[T any](fields func(T) []string) Stage[T] {
	return Stage[T]{
		Name:   "query",
		Active: func(s FilterSpec) bool { return strings.TrimSpace(s.Query) != "" },
		Keep: func(s FilterSpec, item T) bool {
			q := strings.ToLower(strings.TrimSpace(s.Query))
			for _, f := range fields(item) {
				if strings.Contains(strings.ToLower(f), q) {
					return true
				}
			}
			return false
		},
	}
}

// CityStage matches the shop city, ignoring case.
func CityStage[T any](city func(T) string) Stage[T] {
	return Stage[T]{
		Name:   "city",
		Active: func(s FilterSpec) bool { return !isAny(s.City) },
		Keep:   func(s FilterSpec, item T) bool { return strings.EqualFold(city(item), s.City) },
	}
}

// StatusStage matches the order status, ignoring case.
func StatusStage[T any](status func(T) string) Stage[T] {
	return Stage[T]{
		Name:   "status",
		Active: func(s FilterSpec) bool { return !isAny(s.Status) },
		Keep:   func(s FilterSpec, item T) bool { return strings.EqualFold(status(item), s.Status) },
	}
}

// IDStage restricts the listing to an explicit id set, typically the hits of a search index.
func IDStage[T any](id func(T) string) Stage[T] {
	return Stage[T]{
		Name:   "ids",
		Active: func(s FilterSpec) bool { return s.IDs != nil },
		Keep: func(s FilterSpec, item T) bool {
			want := id(item)
			for _, v := range s.IDs {
				if v == want {
					return true
				}
			}
			return false
		},
	}
}

// Order is a named stable ordering. Compare follows slices.SortStableFunc conventions.
type Order[T any] struct {
	Key     SortKey
	Compare func(a, b T) int
}

func PriceAscending[T any](price func(T) decimal.Decimal) Order[T] {
	return Order[T]{Key: SortPriceLow, Compare: func(a, b T) int { return price(a).Cmp(price(b)) }}
}

func PriceDescending[T any](price func(T) decimal.Decimal) Order[T] {
	return Order[T]{Key: SortPriceHigh, Compare: func(a, b T) int { return price(b).Cmp(price(a)) }}
}

func RatingDescending[T any](rating func(T) float64) Order[T] {
	return Order[T]{Key: SortRating, Compare: func(a, b T) int { return cmp.Compare(rating(b), rating(a)) }}
}

// NewestFirst orders by descending timestamp. A zero time sorts as the Unix epoch.
func NewestFirst[T any](at func(T) time.Time) Order[T] {
	return Order[T]{Key: SortNewest, Compare: func(a, b T) int {
		return epochOf(at(b)).Compare(epochOf(at(a)))
	}}
}

func epochOf(t time.Time) time.Time {
	if t.IsZero() {
		return time.Unix(0, 0)
	}
	return t
}
