package listing

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ParseFilterSpec reads a FilterSpec from query parameters and validates it.
// Keys: sort, category, price_range, min_price, max_price, rating,
// availability, brand (repeatable or comma separated), q, city, status.
func ParseFilterSpec(q url.Values) (FilterSpec, error) {
	spec := DefaultFilterSpec()
	if v := q.Get("sort"); v != "" {
		spec.SortBy = SortKey(v)
	}
	spec.Category = strings.TrimSpace(q.Get("category"))
	if v := q.Get("price_range"); v != "" {
		spec.PriceRange = PriceRange(v)
	}
	if v := q.Get("rating"); v != "" {
		spec.Rating = RatingThreshold(v)
	}
	if v := q.Get("availability"); v != "" {
		spec.Availability = Availability(v)
	}

	var err error
	if spec.MinPrice, err = parseDecimal(q, "min_price"); err != nil {
		return FilterSpec{}, err
	}
	if spec.MaxPrice, err = parseDecimal(q, "max_price"); err != nil {
		return FilterSpec{}, err
	}

	for _, v := range q["brand"] {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				spec.Brands = append(spec.Brands, b)
			}
		}
	}
	spec.Query = strings.TrimSpace(q.Get("q"))
	spec.City = strings.TrimSpace(q.Get("city"))
	spec.Status = strings.TrimSpace(q.Get("status"))

	if err := spec.Validate(); err != nil {
		return FilterSpec{}, err
	}
	return spec, nil
}

func parseDecimal(q url.Values, key string) (*decimal.Decimal, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidFilter, "%s: %q is not a number", key, v)
	}
	return &d, nil
}

// PageSizes is the fixed items-per-page option set of one listing.
type PageSizes struct {
	Options []int
	Default int
}

var (
	ProductPageSizes  = PageSizes{Options: []int{12, 24, 48}, Default: 12}
	ShopPageSizes     = PageSizes{Options: []int{6, 12, 24}, Default: 6}
	MedicinePageSizes = PageSizes{Options: []int{9, 18, 36}, Default: 9}
	OrderPageSizes    = PageSizes{Options: []int{10, 20}, Default: 10}
)

// Parse reads page and per_page. page defaults to 1; per_page must be one of the options.
func (s PageSizes) Parse(q url.Values) (Pagination, error) {
	page := 1
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Pagination{}, errors.Wrapf(ErrInvalidFilter, "page: %q is not an integer", v)
		}
		page = n
	}

	perPage := s.Default
	if v := q.Get("per_page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Pagination{}, errors.Wrapf(ErrInvalidPageSize, "per_page: %q is not an integer", v)
		}
		if !slices.Contains(s.Options, n) {
			return Pagination{}, errors.Wrapf(ErrInvalidPageSize, "per_page %d not in %v", n, s.Options)
		}
		perPage = n
	}
	return NewPagination(page, perPage)
}
