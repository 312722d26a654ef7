package listing

import (
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entity struct {
	id       string
	category string
	price    decimal.Decimal
	rating   float64
	inStock  bool
	brand    string
	name     string
	created  time.Time
}

type parents map[string][]string

func (p parents) IsParentOf(parent, child string) bool {
	for _, c := range p[strings.ToLower(parent)] {
		if strings.EqualFold(c, child) {
			return true
		}
	}
	return false
}

func testPipeline() *Pipeline[entity] {
	price := func(e entity) decimal.Decimal { return e.price }
	rating := func(e entity) float64 { return e.rating }
	return New(
		[]Stage[entity]{
			CategoryStage(parents{"electronics": {"smartphones", "laptops", "audio"}}, func(e entity) string { return e.category }),
			PriceRangeStage(price),
			PriceBoundsStage(price),
			RatingStage(rating),
			AvailabilityStage(func(e entity) bool { return e.inStock }),
			BrandStage(func(e entity) (string, bool) { return e.brand, e.brand != "" }),
			QueryStage(func(e entity) []string { return []string{e.name} }),
			IDStage(func(e entity) string { return e.id }),
		},
		PriceAscending(price),
		PriceDescending(price),
		RatingDescending(rating),
		NewestFirst(func(e entity) time.Time { return e.created }),
	)
}

func ids(items []entity) []string {
	out := make([]string, 0, len(items))
	for _, e := range items {
		out = append(out, e.id)
	}
	return out
}

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func decPtr(v float64) *decimal.Decimal {
	d := dec(v)
	return &d
}

func mustPagination(t *testing.T, page, perPage int) Pagination {
	t.Helper()
	pg, err := NewPagination(page, perPage)
	require.NoError(t, err)
	return pg
}

func TestRun_PriceHighWithRatingThreshold(t *testing.T) {
	items := []entity{
		{id: "a", price: dec(20), rating: 4.5},
		{id: "b", price: dec(60), rating: 3.0},
		{id: "c", price: dec(90), rating: 4.8},
	}
	spec := DefaultFilterSpec()
	spec.SortBy = SortPriceHigh
	spec.Rating = Rating3Plus

	page, err := testPipeline().Run(items, spec, mustPagination(t, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, ids(page.Items))
	assert.Equal(t, 3, page.Meta.TotalItems)
	assert.Equal(t, 2, page.Meta.TotalPages)
	assert.Equal(t, 1, page.Meta.From)
	assert.Equal(t, 2, page.Meta.To)
}

func TestFilter_PriceRangeAndBoundsIntersect(t *testing.T) {
	items := []entity{{id: "x", price: dec(30)}}
	p := testPipeline()

	tests := []struct {
		name string
		spec func(*FilterSpec)
		want []string
	}{
		{"bucket excludes", func(s *FilterSpec) { s.PriceRange = PriceUnder25 }, []string{}},
		{"bounds include", func(s *FilterSpec) { s.MinPrice, s.MaxPrice = decPtr(25), decPtr(50) }, []string{"x"}},
		{"bucket and bounds intersect to nothing", func(s *FilterSpec) {
			s.PriceRange = PriceUnder25
			s.MinPrice, s.MaxPrice = decPtr(25), decPtr(50)
		}, []string{}},
		{"bucket and bounds both match", func(s *FilterSpec) {
			s.PriceRange = Price25To50
			s.MinPrice = decPtr(30)
		}, []string{"x"}},
		{"max only is inclusive", func(s *FilterSpec) { s.MaxPrice = decPtr(30) }, []string{"x"}},
		{"bucket upper bound is exclusive", func(s *FilterSpec) { s.PriceRange = PriceUnder25 }, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := DefaultFilterSpec()
			tt.spec(&spec)
			assert.Equal(t, tt.want, ids(p.Filter(items, spec)))
		})
	}
}

func TestFilter_PriceBucketEdges(t *testing.T) {
	items := []entity{
		{id: "0", price: dec(0)}, {id: "25", price: dec(25)}, {id: "50", price: dec(50)},
		{id: "99.99", price: dec(99.99)}, {id: "100", price: dec(100)},
	}
	p := testPipeline()
	cases := map[PriceRange][]string{
		PriceUnder25: {"0"},
		Price25To50:  {"25"},
		Price50To100: {"50", "99.99"},
		PriceOver100: {"100"},
		PriceAll:     {"0", "25", "50", "99.99", "100"},
	}
	for r, want := range cases {
		spec := DefaultFilterSpec()
		spec.PriceRange = r
		assert.Equal(t, want, ids(p.Filter(items, spec)), string(r))
	}
}

func TestFilter_Category(t *testing.T) {
	items := []entity{
		{id: "1", category: "Electronics"},
		{id: "2", category: "smartphones"},
		{id: "3", category: "fashion"},
		{id: "4", category: "laptops"},
	}
	p := testPipeline()

	spec := DefaultFilterSpec()
	spec.Category = "Smartphones"
	assert.Equal(t, []string{"1", "2"}, ids(p.Filter(items, spec)))

	spec.Category = "electronics"
	assert.Equal(t, []string{"1"}, ids(p.Filter(items, spec)))

	spec.Category = "all"
	assert.Len(t, p.Filter(items, spec), 4)
}

func TestFilter_AvailabilityBrandQueryIDs(t *testing.T) {
	items := []entity{
		{id: "1", inStock: true, brand: "Acme", name: "Wireless Earbuds"},
		{id: "2", inStock: false, brand: "Zenith", name: "Gaming Mouse"},
		{id: "3", inStock: true, name: "Bamboo Board"},
	}
	p := testPipeline()

	spec := DefaultFilterSpec()
	spec.Availability = InStock
	assert.Equal(t, []string{"1", "3"}, ids(p.Filter(items, spec)))
	spec.Availability = OutOfStock
	assert.Equal(t, []string{"2"}, ids(p.Filter(items, spec)))

	spec = DefaultFilterSpec()
	spec.Brands = []string{"acme", "Nope"}
	assert.Equal(t, []string{"1"}, ids(p.Filter(items, spec)))

	spec = DefaultFilterSpec()
	spec.Query = "  MOUSE "
	assert.Equal(t, []string{"2"}, ids(p.Filter(items, spec)))

	spec = DefaultFilterSpec()
	spec.IDs = []string{"3", "1"}
	assert.Equal(t, []string{"1", "3"}, ids(p.Filter(items, spec)))
	spec.IDs = []string{}
	assert.Empty(t, p.Filter(items, spec))
}

func randomEntities(r *rand.Rand, n int) []entity {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := make([]entity, n)
	for i := range items {
		items[i] = entity{
			id:     string(rune('A'+i%26)) + strings.Repeat("x", i/26),
			price:  decimal.NewFromInt(int64(r.Intn(8) * 10)),
			rating: float64(r.Intn(5)),
		}
		if r.Intn(4) > 0 {
			items[i].created = base.Add(time.Duration(r.Intn(5)) * time.Hour)
		}
	}
	return items
}

// insertionSort is a reference stable sort.
func insertionSort(items []entity, cmp func(a, b entity) int) []entity {
	out := append([]entity(nil), items...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && cmp(out[j-1], out[j]) > 0; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func TestRun_AllPagesEqualStableSort(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	p := testPipeline()

	for round := 0; round < 50; round++ {
		items := randomEntities(r, r.Intn(60))
		perPage := r.Intn(7) + 1

		for _, key := range []SortKey{SortFeatured, SortPriceLow, SortPriceHigh, SortRating, SortNewest} {
			spec := DefaultFilterSpec()
			spec.SortBy = key

			var all []entity
			first, err := p.Run(items, spec, mustPagination(t, 1, perPage))
			require.NoError(t, err)
			for pg := 1; pg <= first.Meta.TotalPages; pg++ {
				page, err := p.Run(items, spec, mustPagination(t, pg, perPage))
				require.NoError(t, err)
				all = append(all, page.Items...)
			}

			want := items
			if o, ok := p.orders[key]; ok {
				want = insertionSort(items, o.Compare)
			}
			assert.Equal(t, ids(want), ids(all), "round %d sort %s", round, key)
		}
	}
}

func TestRun_IdempotentAndDoesNotMutateInput(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	items := randomEntities(r, 40)
	before := ids(items)

	spec := DefaultFilterSpec()
	spec.SortBy = SortPriceHigh
	spec.Rating = Rating2Plus
	pg := mustPagination(t, 2, 5)

	p := testPipeline()
	first, err := p.Run(items, spec, pg)
	require.NoError(t, err)
	second, err := p.Run(items, spec, pg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, ids(items))
}

func TestSort_NewestTreatsZeroTimeAsEpoch(t *testing.T) {
	items := []entity{
		{id: "undated"},
		{id: "old", created: time.Unix(10, 0)},
		{id: "new", created: time.Unix(20, 0)},
		{id: "undated2"},
	}
	spec := DefaultFilterSpec()
	spec.SortBy = SortNewest
	assert.Equal(t, []string{"new", "old", "undated", "undated2"}, ids(testPipeline().Sort(items, spec)))
}

func TestSort_NewestHandlesFarDates(t *testing.T) {
	items := []entity{
		{id: "old", created: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{id: "far", created: time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC)},
		{id: "ancient", created: time.Date(1500, 1, 1, 0, 0, 0, 0, time.UTC)},
		{id: "undated"},
	}
	spec := DefaultFilterSpec()
	spec.SortBy = SortNewest
	assert.Equal(t, []string{"far", "old", "undated", "ancient"}, ids(testPipeline().Sort(items, spec)))
}

func TestFixedSortIgnoresSpec(t *testing.T) {
	p := New[entity](nil, NewestFirst(func(e entity) time.Time { return e.created })).Fixed(SortNewest)
	items := []entity{{id: "a", created: time.Unix(1, 0)}, {id: "b", created: time.Unix(2, 0)}}

	spec := DefaultFilterSpec()
	spec.SortBy = SortPriceLow
	assert.Equal(t, []string{"b", "a"}, ids(p.Sort(items, spec)))
	assert.NoError(t, p.Validate(spec))
	assert.Equal(t, []SortKey{SortNewest}, p.Sorts())
}

func TestPipelineValidate(t *testing.T) {
	p := New[entity](nil, RatingDescending(func(e entity) float64 { return e.rating }))
	assert.Equal(t, []SortKey{SortFeatured, SortRating}, p.Sorts())

	spec := DefaultFilterSpec()
	spec.SortBy = SortRating
	assert.NoError(t, p.Validate(spec))

	spec.SortBy = SortPriceLow
	assert.ErrorIs(t, p.Validate(spec), ErrInvalidFilter)

	spec.SortBy = "cheapest"
	assert.ErrorIs(t, p.Validate(spec), ErrInvalidFilter)
}

func TestRun_EmptyAndOutOfRange(t *testing.T) {
	p := testPipeline()
	spec := DefaultFilterSpec()

	page, err := p.Run(nil, spec, mustPagination(t, 1, 10))
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Meta.TotalItems)
	assert.Equal(t, 0, page.Meta.TotalPages)
	assert.Equal(t, 0, page.Meta.From)
	assert.Equal(t, 0, page.Meta.To)

	items := []entity{{id: "a"}, {id: "b"}, {id: "c"}}
	for _, n := range []int{0, -1, 3, 100} {
		page, err := p.Run(items, spec, mustPagination(t, n, 2))
		require.NoError(t, err)
		assert.Empty(t, page.Items, "page %d", n)
		assert.Equal(t, 3, page.Meta.TotalItems)
		assert.Equal(t, 2, page.Meta.TotalPages)
	}

	last, err := p.Run(items, spec, mustPagination(t, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, ids(last.Items))
	assert.Equal(t, 3, last.Meta.From)
	assert.Equal(t, 3, last.Meta.To)
}

func TestRun_RejectsZeroValuePagination(t *testing.T) {
	_, err := testPipeline().Run(nil, DefaultFilterSpec(), Pagination{})
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestRun_HugePageSize(t *testing.T) {
	items := []entity{{id: "a"}, {id: "b"}, {id: "c"}}
	page, err := testPipeline().Run(items, DefaultFilterSpec(), mustPagination(t, 1, math.MaxInt))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(page.Items))
	assert.Equal(t, 1, page.Meta.TotalPages)
	assert.Equal(t, 3, page.Meta.To)
}
