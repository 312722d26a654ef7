package listing

import (
	"slices"

	"github.com/pkg/errors"
)

// Pipeline filters, stably sorts and paginates one entity variant. It holds no
// mutable state and never modifies the input slice, so Run is safe for
// concurrent use and idempotent.
type Pipeline[T any] struct {
	stages []Stage[T]
	orders map[SortKey]Order[T]
	fixed  SortKey
}

// New builds a pipeline whose filter stages run in the declared order. Featured
// (input order) is always available and needs no Order.
func New[T any](stages []Stage[T], orders ...Order[T]) *Pipeline[T] {
	p := &Pipeline[T]{
		stages: stages,
		orders: make(map[SortKey]Order[T], len(orders)),
	}
	for _, o := range orders {
		p.orders[o.Key] = o
	}
	return p
}

// Fixed pins the sort key regardless of the requested one.
func (p *Pipeline[T]) Fixed(key SortKey) *Pipeline[T] {
	p.fixed = key
	return p
}

// Sorts lists the sort keys this pipeline accepts.
func (p *Pipeline[T]) Sorts() []SortKey {
	if p.fixed != "" {
		return []SortKey{p.fixed}
	}
	keys := []SortKey{SortFeatured}
	for _, k := range []SortKey{SortPriceLow, SortPriceHigh, SortRating, SortNewest} {
		if _, ok := p.orders[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// Validate checks the FilterSpec option values and that its sort key is one this
// pipeline offers.
func (p *Pipeline[T]) Validate(spec FilterSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	if p.fixed != "" || spec.SortBy == "" {
		return nil
	}
	if !slices.Contains(p.Sorts(), spec.SortBy) {
		return errors.Wrapf(ErrInvalidFilter, "sort %q not supported here", spec.SortBy)
	}
	return nil
}

// Filter returns a new slice with the items every active stage keeps.
func (p *Pipeline[T]) Filter(items []T, spec FilterSpec) []T {
	active := make([]Stage[T], 0, len(p.stages))
	for _, s := range p.stages {
		if s.Active(spec) {
			active = append(active, s)
		}
	}

	out := make([]T, 0, len(items))
next:
	for _, item := range items {
		for _, s := range active {
			if !s.Keep(spec, item) {
				continue next
			}
		}
		out = append(out, item)
	}
	return out
}

// Sort returns a stably sorted copy. Unknown keys and featured keep input order.
func (p *Pipeline[T]) Sort(items []T, spec FilterSpec) []T {
	out := slices.Clone(items)
	key := spec.Sort()
	if p.fixed != "" {
		key = p.fixed
	}
	if o, ok := p.orders[key]; ok {
		slices.SortStableFunc(out, o.Compare)
	}
	return out
}

// Run filters, sorts and paginates items for spec. It fails only on a
// Pagination not built by NewPagination.
func (p *Pipeline[T]) Run(items []T, spec FilterSpec, pg Pagination) (Page[T], error) {
	if pg.perPage <= 0 {
		return Page[T]{}, ErrInvalidPageSize
	}
	return paginate(p.Sort(p.Filter(items, spec), spec), pg), nil
}
