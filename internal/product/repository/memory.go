package repository

import (
	"context"

	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/product"
	"github.com/fekuna/omnipos-storefront/internal/product/dto"
	"github.com/fekuna/omnipos-storefront/internal/store"
	"github.com/pkg/errors"
)

type MemoryRepository struct {
	items *store.Collection[model.Product]
}

func NewMemoryRepository(products []model.Product) *MemoryRepository {
	return &MemoryRepository{
		items: store.NewCollection(func(p model.Product) string { return p.ID }, products...),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, p *model.Product) error {
	r.items.Put(*p)
	return nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	p, ok := r.items.Get(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// FindAll ignores the pushdown filters; the listing pipeline applies them.
func (r *MemoryRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	return r.items.All(), nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	return r.items.Len(), nil
}

func (r *MemoryRepository) UpdateStock(ctx context.Context, id string, stock int) error {
	if !r.items.Update(id, func(p *model.Product) { p.Stock = stock }) {
		return errors.Wrap(product.ErrNotFound, id)
	}
	return nil
}
