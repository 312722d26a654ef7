package repository

import (
	"context"

	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/store"
)

type MemoryRepository struct {
	items *store.Collection[model.Order]
}

func NewMemoryRepository(orders []model.Order) *MemoryRepository {
	return &MemoryRepository{
		items: store.NewCollection(func(o model.Order) string { return o.ID }, orders...),
	}
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	o, ok := r.items.Get(id)
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	return r.items.All(), nil
}
