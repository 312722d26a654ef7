package repository

import (
	"context"

	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/store"
)

type MemoryRepository struct {
	items *store.Collection[model.Shop]
}

func NewMemoryRepository(shops []model.Shop) *MemoryRepository {
	return &MemoryRepository{
		items: store.NewCollection(func(s model.Shop) string { return s.ID }, shops...),
	}
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Shop, error) {
	s, ok := r.items.Get(id)
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]model.Shop, error) {
	return r.items.All(), nil
}
