package repository

import (
	"context"

	"github.com/fekuna/omnipos-storefront/internal/medicine"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/store"
	"github.com/pkg/errors"
)

type MemoryRepository struct {
	items *store.Collection[model.Medicine]
}

func NewMemoryRepository(medicines []model.Medicine) *MemoryRepository {
	return &MemoryRepository{
		items: store.NewCollection(func(m model.Medicine) string { return m.ID }, medicines...),
	}
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Medicine, error) {
	m, ok := r.items.Get(id)
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]model.Medicine, error) {
	return r.items.All(), nil
}

func (r *MemoryRepository) SetInStock(ctx context.Context, id string, inStock bool) error {
	if !r.items.Update(id, func(m *model.Medicine) { m.InStock = inStock }) {
		return errors.Wrap(medicine.ErrNotFound, id)
	}
	return nil
}
