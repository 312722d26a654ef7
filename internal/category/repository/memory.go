package repository

import (
	"context"

	"github.com/fekuna/omnipos-storefront/internal/category"
	"github.com/fekuna/omnipos-storefront/internal/model"
)

// StaticRepository serves the compiled-in category hierarchy.
type StaticRepository struct {
	tree *category.Hierarchy
}

func NewStaticRepository(tree *category.Hierarchy) *StaticRepository {
	return &StaticRepository{tree: tree}
}

func (r *StaticRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	c, ok := r.tree.Find(id)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *StaticRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	return r.tree.Tree(), nil
}
