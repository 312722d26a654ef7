package product

import (
	"context"

	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	// FindAll returns candidates in catalog order, narrowed by the pushdown filters.
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	Count(ctx context.Context) (int, error)

	UpdateStock(ctx context.Context, id string, stock int) error
}
