package product

import (
	"context"

	"github.com/fekuna/omnipos-storefront/internal/listing"
	"github.com/fekuna/omnipos-storefront/internal/model"
)

type UseCase interface {
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context, spec listing.FilterSpec, pg listing.Pagination) (listing.Page[model.Product], error)
	ListBrands(ctx context.Context) ([]string, error)

	// Stock ops
	SetStock(ctx context.Context, id string, stock int) error

	// Index ops
	Reindex(ctx context.Context) error
}
