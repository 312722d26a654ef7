package medicine

import (
	"context"

	"github.com/fekuna/omnipos-storefront/internal/listing"
	"github.com/fekuna/omnipos-storefront/internal/model"
)

type UseCase interface {
	GetMedicine(ctx context.Context, id string) (*model.Medicine, error)
	ListMedicines(ctx context.Context, spec listing.FilterSpec, pg listing.Pagination) (listing.Page[model.Medicine], error)
	ListCategories(ctx context.Context) ([]string, error)
	SetInStock(ctx context.Context, id string, inStock bool) error
}
