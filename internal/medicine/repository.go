package medicine

import (
	"context"

	"github.com/fekuna/omnipos-storefront/internal/model"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*model.Medicine, error)
	FindAll(ctx context.Context) ([]model.Medicine, error)
	SetInStock(ctx context.Context, id string, inStock bool) error
}
