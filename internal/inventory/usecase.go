package inventory

import (
	"context"

	"github.com/fekuna/omnipos-storefront/internal/inventory/dto"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/pkg/errors"
)

var (
	ErrInvalidAdjustment = errors.New("invalid stock adjustment")
	ErrBusy              = errors.New("item is locked by another adjustment")
)

type UseCase interface {
	// Apply sets the item's stock. Adjustments older than the last applied one for the same item are skipped.
	Apply(ctx context.Context, adj model.StockAdjustment) (applied bool, err error)
	ListAdjustments(ctx context.Context, filters *dto.AdjustmentFilters) ([]model.StockAdjustment, error)
}
