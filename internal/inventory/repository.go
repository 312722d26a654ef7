package inventory

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/inventory/dto"
	"github.com/fekuna/omnipos-storefront/internal/model"
)

// Repository is the log of applied adjustments.
type Repository interface {
	LastAdjusted(ctx context.Context, kind model.StockKind, id string) (time.Time, bool, error)
	Record(ctx context.Context, adj *model.StockAdjustment) error
	FindAll(ctx context.Context, filters *dto.AdjustmentFilters) ([]model.StockAdjustment, error)
}
