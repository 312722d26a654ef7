package dto

import "github.com/fekuna/omnipos-storefront/internal/model"

// AdjustmentFilters narrows the adjustment log. Zero values match everything.
type AdjustmentFilters struct {
	Kind  model.StockKind
	ID    string
	Limit int
}
