package repository

import (
	"testing"

	"github.com/fekuna/omnipos-storefront/internal/inventory/dto"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestBuildFindAll(t *testing.T) {
	q, args := buildFindAll(nil)
	assert.Equal(t, "SELECT kind, item_id, stock, adjusted_at FROM stock_adjustments ORDER BY id DESC", q)
	assert.Empty(t, args)

	q, args = buildFindAll(&dto.AdjustmentFilters{Kind: model.StockKindProduct, ID: "product-1", Limit: 5})
	assert.Equal(t, "SELECT kind, item_id, stock, adjusted_at FROM stock_adjustments WHERE kind = $1 AND item_id = $2 ORDER BY id DESC LIMIT $3", q)
	assert.Equal(t, []interface{}{model.StockKindProduct, "product-1", 5}, args)
}
