package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/listing"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/order"
	"github.com/fekuna/omnipos-storefront/internal/order/repository"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase() order.UseCase {
	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }
	orders := []model.Order{
		{BaseModel: model.BaseModel{ID: "o1"}, Date: day(1), Status: model.OrderDelivered},
		{BaseModel: model.BaseModel{ID: "o2"}, Date: day(5), Status: model.OrderShipped},
		{BaseModel: model.BaseModel{ID: "o3"}, Date: day(3), Status: model.OrderDelivered,
			Items: []model.OrderItem{{Price: decimal.NewFromInt(10), Quantity: 3}}},
		{BaseModel: model.BaseModel{ID: "o4"}, Date: day(5), Status: model.OrderCancelled},
	}
	pricing := order.Pricing{ShippingFee: decimal.RequireFromString("5.99"), TaxRate: decimal.RequireFromString("0.08")}
	return NewOrderUseCase(repository.NewMemoryRepository(orders), order.NewPipeline(), pricing, logger.NewNop())
}

func ids(os []model.Order) []string {
	out := []string{}
	for _, o := range os {
		out = append(out, o.ID)
	}
	return out
}

func TestListOrders(t *testing.T) {
	uc := newUseCase()
	pg, err := listing.NewPagination(1, 10)
	require.NoError(t, err)

	spec := listing.DefaultFilterSpec()
	spec.SortBy = listing.SortPriceLow
	page, err := uc.ListOrders(context.Background(), spec, pg)
	require.NoError(t, err)
	assert.Equal(t, []string{"o2", "o4", "o3", "o1"}, ids(page.Items))

	spec.Status = "delivered"
	page, err = uc.ListOrders(context.Background(), spec, pg)
	require.NoError(t, err)
	assert.Equal(t, []string{"o3", "o1"}, ids(page.Items))

	spec.Status = "Lost"
	_, err = uc.ListOrders(context.Background(), spec, pg)
	assert.ErrorIs(t, err, listing.ErrInvalidFilter)
}

func TestGetOrder(t *testing.T) {
	uc := newUseCase()
	d, err := uc.GetOrder(context.Background(), "o3")
	require.NoError(t, err)
	assert.Len(t, d.Timeline, 3)
	assert.Equal(t, "30.00", d.Totals.Subtotal.StringFixed(2))
	assert.Equal(t, "38.39", d.Totals.Total.StringFixed(2))

	d, err = uc.GetOrder(context.Background(), "o4")
	require.NoError(t, err)
	assert.Empty(t, d.Timeline)

	_, err = uc.GetOrder(context.Background(), "o9")
	assert.ErrorIs(t, err, order.ErrNotFound)
}
