package order

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/listing"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("order not found")

type Repository interface {
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindAll(ctx context.Context) ([]model.Order, error)
}

type UseCase interface {
	GetOrder(ctx context.Context, id string) (*Detail, error)
	ListOrders(ctx context.Context, spec listing.FilterSpec, pg listing.Pagination) (listing.Page[model.Order], error)
}

// Detail is an order with its derived timeline and price breakdown.
type Detail struct {
	model.Order
	Timeline []Step `json:"timeline"`
	Totals   Totals `json:"totals"`
}

// NewPipeline filters by status only and always lists newest first.
func NewPipeline() *listing.Pipeline[model.Order] {
	return listing.New(
		[]listing.Stage[model.Order]{
			listing.StatusStage(func(o model.Order) string { return string(o.Status) }),
		},
		listing.NewestFirst(func(o model.Order) time.Time { return o.Date }),
	).Fixed(listing.SortNewest)
}
