package usecase

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-storefront/internal/listing"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/order"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/pkg/errors"
)

type orderUseCase struct {
	repo     order.Repository
	pipeline *listing.Pipeline[model.Order]
	pricing  order.Pricing
	logger   logger.ZapLogger
}

func NewOrderUseCase(repo order.Repository, pipeline *listing.Pipeline[model.Order], pricing order.Pricing, log logger.ZapLogger) order.UseCase {
	return &orderUseCase{repo: repo, pipeline: pipeline, pricing: pricing, logger: log}
}

func (uc *orderUseCase) GetOrder(ctx context.Context, id string) (*order.Detail, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, errors.Wrap(order.ErrNotFound, id)
	}
	return &order.Detail{
		Order:    *o,
		Timeline: order.Timeline(o.Status),
		Totals:   uc.pricing.Compute(o.Items),
	}, nil
}

func (uc *orderUseCase) ListOrders(ctx context.Context, spec listing.FilterSpec, pg listing.Pagination) (listing.Page[model.Order], error) {
	if spec.Status != "" && spec.Status != "all" && !knownStatus(spec.Status) {
		return listing.Page[model.Order]{}, errors.Wrapf(listing.ErrInvalidFilter, "unknown status %q", spec.Status)
	}
	if err := uc.pipeline.Validate(spec); err != nil {
		return listing.Page[model.Order]{}, err
	}
	all, err := uc.repo.FindAll(ctx)
	if err != nil {
		return listing.Page[model.Order]{}, errors.Wrap(err, "find orders")
	}
	return uc.pipeline.Run(all, spec, pg)
}

func knownStatus(s string) bool {
	for _, st := range model.OrderStatuses {
		if strings.EqualFold(string(st), s) {
			return true
		}
	}
	return false
}
