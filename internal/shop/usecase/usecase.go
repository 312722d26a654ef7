package usecase

import (
	"context"
	"sort"

	"github.com/fekuna/omnipos-storefront/internal/listing"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/shop"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/pkg/errors"
)

type shopUseCase struct {
	repo     shop.Repository
	pipeline *listing.Pipeline[model.Shop]
	logger   logger.ZapLogger
}

func NewShopUseCase(repo shop.Repository, pipeline *listing.Pipeline[model.Shop], log logger.ZapLogger) shop.UseCase {
	return &shopUseCase{repo: repo, pipeline: pipeline, logger: log}
}

func (uc *shopUseCase) GetShop(ctx context.Context, id string) (*model.Shop, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errors.Wrap(shop.ErrNotFound, id)
	}
	return s, nil
}

func (uc *shopUseCase) ListShops(ctx context.Context, spec listing.FilterSpec, pg listing.Pagination) (listing.Page[model.Shop], error) {
	if err := uc.pipeline.Validate(spec); err != nil {
		return listing.Page[model.Shop]{}, err
	}
	all, err := uc.repo.FindAll(ctx)
	if err != nil {
		return listing.Page[model.Shop]{}, errors.Wrap(err, "find shops")
	}
	return uc.pipeline.Run(all, spec, pg)
}

func (uc *shopUseCase) ListCities(ctx context.Context) ([]string, error) {
	all, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "find shops")
	}
	seen := map[string]bool{}
	cities := []string{}
	for _, s := range all {
		if !seen[s.City] {
			seen[s.City] = true
			cities = append(cities, s.City)
		}
	}
	sort.Strings(cities)
	return cities, nil
}
