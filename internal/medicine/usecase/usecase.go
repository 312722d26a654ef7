package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/listing"
	"github.com/fekuna/omnipos-storefront/internal/medicine"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/pkg/cache"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const listPrefix = "medicines:list"

type medicineUseCase struct {
	repo     medicine.Repository
	pipeline *listing.Pipeline[model.Medicine]
	cache    cache.Store
	ttl      time.Duration
	logger   logger.ZapLogger
}

func NewMedicineUseCase(repo medicine.Repository, pipeline *listing.Pipeline[model.Medicine], store cache.Store, ttl time.Duration, log logger.ZapLogger) medicine.UseCase {
	return &medicineUseCase{
		repo:     repo,
		pipeline: pipeline,
		cache:    store,
		ttl:      ttl,
		logger:   log,
	}
}

func (uc *medicineUseCase) GetMedicine(ctx context.Context, id string) (*model.Medicine, error) {
	m, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.Wrap(medicine.ErrNotFound, id)
	}
	return m, nil
}

func (uc *medicineUseCase) ListMedicines(ctx context.Context, spec listing.FilterSpec, pg listing.Pagination) (listing.Page[model.Medicine], error) {
	if err := uc.pipeline.Validate(spec); err != nil {
		return listing.Page[model.Medicine]{}, err
	}

	key, err := cache.Key(listPrefix, struct {
		Spec          listing.FilterSpec
		Page, PerPage int
	}{spec, pg.Page(), pg.PerPage()})
	if err != nil {
		key = ""
	}

	return cache.Remember(ctx, uc.cache, key, uc.ttl, uc.logCacheError, func() (listing.Page[model.Medicine], error) {
		all, err := uc.repo.FindAll(ctx)
		if err != nil {
			return listing.Page[model.Medicine]{}, errors.Wrap(err, "find medicines")
		}
		return uc.pipeline.Run(all, spec, pg)
	})
}

// ListCategories returns the distinct categories in catalog order.
func (uc *medicineUseCase) ListCategories(ctx context.Context) ([]string, error) {
	all, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "find medicines")
	}
	seen := map[string]bool{}
	out := []string{}
	for _, m := range all {
		if !seen[m.Category] {
			seen[m.Category] = true
			out = append(out, m.Category)
		}
	}
	return out, nil
}

func (uc *medicineUseCase) SetInStock(ctx context.Context, id string, inStock bool) error {
	if err := uc.repo.SetInStock(ctx, id, inStock); err != nil {
		return err
	}
	if uc.cache != nil {
		if err := uc.cache.DeletePattern(ctx, listPrefix+":*"); err != nil {
			uc.logger.Warn("failed to invalidate medicine listings", zap.Error(err))
		}
	}
	return nil
}

func (uc *medicineUseCase) logCacheError(err error) {
	uc.logger.Warn("listing cache unavailable", zap.Error(err))
}
