package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/inventory"
	"github.com/fekuna/omnipos-storefront/internal/inventory/dto"
	"github.com/fekuna/omnipos-storefront/internal/medicine"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/product"
	"github.com/fekuna/omnipos-storefront/pkg/cache"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	lockTTL      = 5 * time.Second
	lockAttempts = 3
	lockBackoff  = 100 * time.Millisecond
)

type inventoryUseCase struct {
	repo      inventory.Repository
	products  product.UseCase
	medicines medicine.UseCase
	locker    cache.Locker
	logger    logger.ZapLogger
}

// NewInventoryUseCase applies adjustments to the catalogs. locker may be nil for a single instance.
func NewInventoryUseCase(repo inventory.Repository, products product.UseCase, medicines medicine.UseCase, locker cache.Locker, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:      repo,
		products:  products,
		medicines: medicines,
		locker:    locker,
		logger:    log,
	}
}

func (uc *inventoryUseCase) Apply(ctx context.Context, adj model.StockAdjustment) (bool, error) {
	if adj.ID == "" || adj.Stock < 0 {
		return false, errors.Wrapf(inventory.ErrInvalidAdjustment, "id %q stock %d", adj.ID, adj.Stock)
	}
	if adj.Kind != model.StockKindProduct && adj.Kind != model.StockKindMedicine {
		return false, errors.Wrapf(inventory.ErrInvalidAdjustment, "unknown kind %q", adj.Kind)
	}
	if adj.AdjustedAt.IsZero() {
		adj.AdjustedAt = time.Now().UTC()
	}

	release, err := uc.lock(ctx, fmt.Sprintf("lock:inventory:%s:%s", adj.Kind, adj.ID))
	if err != nil {
		return false, err
	}
	defer release()

	last, ok, err := uc.repo.LastAdjusted(ctx, adj.Kind, adj.ID)
	if err != nil {
		return false, err
	}
	if ok && adj.AdjustedAt.Before(last) {
		uc.logger.Debug("skipping stale stock adjustment",
			zap.String("kind", string(adj.Kind)),
			zap.String("id", adj.ID),
			zap.Time("adjusted_at", adj.AdjustedAt),
			zap.Time("last", last),
		)
		return false, nil
	}

	switch adj.Kind {
	case model.StockKindProduct:
		err = uc.products.SetStock(ctx, adj.ID, adj.Stock)
	case model.StockKindMedicine:
		err = uc.medicines.SetInStock(ctx, adj.ID, adj.Stock > 0)
	}
	if err != nil {
		return false, err
	}

	if err := uc.repo.Record(ctx, &adj); err != nil {
		return false, err
	}
	return true, nil
}

func (uc *inventoryUseCase) ListAdjustments(ctx context.Context, filters *dto.AdjustmentFilters) ([]model.StockAdjustment, error) {
	return uc.repo.FindAll(ctx, filters)
}

// lock takes a short Redis lock on key, retrying a few times before giving up.
func (uc *inventoryUseCase) lock(ctx context.Context, key string) (func(), error) {
	if uc.locker == nil {
		return func() {}, nil
	}

	value := uuid.NewString()
	for i := 0; i < lockAttempts; i++ {
		ok, err := uc.locker.AcquireLock(ctx, key, value, lockTTL)
		if err != nil {
			uc.logger.Error("failed to acquire lock redis error", zap.Error(err))
		}
		if ok {
			return func() {
				if err := uc.locker.ReleaseLock(ctx, key, value); err != nil {
					uc.logger.Warn("failed to release lock", zap.String("key", key), zap.Error(err))
				}
			}, nil
		}
		time.Sleep(lockBackoff)
	}
	return nil, errors.Wrap(inventory.ErrBusy, key)
}
