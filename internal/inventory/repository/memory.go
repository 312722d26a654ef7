package repository

import (
	"context"
	"sync"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/inventory/dto"
	"github.com/fekuna/omnipos-storefront/internal/model"
)

type MemoryRepository struct {
	mu  sync.RWMutex
	log []model.StockAdjustment
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) LastAdjusted(ctx context.Context, kind model.StockKind, id string) (time.Time, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.log) - 1; i >= 0; i-- {
		if r.log[i].Kind == kind && r.log[i].ID == id {
			return r.log[i].AdjustedAt, true, nil
		}
	}
	return time.Time{}, false, nil
}

func (r *MemoryRepository) Record(ctx context.Context, adj *model.StockAdjustment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log = append(r.log, *adj)
	return nil
}

// FindAll returns matching entries, most recently recorded first.
func (r *MemoryRepository) FindAll(ctx context.Context, f *dto.AdjustmentFilters) ([]model.StockAdjustment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []model.StockAdjustment{}
	for i := len(r.log) - 1; i >= 0; i-- {
		a := r.log[i]
		if f != nil && f.Kind != "" && a.Kind != f.Kind {
			continue
		}
		if f != nil && f.ID != "" && a.ID != f.ID {
			continue
		}
		out = append(out, a)
		if f != nil && f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}
