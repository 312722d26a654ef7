package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/inventory/dto"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS stock_adjustments (
    id          BIGSERIAL PRIMARY KEY,
    kind        TEXT NOT NULL,
    item_id     TEXT NOT NULL,
    stock       INTEGER NOT NULL CHECK (stock >= 0),
    adjusted_at TIMESTAMPTZ NOT NULL,
    applied_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS stock_adjustments_item_idx ON stock_adjustments (kind, item_id, adjusted_at DESC)`

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// Migrate creates the adjustment log when missing.
func (r *PGRepository) Migrate(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, schema)
	return errors.Wrap(err, "migrate stock_adjustments")
}

func (r *PGRepository) LastAdjusted(ctx context.Context, kind model.StockKind, id string) (time.Time, bool, error) {
	var last time.Time
	query := `SELECT adjusted_at FROM stock_adjustments WHERE kind = $1 AND item_id = $2 ORDER BY adjusted_at DESC LIMIT 1`
	err := r.DB.GetContext(ctx, &last, query, kind, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, errors.Wrapf(err, "last adjustment %s/%s", kind, id)
	}
	return last, true, nil
}

func (r *PGRepository) Record(ctx context.Context, adj *model.StockAdjustment) error {
	query := `
        INSERT INTO stock_adjustments (kind, item_id, stock, adjusted_at)
        VALUES (:kind, :item_id, :stock, :adjusted_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, adj)
	return errors.Wrapf(err, "record adjustment %s/%s", adj.Kind, adj.ID)
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.AdjustmentFilters) ([]model.StockAdjustment, error) {
	out := []model.StockAdjustment{}
	query, args := buildFindAll(f)
	if err := r.DB.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, errors.Wrap(err, "list adjustments")
	}
	return out, nil
}

func buildFindAll(f *dto.AdjustmentFilters) (string, []interface{}) {
	var (
		where []string
		args  []interface{}
	)
	if f != nil && f.Kind != "" {
		args = append(args, f.Kind)
		where = append(where, "kind = ?")
	}
	if f != nil && f.ID != "" {
		args = append(args, f.ID)
		where = append(where, "item_id = ?")
	}

	query := `SELECT kind, item_id, stock, adjusted_at FROM stock_adjustments`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id DESC"
	if f != nil && f.Limit > 0 {
		args = append(args, f.Limit)
		query += " LIMIT ?"
	}
	return sqlx.Rebind(sqlx.DOLLAR, query), args
}
