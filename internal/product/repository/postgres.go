package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/product"
	"github.com/fekuna/omnipos-storefront/internal/product/dto"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    category    TEXT NOT NULL DEFAULT '',
    brand       TEXT,
    price       NUMERIC(12,2) NOT NULL CHECK (price >= 0),
    rating      DOUBLE PRECISION NOT NULL DEFAULT 0,
    upvotes     INTEGER NOT NULL DEFAULT 0,
    stock       INTEGER NOT NULL DEFAULT 0,
    image_url   TEXT NOT NULL DEFAULT '',
    position    BIGSERIAL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const columns = `id, name, description, category, brand, price, rating, upvotes, stock, image_url, created_at, updated_at`

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// Migrate creates the products table when missing.
func (r *PGRepository) Migrate(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, schema)
	return errors.Wrap(err, "migrate products")
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, name, description, category, brand, price, rating,
            upvotes, stock, image_url, created_at, updated_at
        )
        VALUES (
            :id, :name, :description, :category, :brand, :price, :rating,
            :upvotes, :stock, :image_url, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return errors.Wrapf(err, "insert product %s", p.ID)
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	query := `SELECT ` + columns + ` FROM products WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "find product %s", id)
	}
	return &product, nil
}

// FindAll narrows by price, rating and stock in SQL and returns rows in
// insertion order, which the listing pipeline treats as the featured order.
func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	products := []model.Product{}
	query, args := buildFindAll(f)

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "prepare product list")
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &products, args); err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return products, nil
}

func buildFindAll(f *dto.ProductFilters) (string, map[string]interface{}) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f != nil {
		if f.MinPrice != nil {
			conditions = append(conditions, "price >= :min_price")
			args["min_price"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			conditions = append(conditions, "price <= :max_price")
			args["max_price"] = *f.MaxPrice
		}
		if f.MinRating > 0 {
			conditions = append(conditions, "rating >= :min_rating")
			args["min_rating"] = f.MinRating
		}
		if f.InStock != nil {
			if *f.InStock {
				conditions = append(conditions, "stock > 0")
			} else {
				conditions = append(conditions, "stock <= 0")
			}
		}
		if f.SearchTerm != "" {
			conditions = append(conditions, "(name ILIKE :search OR description ILIKE :search OR brand ILIKE :search)")
			args["search"] = "%" + f.SearchTerm + "%"
		}
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}
	return "SELECT " + columns + " FROM products" + whereClause + " ORDER BY position", args
}

func (r *PGRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM products`)
	return count, errors.Wrap(err, "count products")
}

func (r *PGRepository) UpdateStock(ctx context.Context, id string, stock int) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE products SET stock = $1, updated_at = NOW() WHERE id = $2`, stock, id)
	if err != nil {
		return errors.Wrapf(err, "update stock %s", id)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.Wrap(product.ErrNotFound, id)
	}
	return nil
}
