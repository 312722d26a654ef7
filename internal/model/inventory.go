package model

import "time"

type StockKind string

const (
	StockKindProduct  StockKind = "product"
	StockKindMedicine StockKind = "medicine"
)

// StockAdjustment sets the absolute stock of one catalog item.
type StockAdjustment struct {
	Kind       StockKind `db:"kind" json:"kind"`
	ID         string    `db:"item_id" json:"id"`
	Stock      int       `db:"stock" json:"stock"`
	AdjustedAt time.Time `db:"adjusted_at" json:"adjusted_at"`
}
