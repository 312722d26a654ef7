package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Category    string          `db:"category" json:"category"`
	Brand       *string         `db:"brand" json:"brand,omitempty"` // Nullable
	Price       decimal.Decimal `db:"price" json:"price"`
	Rating      float64         `db:"rating" json:"rating"`
	Upvotes     int             `db:"upvotes" json:"upvotes"`
	Stock       int             `db:"stock" json:"stock"`
	ImageURL    string          `db:"image_url" json:"image_url"`
}

func (p Product) InStock() bool { return p.Stock > 0 }

// BrandName reports the brand and whether the product carries one.
func (p Product) BrandName() (string, bool) {
	if p.Brand == nil || *p.Brand == "" {
		return "", false
	}
	return *p.Brand, true
}
