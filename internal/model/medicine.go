package model

import "github.com/shopspring/decimal"

type Medicine struct {
	BaseModel
	Name                 string          `json:"name"`
	ImageURL             string          `json:"image_url"`
	Price                decimal.Decimal `json:"price"`
	Category             string          `json:"category"`
	Description          string          `json:"description"`
	InStock              bool            `json:"in_stock"`
	RequiresPrescription bool            `json:"requires_prescription"`
}
