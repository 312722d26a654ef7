package product

import (
	"time"

	"github.com/fekuna/omnipos-storefront/internal/listing"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/shopspring/decimal"
)

func price(p model.Product) decimal.Decimal { return p.Price }
func rating(p model.Product) float64        { return p.Rating }

// NewPipeline declares the product listing: category, price bucket, price
// bounds, rating, availability, brand, then free-text query and id set.
func NewPipeline(tree listing.ParentLookup) *listing.Pipeline[model.Product] {
	return listing.New(
		[]listing.Stage[model.Product]{
			listing.CategoryStage(tree, func(p model.Product) string { return p.Category }),
			listing.PriceRangeStage(price),
			listing.PriceBoundsStage(price),
			listing.RatingStage(rating),
			listing.AvailabilityStage(model.Product.InStock),
			listing.BrandStage(model.Product.BrandName),
			listing.QueryStage(func(p model.Product) []string {
				b, _ := p.BrandName()
				return []string{p.Name, p.Description, b}
			}),
			listing.IDStage(func(p model.Product) string { return p.ID }),
		},
		listing.PriceAscending(price),
		listing.PriceDescending(price),
		listing.RatingDescending(rating),
		listing.NewestFirst(func(p model.Product) time.Time { return p.CreatedAt }),
	)
}
