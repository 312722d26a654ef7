package medicine

import (
	"github.com/fekuna/omnipos-storefront/internal/listing"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/shopspring/decimal"
)

func price(m model.Medicine) decimal.Decimal { return m.Price }

func NewPipeline() *listing.Pipeline[model.Medicine] {
	return listing.New(
		[]listing.Stage[model.Medicine]{
			listing.CategoryStage[model.Medicine](nil, func(m model.Medicine) string { return m.Category }),
			listing.PriceRangeStage(price),
			listing.PriceBoundsStage(price),
			listing.AvailabilityStage(func(m model.Medicine) bool { return m.InStock }),
			listing.QueryStage(func(m model.Medicine) []string { return []string{m.Name, m.Description} }),
		},
		listing.PriceAscending(price),
		listing.PriceDescending(price),
	)
}
