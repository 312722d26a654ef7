package shop

import (
	"context"

	"github.com/fekuna/omnipos-storefront/internal/listing"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("shop not found")

type Repository interface {
	FindByID(ctx context.Context, id string) (*model.Shop, error)
	FindAll(ctx context.Context) ([]model.Shop, error)
}

type UseCase interface {
	GetShop(ctx context.Context, id string) (*model.Shop, error)
	ListShops(ctx context.Context, spec listing.FilterSpec, pg listing.Pagination) (listing.Page[model.Shop], error)
	ListCities(ctx context.Context) ([]string, error)
}

func rating(s model.Shop) float64 { return s.Rating }

func NewPipeline() *listing.Pipeline[model.Shop] {
	return listing.New(
		[]listing.Stage[model.Shop]{
			listing.CityStage(func(s model.Shop) string { return s.City }),
			listing.RatingStage(rating),
			listing.QueryStage(func(s model.Shop) []string { return []string{s.Name, s.Description, s.Address} }),
		},
		listing.RatingDescending(rating),
	)
}
