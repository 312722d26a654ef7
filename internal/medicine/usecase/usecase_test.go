package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/listing"
	"github.com/fekuna/omnipos-storefront/internal/medicine"
	"github.com/fekuna/omnipos-storefront/internal/medicine/repository"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtures() []model.Medicine {
	mk := func(id, name, cat, desc string, price int64, inStock bool) model.Medicine {
		return model.Medicine{
			BaseModel:   model.BaseModel{ID: id},
			Name:        name,
			Category:    cat,
			Description: desc,
			Price:       decimal.NewFromInt(price),
			InStock:     inStock,
		}
	}
	return []model.Medicine{
		mk("m1", "Paracetamol Tablets", "Pain Relief", "Fast fever relief", 12, true),
		mk("m2", "Vitamin C", "Vitamins", "Daily immune support", 8, true),
		mk("m3", "Ibuprofen", "Pain Relief", "Anti-inflammatory", 30, false),
		mk("m4", "Cough Syrup", "Cold & Flu", "Soothes the throat", 12, true),
	}
}

func newUseCase() medicine.UseCase {
	return NewMedicineUseCase(repository.NewMemoryRepository(fixtures()), medicine.NewPipeline(), nil, time.Minute, logger.NewNop())
}

func ids(ms []model.Medicine) []string {
	out := []string{}
	for _, m := range ms {
		out = append(out, m.ID)
	}
	return out
}

func TestListMedicines(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	pg, err := listing.NewPagination(1, 9)
	require.NoError(t, err)

	tests := []struct {
		name string
		spec func(*listing.FilterSpec)
		want []string
	}{
		{"featured keeps catalog order", func(s *listing.FilterSpec) {}, []string{"m1", "m2", "m3", "m4"}},
		{"category is case-insensitive", func(s *listing.FilterSpec) { s.Category = "pain relief" }, []string{"m1", "m3"}},
		{"query matches description", func(s *listing.FilterSpec) { s.Query = "IMMUNE" }, []string{"m2"}},
		{"in stock only", func(s *listing.FilterSpec) { s.Availability = listing.InStock }, []string{"m1", "m2", "m4"}},
		{"price low is stable", func(s *listing.FilterSpec) { s.SortBy = listing.SortPriceLow }, []string{"m2", "m1", "m4", "m3"}},
		{"price high is stable", func(s *listing.FilterSpec) { s.SortBy = listing.SortPriceHigh }, []string{"m3", "m1", "m4", "m2"}},
		{"bucket", func(s *listing.FilterSpec) { s.PriceRange = listing.Price25To50 }, []string{"m3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := listing.DefaultFilterSpec()
			tt.spec(&spec)
			page, err := uc.ListMedicines(ctx, spec, pg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(page.Items))
		})
	}
}

func TestListMedicines_RejectsUnsupportedSort(t *testing.T) {
	pg, _ := listing.NewPagination(1, 9)
	spec := listing.DefaultFilterSpec()
	spec.SortBy = listing.SortRating
	_, err := newUseCase().ListMedicines(context.Background(), spec, pg)
	assert.ErrorIs(t, err, listing.ErrInvalidFilter)
}

func TestSetInStockAndCategories(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	require.NoError(t, uc.SetInStock(ctx, "m3", true))
	m, err := uc.GetMedicine(ctx, "m3")
	require.NoError(t, err)
	assert.True(t, m.InStock)

	assert.ErrorIs(t, uc.SetInStock(ctx, "nope", true), medicine.ErrNotFound)
	_, err = uc.GetMedicine(ctx, "nope")
	assert.ErrorIs(t, err, medicine.ErrNotFound)

	cats, err := uc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pain Relief", "Vitamins", "Cold & Flu"}, cats)
}
