package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/category"
	"github.com/fekuna/omnipos-storefront/internal/listing"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/product"
	"github.com/fekuna/omnipos-storefront/internal/product/dto"
	"github.com/fekuna/omnipos-storefront/internal/product/repository"
	"github.com/fekuna/omnipos-storefront/pkg/cache"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/fekuna/omnipos-storefront/pkg/search"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRepo struct {
	product.Repository
	findAll int
}

func (r *countingRepo) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	r.findAll++
	return r.Repository.FindAll(ctx, f)
}

type memStore struct {
	data    map[string][]byte
	deleted []string
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) GetJSON(ctx context.Context, key string, dest interface{}) error {
	b, ok := m.data[key]
	if !ok {
		return cache.ErrMiss
	}
	return json.Unmarshal(b, dest)
}

func (m *memStore) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}

func (m *memStore) DeletePattern(ctx context.Context, pattern string) error {
	m.deleted = append(m.deleted, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
		}
	}
	return nil
}

type fakeIndex struct {
	ids     []string
	total   int
	err     error
	queries []map[string]interface{}
}

func (f *fakeIndex) CreateIndex(ctx context.Context, index, mapping string) error { return nil }
func (f *fakeIndex) Index(ctx context.Context, index, id string, doc interface{}) error {
	return nil
}
func (f *fakeIndex) Delete(ctx context.Context, index, id string) error { return nil }
func (f *fakeIndex) Search(ctx context.Context, index string, q map[string]interface{}) (*search.SearchResponse, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	res := &search.SearchResponse{}
	for _, id := range f.ids {
		res.Hits.Hits = append(res.Hits.Hits, search.Hit{ID: id})
	}
	res.Hits.Total.Value = max(f.total, len(f.ids))
	return res, nil
}

func strPtr(s string) *string { return &s }

func fixtures() []model.Product {
	at := func(d int) model.BaseModel {
		t := time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
		return model.BaseModel{CreatedAt: t, UpdatedAt: t}
	}
	ps := []model.Product{
		{BaseModel: at(1), Name: "Wireless Earbuds", Category: "audio", Brand: strPtr("Acme"), Price: decimal.NewFromInt(20), Rating: 4.5, Stock: 5},
		{BaseModel: at(2), Name: "Gaming Mouse", Category: "electronics", Brand: strPtr("Zenith"), Price: decimal.NewFromInt(60), Rating: 3.0, Stock: 0},
		{BaseModel: at(3), Name: "Laptop Stand", Category: "laptops", Price: decimal.NewFromInt(90), Rating: 4.8, Stock: 2},
	}
	for i, id := range []string{"a", "b", "c"} {
		ps[i].ID = id
	}
	return ps
}

func ids(ps []model.Product) []string {
	out := []string{}
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func newUseCase(store cache.Store, es search.Index) (product.UseCase, *countingRepo) {
	repo := &countingRepo{Repository: repository.NewMemoryRepository(fixtures())}
	uc := NewProductUseCase(repo, product.NewPipeline(category.Default), store, es, time.Minute, logger.NewNop())
	return uc, repo
}

func page(t *testing.T, n, size int) listing.Pagination {
	pg, err := listing.NewPagination(n, size)
	require.NoError(t, err)
	return pg
}

func TestListProducts(t *testing.T) {
	uc, _ := newUseCase(nil, nil)
	spec := listing.DefaultFilterSpec()
	spec.SortBy = listing.SortPriceHigh
	spec.Rating = listing.Rating3Plus

	res, err := uc.ListProducts(context.Background(), spec, page(t, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, ids(res.Items))
	assert.Equal(t, 3, res.Meta.TotalItems)

	spec = listing.DefaultFilterSpec()
	spec.Category = "smartphones"
	spec.Availability = listing.InStock
	res, err = uc.ListProducts(context.Background(), spec, page(t, 1, 12))
	require.NoError(t, err)
	assert.Empty(t, res.Items)

	spec = listing.DefaultFilterSpec()
	spec.Category = "laptops"
	res, err = uc.ListProducts(context.Background(), spec, page(t, 1, 12))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, ids(res.Items))
}

func TestListProducts_InvalidSpec(t *testing.T) {
	uc, _ := newUseCase(nil, nil)
	spec := listing.DefaultFilterSpec()
	spec.SortBy = "cheapest"
	_, err := uc.ListProducts(context.Background(), spec, page(t, 1, 12))
	assert.ErrorIs(t, err, listing.ErrInvalidFilter)
}

func TestListProducts_CachesAndInvalidates(t *testing.T) {
	store := newMemStore()
	uc, repo := newUseCase(store, nil)
	ctx := context.Background()
	spec := listing.DefaultFilterSpec()

	first, err := uc.ListProducts(ctx, spec, page(t, 1, 12))
	require.NoError(t, err)
	second, err := uc.ListProducts(ctx, spec, page(t, 1, 12))
	require.NoError(t, err)
	assert.Equal(t, 1, repo.findAll)
	assert.Equal(t, ids(first.Items), ids(second.Items))
	assert.True(t, second.Items[0].Price.Equal(decimal.NewFromInt(20)))

	require.NoError(t, uc.SetStock(ctx, "b", 7))
	assert.Equal(t, []string{"products:list:*"}, store.deleted)

	spec.Availability = listing.InStock
	res, err := uc.ListProducts(ctx, spec, page(t, 1, 12))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(res.Items))
}

func TestListProducts_SearchIndex(t *testing.T) {
	es := &fakeIndex{ids: []string{"c", "a"}}
	uc, _ := newUseCase(nil, es)
	spec := listing.DefaultFilterSpec()
	spec.Query = "stand"

	res, err := uc.ListProducts(context.Background(), spec, page(t, 1, 12))
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, ids(res.Items))
	require.Len(t, es.queries, 1)

	// hits outside the substring match are dropped
	spec.Query = "wireless earbuds"
	res, err = uc.ListProducts(context.Background(), spec, page(t, 1, 12))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(res.Items))

	es.err = errors.New("index down")
	spec.Query = "gaming"
	res, err = uc.ListProducts(context.Background(), spec, page(t, 1, 12))
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids(res.Items))
}

func TestListProducts_SearchIndexTruncated(t *testing.T) {
	es := &fakeIndex{ids: []string{"c"}, total: 5000}
	uc, _ := newUseCase(nil, es)
	spec := listing.DefaultFilterSpec()
	spec.Query = "a"

	res, err := uc.ListProducts(context.Background(), spec, page(t, 1, 12))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(res.Items))
}

func TestGetProductAndStock(t *testing.T) {
	uc, _ := newUseCase(nil, nil)
	ctx := context.Background()

	p, err := uc.GetProduct(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Wireless Earbuds", p.Name)

	_, err = uc.GetProduct(ctx, "zzz")
	assert.ErrorIs(t, err, product.ErrNotFound)

	assert.ErrorIs(t, uc.SetStock(ctx, "zzz", 1), product.ErrNotFound)
	require.NoError(t, uc.SetStock(ctx, "a", 0))
	p, _ = uc.GetProduct(ctx, "a")
	assert.False(t, p.InStock())
}

func TestListBrands(t *testing.T) {
	uc, _ := newUseCase(nil, nil)
	brands, err := uc.ListBrands(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Zenith"}, brands)
}
