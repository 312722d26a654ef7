package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/cart"
	"github.com/fekuna/omnipos-storefront/internal/cart/usecase"
	"github.com/fekuna/omnipos-storefront/internal/category"
	"github.com/fekuna/omnipos-storefront/internal/medicine"
	medicinerepo "github.com/fekuna/omnipos-storefront/internal/medicine/repository"
	medicineuc "github.com/fekuna/omnipos-storefront/internal/medicine/usecase"
	"github.com/fekuna/omnipos-storefront/internal/product"
	productrepo "github.com/fekuna/omnipos-storefront/internal/product/repository"
	productuc "github.com/fekuna/omnipos-storefront/internal/product/usecase"
	"github.com/fekuna/omnipos-storefront/internal/seed"
	"github.com/fekuna/omnipos-storefront/pkg/i18n"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/fekuna/omnipos-storefront/pkg/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	router  http.Handler
	catalog seed.Catalog
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	catalog := seed.Generate(42, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), nil)
	log := logger.NewNop()

	products := productuc.NewProductUseCase(productrepo.NewMemoryRepository(catalog.Products), product.NewPipeline(category.Default), nil, nil, 0, log)
	medicines := medicineuc.NewMedicineUseCase(medicinerepo.NewMemoryRepository(catalog.Medicines), medicine.NewPipeline(), nil, 0, log)
	tr, err := i18n.New("en")
	require.NoError(t, err)

	uc := usecase.NewCartUseCase(products, medicines, nil, tr, usecase.Config{
		Shipping:          cart.ShippingPolicy{FreeOver: decimal.NewFromInt(100), Fee: decimal.NewFromInt(10)},
		MedicineMaxPerAdd: 10,
	}, log)

	r := chi.NewRouter()
	r.Use(middleware.Session)
	NewCartHandler(uc, log).RegisterRoutes(r)
	return fixture{router: r, catalog: catalog}
}

func (f fixture) do(method, url, session, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	if session != "" {
		req.Header.Set(middleware.SessionHeader, session)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f fixture) inStockProduct(t *testing.T) string {
	t.Helper()
	for _, p := range f.catalog.Products {
		if p.Stock >= 3 {
			return p.ID
		}
	}
	t.Fatal("no product with stock")
	return ""
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) cart.View {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var v cart.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestSessionIsCreatedWhenMissing(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/cart", "", "")
	id := rec.Header().Get(middleware.SessionHeader)
	assert.NotEmpty(t, id)
	v := decodeView(t, rec)
	assert.Equal(t, id, v.SessionID)
	assert.Empty(t, v.Items)

	rec = f.do(http.MethodGet, "/cart", "abc", "")
	assert.Equal(t, "abc", rec.Header().Get(middleware.SessionHeader))
}

func TestCartFlow(t *testing.T) {
	f := newFixture(t)
	id := f.inStockProduct(t)

	v := decodeView(t, f.do(http.MethodPost, "/cart/items", "s1", `{"kind":"product","id":"`+id+`","quantity":2}`))
	require.Len(t, v.Items, 1)
	require.NotNil(t, v.Notification)
	assert.Equal(t, 2, v.Summary.TotalItems)

	v = decodeView(t, f.do(http.MethodPut, "/cart/items/"+id, "s1", `{"quantity":3}`))
	assert.Equal(t, 3, v.Items[0].Quantity)

	v = decodeView(t, f.do(http.MethodGet, "/cart", "s1", ""))
	assert.Equal(t, 3, v.Summary.TotalItems)
	assert.Nil(t, v.Notification)

	v = decodeView(t, f.do(http.MethodDelete, "/cart/items/"+id, "s1", ""))
	assert.Empty(t, v.Items)

	v = decodeView(t, f.do(http.MethodDelete, "/cart", "s1", ""))
	assert.Equal(t, "Cart cleared", v.Notification.Title)
}

func TestCartErrors(t *testing.T) {
	f := newFixture(t)
	id := f.inStockProduct(t)

	tests := []struct {
		name   string
		method string
		url    string
		body   string
		status int
	}{
		{"bad json", http.MethodPost, "/cart/items", `{"id":`, http.StatusBadRequest},
		{"unknown field", http.MethodPost, "/cart/items", `{"id":"` + id + `","qty":1}`, http.StatusBadRequest},
		{"negative quantity", http.MethodPost, "/cart/items", `{"id":"` + id + `","quantity":-1}`, http.StatusBadRequest},
		{"zero quantity", http.MethodPost, "/cart/items", `{"id":"` + id + `","quantity":0}`, http.StatusBadRequest},
		{"unknown product", http.MethodPost, "/cart/items", `{"id":"product-999"}`, http.StatusNotFound},
		{"too many", http.MethodPost, "/cart/items", `{"id":"` + id + `","quantity":100000}`, http.StatusConflict},
		{"unknown kind", http.MethodPost, "/cart/items", `{"kind":"gift","id":"x"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(tt.method, tt.url, "s1", tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestAddItem_QuantityDefaultsToOne(t *testing.T) {
	f := newFixture(t)
	id := f.inStockProduct(t)

	rec := f.do(http.MethodPost, "/cart/items", "s1", `{"id":"`+id+`","quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, decodeView(t, f.do(http.MethodGet, "/cart", "s1", "")).Items)

	v := decodeView(t, f.do(http.MethodPost, "/cart/items", "s1", `{"id":"`+id+`"}`))
	require.Len(t, v.Items, 1)
	assert.Equal(t, 1, v.Items[0].Quantity)
}

func TestPrescriptionMedicineIsRejected(t *testing.T) {
	f := newFixture(t)
	for _, m := range f.catalog.Medicines {
		if m.RequiresPrescription {
			rec := f.do(http.MethodPost, "/cart/items", "s1", `{"kind":"medicine","id":"`+m.ID+`"}`)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
			return
		}
	}
	t.Skip("seed produced no prescription medicine")
}

func TestLocalizedNotification(t *testing.T) {
	f := newFixture(t)
	id := f.inStockProduct(t)

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"id":"`+id+`"}`))
	req.Header.Set(middleware.SessionHeader, "s1")
	req.Header.Set("Accept-Language", "id-ID,id;q=0.9")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	v := decodeView(t, rec)
	assert.Equal(t, "Barang ditambahkan ke keranjang", v.Notification.Title)
}
