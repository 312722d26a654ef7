package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-storefront/internal/listing"
	"github.com/fekuna/omnipos-storefront/internal/shop"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/fekuna/omnipos-storefront/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type ShopHandler struct {
	uc     shop.UseCase
	logger logger.ZapLogger
}

func NewShopHandler(uc shop.UseCase, log logger.ZapLogger) *ShopHandler {
	return &ShopHandler{uc: uc, logger: log}
}

func (h *ShopHandler) RegisterRoutes(r chi.Router) {
	r.Route("/shops", func(r chi.Router) {
		r.Get("/", h.ListShops)
		r.Get("/cities", h.ListCities)
		r.Get("/{id}", h.GetShop)
	})
}

func (h *ShopHandler) ListShops(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	spec, err := listing.ParseFilterSpec(q)
	if err != nil {
		h.writeError(w, err)
		return
	}
	pg, err := listing.ShopPageSizes.Parse(q)
	if err != nil {
		h.writeError(w, err)
		return
	}
	page, err := h.uc.ListShops(r.Context(), spec, pg)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, page)
}

func (h *ShopHandler) GetShop(w http.ResponseWriter, r *http.Request) {
	s, err := h.uc.GetShop(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, s)
}

func (h *ShopHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.uc.ListCities(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"cities": cities})
}

func (h *ShopHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, listing.ErrInvalidFilter), errors.Is(err, listing.ErrInvalidPageSize):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shop.ErrNotFound):
		response.Error(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("shop request failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal error")
	}
}
