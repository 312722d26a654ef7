package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-storefront/internal/listing"
	"github.com/fekuna/omnipos-storefront/internal/product"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/fekuna/omnipos-storefront/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/brands", h.ListBrands)
		r.Get("/{id}", h.GetProduct)
	})
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	spec, err := listing.ParseFilterSpec(q)
	if err != nil {
		h.writeError(w, err)
		return
	}
	pg, err := listing.ProductPageSizes.Parse(q)
	if err != nil {
		h.writeError(w, err)
		return
	}

	page, err := h.uc.ListProducts(r.Context(), spec, pg)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, page)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.uc.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, p)
}

func (h *ProductHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.uc.ListBrands(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"brands": brands})
}

func (h *ProductHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, listing.ErrInvalidFilter), errors.Is(err, listing.ErrInvalidPageSize):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, product.ErrNotFound):
		response.Error(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("product request failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal error")
	}
}
