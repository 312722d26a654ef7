package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-storefront/internal/listing"
	"github.com/fekuna/omnipos-storefront/internal/order"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/fekuna/omnipos-storefront/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type OrderHandler struct {
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: log}
}

func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Get("/{id}", h.GetOrder)
	})
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	spec, err := listing.ParseFilterSpec(q)
	if err != nil {
		h.writeError(w, err)
		return
	}
	pg, err := listing.OrderPageSizes.Parse(q)
	if err != nil {
		h.writeError(w, err)
		return
	}
	page, err := h.uc.ListOrders(r.Context(), spec, pg)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, page)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	d, err := h.uc.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, d)
}

func (h *OrderHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, listing.ErrInvalidFilter), errors.Is(err, listing.ErrInvalidPageSize):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, order.ErrNotFound):
		response.Error(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("order request failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal error")
	}
}
