package handler

import (
	"net/http"
	"strconv"

	"github.com/fekuna/omnipos-storefront/internal/inventory"
	"github.com/fekuna/omnipos-storefront/internal/inventory/dto"
	"github.com/fekuna/omnipos-storefront/internal/medicine"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/product"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/fekuna/omnipos-storefront/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const defaultLimit = 50

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/inventory/adjustments", func(r chi.Router) {
		r.Get("/", h.ListAdjustments)
		r.Post("/", h.AdjustStock)
	})
}

func (h *InventoryHandler) ListAdjustments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := &dto.AdjustmentFilters{
		Kind:  model.StockKind(q.Get("kind")),
		ID:    q.Get("id"),
		Limit: defaultLimit,
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			response.Error(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		filters.Limit = n
	}

	items, err := h.uc.ListAdjustments(r.Context(), filters)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *InventoryHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var adj model.StockAdjustment
	if err := response.Decode(r, &adj); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	applied, err := h.uc.Apply(r.Context(), adj)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"applied": applied})
}

func (h *InventoryHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, inventory.ErrInvalidAdjustment):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, product.ErrNotFound), errors.Is(err, medicine.ErrNotFound):
		response.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, inventory.ErrBusy):
		response.Error(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("inventory request failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal error")
	}
}
