package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-storefront/internal/listing"
	"github.com/fekuna/omnipos-storefront/internal/medicine"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/fekuna/omnipos-storefront/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type MedicineHandler struct {
	uc     medicine.UseCase
	logger logger.ZapLogger
}

func NewMedicineHandler(uc medicine.UseCase, log logger.ZapLogger) *MedicineHandler {
	return &MedicineHandler{uc: uc, logger: log}
}

func (h *MedicineHandler) RegisterRoutes(r chi.Router) {
	r.Route("/medicines", func(r chi.Router) {
		r.Get("/", h.ListMedicines)
		r.Get("/categories", h.ListCategories)
		r.Get("/{id}", h.GetMedicine)
	})
}

func (h *MedicineHandler) ListMedicines(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	spec, err := listing.ParseFilterSpec(q)
	if err != nil {
		h.writeError(w, err)
		return
	}
	pg, err := listing.MedicinePageSizes.Parse(q)
	if err != nil {
		h.writeError(w, err)
		return
	}

	page, err := h.uc.ListMedicines(r.Context(), spec, pg)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, page)
}

func (h *MedicineHandler) GetMedicine(w http.ResponseWriter, r *http.Request) {
	m, err := h.uc.GetMedicine(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, m)
}

func (h *MedicineHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.uc.ListCategories(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"categories": cats})
}

func (h *MedicineHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, listing.ErrInvalidFilter), errors.Is(err, listing.ErrInvalidPageSize):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, medicine.ErrNotFound):
		response.Error(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("medicine request failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal error")
	}
}
