package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-storefront/internal/category"
	"github.com/fekuna/omnipos-storefront/internal/category/dto"
	"github.com/fekuna/omnipos-storefront/internal/category/usecase"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/fekuna/omnipos-storefront/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Get("/categories", h.ListCategories)
	r.Get("/categories/{id}", h.GetCategory)
}

// ListCategories serves the tree by default; ?parent=id narrows to one level, ?tree=false flattens.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := &dto.CategoryFilters{IncludeChildren: q.Get("tree") != "false"}
	if p := q.Get("parent"); p != "" {
		filters.ParentID = &p
	}

	cats, err := h.uc.ListCategories(r.Context(), filters)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"categories": cats})
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	cat, err := h.uc.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, cat)
}

func (h *CategoryHandler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, usecase.ErrNotFound) {
		response.Error(w, http.StatusNotFound, err.Error())
		return
	}
	h.logger.Error("category request failed", zap.Error(err))
	response.Error(w, http.StatusInternalServerError, "internal error")
}
