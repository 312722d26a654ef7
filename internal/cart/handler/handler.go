package handler

import (
	"context"
	"net/http"

	"github.com/fekuna/omnipos-storefront/internal/auth"
	"github.com/fekuna/omnipos-storefront/internal/cart"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/fekuna/omnipos-storefront/pkg/middleware"
	"github.com/fekuna/omnipos-storefront/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type CartHandler struct {
	uc     cart.UseCase
	logger logger.ZapLogger
}

func NewCartHandler(uc cart.UseCase, log logger.ZapLogger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: log,
	}
}

type addItemRequest struct {
	Kind     cart.Kind `json:"kind"`
	ID       string    `json:"id"`
	Quantity *int      `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Use(ensureSession)
		r.Get("/", h.GetCart)
		r.Delete("/", h.ClearCart)
		r.Post("/items", h.AddItem)
		r.Put("/items/{id}", h.UpdateQuantity)
		r.Delete("/items/{id}", h.RemoveItem)
	})
}

// ensureSession starts a session when the shopper has none and echoes the id back.
func ensureSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := auth.GetSessionID(r.Context())
		if id == "" {
			id = uuid.NewString()
			r = r.WithContext(context.WithValue(r.Context(), middleware.SessionIDKey, id))
		}
		w.Header().Set(middleware.SessionHeader, id)
		next.ServeHTTP(w, r)
	})
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	v, err := h.uc.GetCart(r.Context())
	h.write(w, v, err)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Kind == "" {
		req.Kind = cart.KindProduct
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	v, err := h.uc.AddItem(r.Context(), req.Kind, req.ID, quantity)
	h.write(w, v, err)
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v, err := h.uc.UpdateQuantity(r.Context(), chi.URLParam(r, "id"), req.Quantity)
	h.write(w, v, err)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	v, err := h.uc.RemoveItem(r.Context(), chi.URLParam(r, "id"))
	h.write(w, v, err)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	v, err := h.uc.ClearCart(r.Context())
	h.write(w, v, err)
}

func (h *CartHandler) write(w http.ResponseWriter, v *cart.View, err error) {
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, v)
}

func (h *CartHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity), errors.Is(err, cart.ErrInvalidItem), errors.Is(err, cart.ErrNoSession):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, cart.ErrNotFound):
		response.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, cart.ErrOutOfStock):
		response.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, cart.ErrPrescriptionRequired), errors.Is(err, cart.ErrQuantityLimit):
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Error("cart request failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal error")
	}
}
