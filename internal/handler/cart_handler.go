package handler

import (
	"net/http"
	"strings"

	"aesthetic-cakes/internal/middleware"
	"aesthetic-cakes/internal/model"
	"aesthetic-cakes/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const cartItemsPrefix = "/api/cart/items/"

// CartHandler handles session cart requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, h.logger)
		return
	}

	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, h.logger)
		return
	}

	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	var req model.AddToCartRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	if req.Kind == "" || req.ID == nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "kind and id are required", h.logger)
		return
	}

	resp, err := h.service.Add(r.Context(), sessionID, model.ProductKey{Kind: req.Kind, ID: *req.ID})
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Item routes PUT and DELETE /api/cart/items/{key} requests.
func (h *CartHandler) Item(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut:
		h.updateItem(w, r)
	case http.MethodDelete:
		h.removeItem(w, r)
	default:
		methodNotAllowed(w, r, h.logger)
	}
}

func (h *CartHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	key, ok := h.itemKey(w, r)
	if !ok {
		return
	}

	var req model.UpdateQuantityRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	if req.Quantity == nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "quantity is required", h.logger)
		return
	}

	resp, err := h.service.UpdateQuantity(r.Context(), sessionID, key, *req.Quantity)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	key, ok := h.itemKey(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Remove(r.Context(), sessionID, key)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// session returns the request's cart session, writing a 500 when the
// session middleware did not run.
func (h *CartHandler) session(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "session unavailable", h.logger)
		return uuid.Nil, false
	}
	return sessionID, true
}

// itemKey parses the product key from /api/cart/items/{key}.
func (h *CartHandler) itemKey(w http.ResponseWriter, r *http.Request) (model.ProductKey, bool) {
	raw := strings.TrimPrefix(r.URL.Path, cartItemsPrefix)
	key, err := model.ParseProductKey(raw)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return model.ProductKey{}, false
	}
	return key, true
}
