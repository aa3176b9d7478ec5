package handler

import (
	"net/http"
	"strconv"
	"strings"

	"aesthetic-cakes/internal/model"
	"aesthetic-cakes/internal/service"

	"github.com/rs/zerolog"
)

// maxSearchLimit caps the number of search results a client may request.
const maxSearchLimit = 50

// CatalogHandler handles catalogue browsing and search requests.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalogue handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// List handles GET /api/portfolio and GET /api/sweeties requests with an
// optional category filter.
func (h *CatalogHandler) List(kind model.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w, r, h.logger)
			return
		}

		category := strings.TrimSpace(r.URL.Query().Get("category"))

		listing, err := h.service.Listing(r.Context(), kind, category)
		if err != nil {
			writeDomainError(w, r, err, h.logger)
			return
		}

		writeJSON(w, http.StatusOK, listing)
	}
}

// GetByID handles GET /api/portfolio/{id} and GET /api/sweeties/{id} requests.
func (h *CatalogHandler) GetByID(kind model.Kind) http.HandlerFunc {
	prefix := "/api/" + kind.Route() + "/"

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w, r, h.logger)
			return
		}

		// Expecting path: /api/{route}/{id}
		idStr := strings.TrimPrefix(r.URL.Path, prefix)
		if idStr == "" || idStr == r.URL.Path {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidProductID, "product ID is required", h.logger)
			return
		}

		id, err := strconv.Atoi(idStr)
		if err != nil {
			writeDomainError(w, r, model.ErrInvalidProductID, h.logger)
			return
		}

		product, err := h.service.Detail(r.Context(), kind, id)
		if err != nil {
			writeDomainError(w, r, err, h.logger)
			return
		}

		writeJSON(w, http.StatusOK, product)
	}
}

// Featured handles GET /api/featured requests.
func (h *CatalogHandler) Featured(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, h.logger)
		return
	}

	products, err := h.service.Featured(r.Context())
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Search handles GET /api/search?q=&limit= requests. The query is trimmed
// before matching; an empty result set is not an error.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, h.logger)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))

	limit := 0 // no cap
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidParameter, "invalid limit parameter", h.logger)
			return
		}
		if limit > maxSearchLimit {
			limit = maxSearchLimit
		}
	}

	results, err := h.service.Search(r.Context(), query, limit)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, results)
}
