package handler

import (
	"net/http"

	"aesthetic-cakes/internal/middleware"
	"aesthetic-cakes/internal/model"
	"aesthetic-cakes/internal/service"

	"github.com/rs/zerolog"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	service service.ContactService
	logger  zerolog.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(service service.ContactService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger.With().Str("handler", "contact").Logger(),
	}
}

// Submit handles POST /api/contact requests.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, h.logger)
		return
	}

	var msg model.ContactMessage
	if !decodeJSON(w, r, &msg, h.logger) {
		return
	}

	// Without the session middleware this is uuid.Nil.
	sessionID, _ := middleware.SessionIDFromContext(r.Context())

	resp, err := h.service.Submit(r.Context(), sessionID, &msg)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
