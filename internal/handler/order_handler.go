package handler

import (
	"net/http"
	"strings"

	"foodzy/internal/auth"
	"foodzy/internal/model"
	"foodzy/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderHandler handles order HTTP requests.
type OrderHandler struct {
	service service.OrderService
	tokens  *auth.TokenManager
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, tokens *auth.TokenManager, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		tokens:  tokens,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests. A valid bearer token
// associates the order with that user; a missing or invalid token
// means an anonymous order, never a rejection.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: model.ErrCodeValidationFailed, Message: "method not allowed"})
		return
	}

	var req model.OrderRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	order, err := h.service.Create(r.Context(), &req, h.userIDFromRequest(r))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: model.ErrCodeValidationFailed, Message: "method not allowed"})
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	if idStr == "" {
		writeError(w, model.NewValidationError(model.ErrCodeValidationFailed, "order ID is required"), h.logger)
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, model.NewValidationError(model.ErrCodeValidationFailed, "invalid order ID format"), h.logger)
		return
	}

	order, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// userIDFromRequest resolves the optional bearer token to a user id.
func (h *OrderHandler) userIDFromRequest(r *http.Request) *uuid.UUID {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return nil
	}

	claims, err := h.tokens.Verify(token)
	if err != nil {
		h.logger.Debug().Err(err).Msg("ignoring invalid bearer token")
		return nil
	}

	return &claims.UserID
}
