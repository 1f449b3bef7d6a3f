package handler

import (
	"net/http"
	"strings"

	"foodzy/internal/model"
	"foodzy/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles catalogue HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: model.ErrCodeValidationFailed, Message: "method not allowed"})
		return
	}

	products, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	if products == nil {
		products = []model.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: model.ErrCodeValidationFailed, Message: "method not allowed"})
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if id == "" {
		writeError(w, model.NewValidationError(model.ErrCodeValidationFailed, "product ID is required"), h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// ListByCategory handles GET /api/products/category/{category} requests.
func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: model.ErrCodeValidationFailed, Message: "method not allowed"})
		return
	}

	category := strings.TrimPrefix(r.URL.Path, "/api/products/category/")
	if category == "" {
		writeError(w, model.NewValidationError(model.ErrCodeValidationFailed, "category is required"), h.logger)
		return
	}

	products, err := h.service.ListByCategory(r.Context(), category)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	if products == nil {
		products = []model.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}
