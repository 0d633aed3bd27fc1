package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/snackhub/catalog-api/internal/app/dto"
	"github.com/snackhub/catalog-api/internal/app/service"
	"github.com/snackhub/catalog-api/internal/domain"
	"github.com/snackhub/catalog-api/internal/infrastructure/http/response"
)

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /products, optionally filtered by category_id
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	var categoryID *uuid.UUID
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, domain.NewValidationError("category_id: must be a valid UUID"))
			return
		}
		categoryID = &id
	}

	products, err := h.service.GetAll(r.Context(), categoryID)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, products)
}

// Get handles GET /products/{id}. An unknown id is not an error: the
// service reports absence as a nil value and the response is 204.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, domain.NewValidationError("id: must be a valid UUID"))
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	if product == nil {
		response.NoContent(w)
		return
	}

	response.JSON(w, http.StatusOK, product)
}

// Create handles POST /products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	product, err := h.service.Create(r.Context(), req)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, product)
}

// Update handles PUT /products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, domain.NewValidationError("id: must be a valid UUID"))
		return
	}

	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	product, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, product)
}

// Delete handles DELETE /products/{id}. Idempotent: deleting an
// unknown id still returns 204.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, domain.NewValidationError("id: must be a valid UUID"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}

	response.NoContent(w)
}

// decodeRequest parses and validates the shared create/update body.
// Validation short-circuits before any service call and reports only
// the first violation.
func (h *ProductHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (*dto.ProductRequest, bool) {
	var req dto.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body",
			slog.String("error", err.Error()),
		)
		response.Error(w, domain.NewValidationError("invalid request body"))
		return nil, false
	}

	if err := req.Validate(); err != nil {
		response.Error(w, err)
		return nil, false
	}

	return &req, true
}
