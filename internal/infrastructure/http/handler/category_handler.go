package handler

import (
	"log/slog"
	"net/http"

	"github.com/snackhub/catalog-api/internal/app/service"
	"github.com/snackhub/catalog-api/internal/infrastructure/http/response"
)

// CategoryHandler handles HTTP requests for categories
type CategoryHandler struct {
	service *service.CategoryService
	logger  *slog.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service *service.CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetAll(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, categories)
}
