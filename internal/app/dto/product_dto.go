package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/snackhub/catalog-api/internal/domain"
)

func init() {
	// Prices go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ProductRequest represents the request body for creating or updating
// a product. The same shape is used for both operations.
type ProductRequest struct {
	Name            string           `json:"name" validate:"required,max=150"`
	Description     string           `json:"description" validate:"omitempty,max=1000"`
	Price           *decimal.Decimal `json:"price" validate:"required"`
	ImageURL        string           `json:"image_url" validate:"omitempty,max=500"`
	PreparationTime *int             `json:"preparation_time" validate:"required,gte=0"`
	CategoryID      *uuid.UUID       `json:"category_id" validate:"required"`
}

// ProductResponse represents a product in API responses. The category
// relation is denormalized to its name for read convenience.
type ProductResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	ImageURL        string          `json:"image_url"`
	PreparationTime int             `json:"preparation_time"`
	Category        string          `json:"category"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *domain.Product) *ProductResponse {
	categoryName := ""
	if p.Category != nil {
		categoryName = p.Category.Name
	}
	return &ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		ImageURL:        p.ImageURL,
		PreparationTime: p.PreparationTime,
		Category:        categoryName,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ToProductResponseList converts a list of domain Products to ProductResponse list
func ToProductResponseList(products []*domain.Product) []*ProductResponse {
	responses := make([]*ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ToProductResponse(p)
	}
	return responses
}
