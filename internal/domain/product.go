package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable item. It always references an existing
// category; the reference is validated by the services before any
// store mutation.
type Product struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name            string          `gorm:"size:150;not null;uniqueIndex"`
	Description     string          `gorm:"type:text"`
	Price           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ImageURL        string          `gorm:"size:500"`
	PreparationTime int             `gorm:"not null"`
	CategoryID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category        *Category       `gorm:"foreignKey:CategoryID"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

func (Product) TableName() string {
	return "products"
}

// NewProduct creates a product with a fresh id, the name trimmed of
// surrounding whitespace, and createdAt/updatedAt set to the same
// instant.
func NewProduct(name, description string, price decimal.Decimal, imageURL string, preparationTime int, category *Category) *Product {
	now := time.Now().UTC()
	return &Product{
		ID:              uuid.New(),
		Name:            strings.TrimSpace(name),
		Description:     description,
		Price:           price,
		ImageURL:        imageURL,
		PreparationTime: preparationTime,
		CategoryID:      category.ID,
		Category:        category,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ApplyUpdate overwrites every mutable field in place and refreshes
// updatedAt. The id and createdAt never change.
func (p *Product) ApplyUpdate(name, description string, price decimal.Decimal, imageURL string, preparationTime int, category *Category) {
	p.Name = strings.TrimSpace(name)
	p.Description = description
	p.Price = price
	p.ImageURL = imageURL
	p.PreparationTime = preparationTime
	p.CategoryID = category.ID
	p.Category = category
	p.UpdatedAt = time.Now().UTC()
}
