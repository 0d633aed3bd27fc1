package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is a named grouping that products belong to.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:100;not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a category with a fresh id and both timestamps
// set to the same instant. Timestamps are set here, not by the store.
func NewCategory(name, description string) *Category {
	now := time.Now().UTC()
	return &Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
