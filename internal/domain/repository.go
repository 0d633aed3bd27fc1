package domain

import (
	"context"

	"github.com/google/uuid"
)

// CategoryRepository is the persistence port for categories. FindByID
// returns ErrCategoryNotFound when no category has the given id.
// Implementations enforce name uniqueness and report violations as
// ErrNameConflict.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindAll(ctx context.Context) ([]*Category, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// ProductRepository is the persistence port for products. FindByID
// returns ErrProductNotFound when no product has the given id; the
// same uniqueness and conflict rules apply as for categories.
// DeleteByID is idempotent: deleting an unknown id is not an error.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	Save(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context) ([]*Product, error)
	FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*Product, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
