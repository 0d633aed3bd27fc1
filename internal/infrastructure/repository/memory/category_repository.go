package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/snackhub/catalog-api/internal/domain"
)

// CategoryRepository is an in-memory implementation of
// domain.CategoryRepository. Listing preserves insertion order;
// records are stored and returned by copy.
type CategoryRepository struct {
	mu         sync.RWMutex
	categories map[uuid.UUID]*domain.Category
	byName     map[string]uuid.UUID
	order      []uuid.UUID
	tracer     trace.Tracer
	logger     *slog.Logger
}

// NewCategoryRepository creates a new in-memory category repository
func NewCategoryRepository(tracer trace.Tracer, logger *slog.Logger) *CategoryRepository {
	return &CategoryRepository{
		categories: make(map[uuid.UUID]*domain.Category),
		byName:     make(map[string]uuid.UUID),
		tracer:     tracer,
		logger:     logger,
	}
}

// Create stores a new category, enforcing name uniqueness
func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	ctx, span := r.tracer.Start(ctx, "CategoryRepository.Create")
	defer span.End()

	span.SetAttributes(
		attribute.String("category.id", category.ID.String()),
		attribute.String("category.name", category.Name),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[category.Name]; taken {
		span.RecordError(domain.ErrNameConflict)
		span.SetStatus(codes.Error, "Category name already exists")
		return domain.ErrNameConflict
	}

	r.categories[category.ID] = cloneCategory(category)
	r.byName[category.Name] = category.ID
	r.order = append(r.order, category.ID)

	r.logger.InfoContext(ctx, "Category created in repository",
		slog.String("category_id", category.ID.String()),
		slog.String("category_name", category.Name),
	)

	return nil
}

// FindByID retrieves a category by ID
func (r *CategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	ctx, span := r.tracer.Start(ctx, "CategoryRepository.FindByID")
	defer span.End()

	span.SetAttributes(attribute.String("category.id", id.String()))

	r.mu.RLock()
	defer r.mu.RUnlock()

	category, exists := r.categories[id]
	if !exists {
		span.RecordError(domain.ErrCategoryNotFound)
		span.SetStatus(codes.Error, "Category not found")
		r.logger.WarnContext(ctx, "Category not found",
			slog.String("category_id", id.String()),
		)
		return nil, domain.ErrCategoryNotFound
	}

	return cloneCategory(category), nil
}

// FindAll retrieves all categories in insertion order
func (r *CategoryRepository) FindAll(ctx context.Context) ([]*domain.Category, error) {
	_, span := r.tracer.Start(ctx, "CategoryRepository.FindAll")
	defer span.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]*domain.Category, 0, len(r.order))
	for _, id := range r.order {
		categories = append(categories, cloneCategory(r.categories[id]))
	}

	span.SetAttributes(attribute.Int("category.count", len(categories)))
	return categories, nil
}

// DeleteByID removes a category; unknown ids are a no-op
func (r *CategoryRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, span := r.tracer.Start(ctx, "CategoryRepository.DeleteByID")
	defer span.End()

	span.SetAttributes(attribute.String("category.id", id.String()))

	r.mu.Lock()
	defer r.mu.Unlock()

	category, exists := r.categories[id]
	if !exists {
		return nil
	}

	delete(r.categories, id)
	delete(r.byName, category.Name)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

func cloneCategory(c *domain.Category) *domain.Category {
	cp := *c
	return &cp
}
