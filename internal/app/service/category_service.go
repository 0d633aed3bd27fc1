package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/snackhub/catalog-api/internal/app/dto"
	"github.com/snackhub/catalog-api/internal/domain"
)

// CategoryService handles the read-only category use cases. It is the
// single authority for category existence: ProductService resolves
// every category reference through GetByID.
type CategoryService struct {
	repo               domain.CategoryRepository
	tracer             trace.Tracer
	logger             *slog.Logger
	categoryOperations metric.Int64Counter
}

// NewCategoryService creates a new category service
func NewCategoryService(
	repo domain.CategoryRepository,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *CategoryService {
	categoryOperations, _ := meter.Int64Counter(
		"categories.operations",
		metric.WithDescription("Total number of category operations"),
	)

	return &CategoryService{
		repo:               repo,
		tracer:             tracer,
		logger:             logger,
		categoryOperations: categoryOperations,
	}
}

// GetAll returns every category. Order carries no meaning; the store's
// iteration order is preserved.
func (s *CategoryService) GetAll(ctx context.Context) ([]*dto.CategoryResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CategoryService.GetAll")
	defer span.End()

	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to retrieve categories")
		s.logger.ErrorContext(ctx, "Failed to list categories",
			slog.String("error", err.Error()),
		)
		s.recordOperation(ctx, "list", "failure")
		return nil, err
	}

	span.SetAttributes(attribute.Int("category.count", len(categories)))
	s.recordOperation(ctx, "list", "success")

	return dto.ToCategoryResponseList(categories), nil
}

// GetByID returns the category or fails with ErrCategoryNotFound. No
// silent nil: callers that hold a category id which does not resolve
// must always see the typed error.
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	ctx, span := s.tracer.Start(ctx, "CategoryService.GetByID")
	defer span.End()

	span.SetAttributes(attribute.String("category.id", id.String()))

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Category not found")
		s.logger.WarnContext(ctx, "Category not found",
			slog.String("category_id", id.String()),
		)
		s.recordOperation(ctx, "read", "not_found")
		return nil, err
	}

	s.recordOperation(ctx, "read", "success")
	return category, nil
}

func (s *CategoryService) recordOperation(ctx context.Context, operation, result string) {
	s.categoryOperations.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("result", result),
		),
	)
}
