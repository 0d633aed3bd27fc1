package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/snackhub/catalog-api/internal/app/dto"
	"github.com/snackhub/catalog-api/internal/domain"
)

// ProductService handles the product use cases. Category references
// are always resolved through CategoryService before any store
// mutation, so a stale reference fails synchronously.
type ProductService struct {
	repo                  domain.ProductRepository
	categories            *CategoryService
	tracer                trace.Tracer
	logger                *slog.Logger
	productCreatedCounter metric.Int64Counter
	productOperations     metric.Int64Counter
}

// NewProductService creates a new product service
func NewProductService(
	repo domain.ProductRepository,
	categories *CategoryService,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *ProductService {
	productCreatedCounter, _ := meter.Int64Counter(
		"products.created.total",
		metric.WithDescription("Total number of products created"),
	)

	productOperations, _ := meter.Int64Counter(
		"products.operations",
		metric.WithDescription("Total number of product operations"),
	)

	return &ProductService{
		repo:                  repo,
		categories:            categories,
		tracer:                tracer,
		logger:                logger,
		productCreatedCounter: productCreatedCounter,
		productOperations:     productOperations,
	}
}

// GetAll returns all products, or only those of one category when
// categoryID is set. The filter category must exist: an unknown id
// fails with ErrCategoryNotFound instead of returning an empty list.
func (s *ProductService) GetAll(ctx context.Context, categoryID *uuid.UUID) ([]*dto.ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.GetAll")
	defer span.End()

	var products []*domain.Product
	var err error

	if categoryID != nil {
		span.SetAttributes(attribute.String("category.id", categoryID.String()))

		category, cerr := s.categories.GetByID(ctx, *categoryID)
		if cerr != nil {
			span.RecordError(cerr)
			span.SetStatus(codes.Error, "Filter category not found")
			s.recordOperation(ctx, "list", "failure")
			return nil, cerr
		}
		products, err = s.repo.FindByCategoryID(ctx, category.ID)
	} else {
		products, err = s.repo.FindAll(ctx)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to retrieve products")
		s.logger.ErrorContext(ctx, "Failed to list products",
			slog.String("error", err.Error()),
		)
		s.recordOperation(ctx, "list", "failure")
		return nil, err
	}

	span.SetAttributes(attribute.Int("product.count", len(products)))
	s.recordOperation(ctx, "list", "success")

	return dto.ToProductResponseList(products), nil
}

// GetByID returns the product, or nil without an error when no product
// has the given id. Absence is a value here, not a failure: the
// boundary maps it to a no-content response. This is deliberately
// asymmetric with CategoryService.GetByID.
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.GetByID")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id.String()))

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			s.recordOperation(ctx, "read", "not_found")
			return nil, nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to retrieve product")
		s.recordOperation(ctx, "read", "failure")
		return nil, err
	}

	s.recordOperation(ctx, "read", "success")
	return dto.ToProductResponse(product), nil
}

// Create validates the category reference, builds the product and
// persists it. A name already taken surfaces as ErrNameConflict from
// the store.
func (s *ProductService) Create(ctx context.Context, req *dto.ProductRequest) (*dto.ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.Create")
	defer span.End()

	span.SetAttributes(
		attribute.String("product.name", req.Name),
		attribute.String("category.id", req.CategoryID.String()),
	)

	category, err := s.categories.GetByID(ctx, *req.CategoryID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Category not found")
		s.recordOperation(ctx, "create", "failure")
		return nil, err
	}

	product := domain.NewProduct(
		req.Name,
		req.Description,
		*req.Price,
		req.ImageURL,
		*req.PreparationTime,
		category,
	)

	span.SetAttributes(attribute.String("product.id", product.ID.String()))

	if err := s.repo.Create(ctx, product); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to store product")
		s.logger.ErrorContext(ctx, "Failed to store product",
			slog.String("product_name", product.Name),
			slog.String("error", err.Error()),
		)
		s.recordOperation(ctx, "create", "failure")
		return nil, err
	}

	s.productCreatedCounter.Add(ctx, 1)
	s.recordOperation(ctx, "create", "success")

	s.logger.InfoContext(ctx, "Product created",
		slog.String("product_id", product.ID.String()),
		slog.String("category", category.Name),
	)

	return dto.ToProductResponse(product), nil
}

// Update overwrites every mutable field of an existing product. The
// category reference is resolved before the product lookup, so an
// invalid category is reported even for an unknown product id. That
// precedence is observable and part of the contract.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req *dto.ProductRequest) (*dto.ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.Update")
	defer span.End()

	span.SetAttributes(
		attribute.String("product.id", id.String()),
		attribute.String("category.id", req.CategoryID.String()),
	)

	category, err := s.categories.GetByID(ctx, *req.CategoryID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Category not found")
		s.recordOperation(ctx, "update", "failure")
		return nil, err
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Product not found")
		s.logger.WarnContext(ctx, "Product not found for update",
			slog.String("product_id", id.String()),
		)
		s.recordOperation(ctx, "update", "failure")
		return nil, err
	}

	product.ApplyUpdate(
		req.Name,
		req.Description,
		*req.Price,
		req.ImageURL,
		*req.PreparationTime,
		category,
	)

	if err := s.repo.Save(ctx, product); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to store product")
		s.logger.ErrorContext(ctx, "Failed to update product",
			slog.String("product_id", id.String()),
			slog.String("error", err.Error()),
		)
		s.recordOperation(ctx, "update", "failure")
		return nil, err
	}

	s.recordOperation(ctx, "update", "success")

	s.logger.InfoContext(ctx, "Product updated",
		slog.String("product_id", product.ID.String()),
	)

	return dto.ToProductResponse(product), nil
}

// Delete removes the product unconditionally. Deleting an id that does
// not exist is not an error.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "ProductService.Delete")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id.String()))

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete product")
		s.logger.ErrorContext(ctx, "Failed to delete product",
			slog.String("product_id", id.String()),
			slog.String("error", err.Error()),
		)
		s.recordOperation(ctx, "delete", "failure")
		return err
	}

	s.recordOperation(ctx, "delete", "success")

	s.logger.InfoContext(ctx, "Product deleted",
		slog.String("product_id", id.String()),
	)

	return nil
}

func (s *ProductService) recordOperation(ctx context.Context, operation, result string) {
	s.productOperations.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("result", result),
		),
	)
}
