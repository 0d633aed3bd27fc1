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

// ProductRepository is an in-memory implementation of
// domain.ProductRepository. Name uniqueness is enforced here, the same
// way a database unique index would: concurrent creates with the same
// name race under the lock and exactly one wins. Records are stored
// and returned by copy, so callers mutating a product they hold never
// touch the stored state until Save accepts it.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*domain.Product
	byName   map[string]uuid.UUID
	order    []uuid.UUID
	tracer   trace.Tracer
	logger   *slog.Logger
}

// NewProductRepository creates a new in-memory product repository
func NewProductRepository(tracer trace.Tracer, logger *slog.Logger) *ProductRepository {
	return &ProductRepository{
		products: make(map[uuid.UUID]*domain.Product),
		byName:   make(map[string]uuid.UUID),
		tracer:   tracer,
		logger:   logger,
	}
}

// Create stores a new product, enforcing name uniqueness
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.Create")
	defer span.End()

	span.SetAttributes(
		attribute.String("product.id", product.ID.String()),
		attribute.String("product.name", product.Name),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[product.Name]; taken {
		span.RecordError(domain.ErrNameConflict)
		span.SetStatus(codes.Error, "Product name already exists")
		r.logger.WarnContext(ctx, "Product name already exists",
			slog.String("product_name", product.Name),
		)
		return domain.ErrNameConflict
	}

	r.products[product.ID] = cloneProduct(product)
	r.byName[product.Name] = product.ID
	r.order = append(r.order, product.ID)

	r.logger.InfoContext(ctx, "Product created in repository",
		slog.String("product_id", product.ID.String()),
		slog.String("product_name", product.Name),
	)

	return nil
}

// Save overwrites an existing product, keeping the name index in sync
func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) error {
	_, span := r.tracer.Start(ctx, "ProductRepository.Save")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", product.ID.String()))

	r.mu.Lock()
	defer r.mu.Unlock()

	if owner, taken := r.byName[product.Name]; taken && owner != product.ID {
		span.RecordError(domain.ErrNameConflict)
		span.SetStatus(codes.Error, "Product name already exists")
		return domain.ErrNameConflict
	}

	if previous, exists := r.products[product.ID]; exists && previous.Name != product.Name {
		delete(r.byName, previous.Name)
	}

	r.products[product.ID] = cloneProduct(product)
	r.byName[product.Name] = product.ID

	return nil
}

// FindByID retrieves a product by ID
func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.FindByID")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id.String()))

	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.products[id]
	if !exists {
		span.SetStatus(codes.Error, "Product not found")
		r.logger.DebugContext(ctx, "Product not found",
			slog.String("product_id", id.String()),
		)
		return nil, domain.ErrProductNotFound
	}

	return cloneProduct(product), nil
}

// FindAll retrieves all products in insertion order
func (r *ProductRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	_, span := r.tracer.Start(ctx, "ProductRepository.FindAll")
	defer span.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*domain.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, cloneProduct(r.products[id]))
	}

	span.SetAttributes(attribute.Int("product.count", len(products)))
	return products, nil
}

// FindByCategoryID retrieves the products of one category
func (r *ProductRepository) FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*domain.Product, error) {
	_, span := r.tracer.Start(ctx, "ProductRepository.FindByCategoryID")
	defer span.End()

	span.SetAttributes(attribute.String("category.id", categoryID.String()))

	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*domain.Product, 0)
	for _, id := range r.order {
		if product := r.products[id]; product.CategoryID == categoryID {
			products = append(products, cloneProduct(product))
		}
	}

	span.SetAttributes(attribute.Int("product.count", len(products)))
	return products, nil
}

// DeleteByID removes a product; unknown ids are a no-op
func (r *ProductRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.DeleteByID")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id.String()))

	r.mu.Lock()
	defer r.mu.Unlock()

	product, exists := r.products[id]
	if !exists {
		return nil
	}

	delete(r.products, id)
	delete(r.byName, product.Name)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	r.logger.InfoContext(ctx, "Product deleted from repository",
		slog.String("product_id", id.String()),
	)

	return nil
}

// cloneProduct copies a product so stored records never alias structs
// held by callers. The Category pointer is shared; categories have no
// in-place mutators.
func cloneProduct(p *domain.Product) *domain.Product {
	c := *p
	return &c
}
