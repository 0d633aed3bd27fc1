package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"

	"github.com/snackhub/catalog-api/internal/app/dto"
	"github.com/snackhub/catalog-api/internal/app/service"
	"github.com/snackhub/catalog-api/internal/domain"
	"github.com/snackhub/catalog-api/internal/infrastructure/http/response"
	"github.com/snackhub/catalog-api/internal/infrastructure/repository/memory"
)

type fixture struct {
	router  *chi.Mux
	lanches *domain.Category
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	tracer := otel.Tracer("test")
	meter := otel.Meter("test")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	categoryRepo := memory.NewCategoryRepository(tracer, logger)
	productRepo := memory.NewProductRepository(tracer, logger)

	lanches := domain.NewCategory("Lanches", "")
	if err := categoryRepo.Create(context.Background(), lanches); err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	categories := service.NewCategoryService(categoryRepo, tracer, meter, logger)
	products := service.NewProductService(productRepo, categories, tracer, meter, logger)

	categoryHandler := NewCategoryHandler(categories, logger)
	productHandler := NewProductHandler(products, logger)

	router := chi.NewRouter()
	router.Get("/categories", categoryHandler.List)
	router.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.List)
		r.Post("/", productHandler.Create)
		r.Get("/{id}", productHandler.Get)
		r.Put("/{id}", productHandler.Update)
		r.Delete("/{id}", productHandler.Delete)
	})

	return &fixture{router: router, lanches: lanches}
}

func (f *fixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) createProduct(t *testing.T, name string) dto.ProductResponse {
	t.Helper()
	body := `{"name":"` + name + `","price":29.90,"preparation_time":15,"category_id":"` + f.lanches.ID.String() + `"}`
	w := f.do(t, http.MethodPost, "/products", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	var product dto.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return product
}

func TestCreateProduct(t *testing.T) {
	f := newFixture(t)

	product := f.createProduct(t, " Burger ")

	if product.Name != "Burger" {
		t.Errorf("expected trimmed name 'Burger', got %q", product.Name)
	}
	if product.Category != "Lanches" {
		t.Errorf("expected category 'Lanches', got %q", product.Category)
	}
}

func TestCreateProductValidationError(t *testing.T) {
	f := newFixture(t)

	body := `{"price":29.90,"preparation_time":15,"category_id":"` + f.lanches.ID.String() + `"}`
	w := f.do(t, http.MethodPost, "/products", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var errResp response.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if errResp.ErrorCode != 400 {
		t.Errorf("expected error code 400, got %d", errResp.ErrorCode)
	}
	if errResp.Message != "name: is required" {
		t.Errorf("expected first violation message, got %q", errResp.Message)
	}
	if errResp.Timestamp.IsZero() {
		t.Error("expected a response timestamp")
	}
}

func TestCreateProductUnknownCategory(t *testing.T) {
	f := newFixture(t)

	body := `{"name":"Burger","price":29.90,"preparation_time":15,"category_id":"00000000-0000-0000-0000-000000000001"}`
	w := f.do(t, http.MethodPost, "/products", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var errResp response.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if errResp.ErrorCode != domain.ErrCategoryNotFound.Code {
		t.Errorf("expected error code %d, got %d", domain.ErrCategoryNotFound.Code, errResp.ErrorCode)
	}
}

func TestCreateProductNameConflict(t *testing.T) {
	f := newFixture(t)

	f.createProduct(t, "Burger")

	body := `{"name":"Burger","price":29.90,"preparation_time":15,"category_id":"` + f.lanches.ID.String() + `"}`
	w := f.do(t, http.MethodPost, "/products", body)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetProduct(t *testing.T) {
	f := newFixture(t)

	created := f.createProduct(t, "Burger")

	w := f.do(t, http.MethodGet, "/products/"+created.ID.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var product dto.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if product.ID != created.ID {
		t.Errorf("expected id %s, got %s", created.ID, product.ID)
	}
}

func TestGetProductAbsentReturnsNoContent(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/products/00000000-0000-0000-0000-000000000001", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 for unknown product, got %d", w.Code)
	}
}

func TestGetProductInvalidID(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/products/not-a-uuid", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestListProductsFilterRequiresKnownCategory(t *testing.T) {
	f := newFixture(t)
	f.createProduct(t, "Burger")

	w := f.do(t, http.MethodGet, "/products?category_id=00000000-0000-0000-0000-000000000001", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown filter category, got %d", w.Code)
	}

	w = f.do(t, http.MethodGet, "/products?category_id="+f.lanches.ID.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var products []dto.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(products) != 1 {
		t.Errorf("expected 1 product, got %d", len(products))
	}
}

func TestUpdateProductPrecedence(t *testing.T) {
	// Unknown product id plus unknown category id: the category error
	// wins, because resolution precedes the existence check.
	f := newFixture(t)

	body := `{"name":"Burger","price":29.90,"preparation_time":15,"category_id":"00000000-0000-0000-0000-000000000001"}`
	w := f.do(t, http.MethodPut, "/products/00000000-0000-0000-0000-000000000002", body)

	var errResp response.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if errResp.ErrorCode != domain.ErrCategoryNotFound.Code {
		t.Errorf("expected error code %d, got %d", domain.ErrCategoryNotFound.Code, errResp.ErrorCode)
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	f := newFixture(t)

	body := `{"name":"Burger","price":29.90,"preparation_time":15,"category_id":"` + f.lanches.ID.String() + `"}`
	w := f.do(t, http.MethodPut, "/products/00000000-0000-0000-0000-000000000002", body)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}

	var errResp response.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if errResp.ErrorCode != domain.ErrProductNotFound.Code {
		t.Errorf("expected error code %d, got %d", domain.ErrProductNotFound.Code, errResp.ErrorCode)
	}
}

func TestDeleteProductIdempotent(t *testing.T) {
	f := newFixture(t)

	created := f.createProduct(t, "Burger")

	w := f.do(t, http.MethodDelete, "/products/"+created.ID.String(), "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Code)
	}

	w = f.do(t, http.MethodDelete, "/products/"+created.ID.String(), "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 on repeated delete, got %d", w.Code)
	}
}

func TestListCategories(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/categories", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var categories []dto.CategoryResponse
	if err := json.NewDecoder(w.Body).Decode(&categories); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "Lanches" {
		t.Errorf("expected the seeded category, got %+v", categories)
	}
}
