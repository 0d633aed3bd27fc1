package dto

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/snackhub/catalog-api/internal/domain"
)

func validRequest() *ProductRequest {
	price := decimal.RequireFromString("29.90")
	prep := 15
	categoryID := uuid.New()
	return &ProductRequest{
		Name:            "Burger",
		Price:           &price,
		PreparationTime: &prep,
		CategoryID:      &categoryID,
	}
}

func TestProductRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *ProductRequest)
		wantMsg string
	}{
		{
			name:   "valid request",
			mutate: func(r *ProductRequest) {},
		},
		{
			name:    "missing name",
			mutate:  func(r *ProductRequest) { r.Name = "" },
			wantMsg: "name: is required",
		},
		{
			name:    "blank name",
			mutate:  func(r *ProductRequest) { r.Name = "   " },
			wantMsg: "name: must not be blank",
		},
		{
			name:    "name too long",
			mutate:  func(r *ProductRequest) { r.Name = strings.Repeat("a", 151) },
			wantMsg: "name: must be at most 150 characters",
		},
		{
			name:    "description too long",
			mutate:  func(r *ProductRequest) { r.Description = strings.Repeat("d", 1001) },
			wantMsg: "description: must be at most 1000 characters",
		},
		{
			name:    "missing price",
			mutate:  func(r *ProductRequest) { r.Price = nil },
			wantMsg: "price: is required",
		},
		{
			name: "negative price",
			mutate: func(r *ProductRequest) {
				price := decimal.RequireFromString("-0.01")
				r.Price = &price
			},
			wantMsg: "price: must be greater than or equal to 0.00",
		},
		{
			name: "price with three decimal places",
			mutate: func(r *ProductRequest) {
				price := decimal.RequireFromString("9.999")
				r.Price = &price
			},
			wantMsg: "price: must have at most 2 decimal places",
		},
		{
			name: "price with eleven integer digits",
			mutate: func(r *ProductRequest) {
				price := decimal.RequireFromString("10000000000.00")
				r.Price = &price
			},
			wantMsg: "price: must have at most 10 integer digits",
		},
		{
			name: "zero price is allowed",
			mutate: func(r *ProductRequest) {
				price := decimal.RequireFromString("0.00")
				r.Price = &price
			},
		},
		{
			name:    "image url too long",
			mutate:  func(r *ProductRequest) { r.ImageURL = strings.Repeat("u", 501) },
			wantMsg: "image_url: must be at most 500 characters",
		},
		{
			name:    "missing preparation time",
			mutate:  func(r *ProductRequest) { r.PreparationTime = nil },
			wantMsg: "preparation_time: is required",
		},
		{
			name: "negative preparation time",
			mutate: func(r *ProductRequest) {
				prep := -1
				r.PreparationTime = &prep
			},
			wantMsg: "preparation_time: must be greater than or equal to 0",
		},
		{
			name:    "missing category id",
			mutate:  func(r *ProductRequest) { r.CategoryID = nil },
			wantMsg: "category_id: is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := req.Validate()

			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("expected validation error %q, got nil", tt.wantMsg)
			}

			var derr *domain.Error
			if !errors.As(err, &derr) {
				t.Fatalf("expected a domain error, got %T", err)
			}
			if derr.Code != 400 {
				t.Errorf("expected code 400, got %d", derr.Code)
			}
			if derr.Message != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, derr.Message)
			}
		})
	}
}

func TestProductRequestValidateFirstViolationOnly(t *testing.T) {
	// Several fields invalid at once: only the first violation is reported.
	req := validRequest()
	req.Name = ""
	req.Price = nil
	req.CategoryID = nil

	err := req.Validate()
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if err.Error() != "name: is required" {
		t.Errorf("expected first violation only, got %q", err.Error())
	}
}
