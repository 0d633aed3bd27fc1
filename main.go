package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/snackhub/catalog-api/internal/app/service"
	"github.com/snackhub/catalog-api/internal/domain"
	"github.com/snackhub/catalog-api/internal/infrastructure/config"
	"github.com/snackhub/catalog-api/internal/infrastructure/http"
	"github.com/snackhub/catalog-api/internal/infrastructure/http/handler"
	"github.com/snackhub/catalog-api/internal/infrastructure/repository/memory"
	"github.com/snackhub/catalog-api/internal/infrastructure/repository/postgres"
	"github.com/snackhub/catalog-api/internal/infrastructure/telemetry"
)

func main() {
	cfg := config.LoadConfig()

	var telem *telemetry.Telemetry
	if cfg.OTLP.Enabled {
		t, err := telemetry.NewTelemetry(&cfg.OTLP)
		if err != nil {
			log.Fatalf("Failed to initialize telemetry: %v", err)
		}
		telem = t
	} else {
		telem = telemetry.NewNoOpTelemetry(&cfg.OTLP)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := telem.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	tracer := telem.TracerProvider.Tracer("catalog-api")
	meter := telem.MeterProvider.Meter("catalog-api")
	logger := telem.Logger

	logger.Info("Starting Catalog API")

	var categoryRepo domain.CategoryRepository
	var productRepo domain.ProductRepository

	switch cfg.Database.Driver {
	case "postgres":
		db, err := postgres.NewDatabase(&cfg.Database, logger)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		categoryRepo = postgres.NewCategoryRepository(db)
		productRepo = postgres.NewProductRepository(db)
	default:
		memCategories := memory.NewCategoryRepository(tracer, logger)
		if err := memory.SeedCategories(ctx, memCategories); err != nil {
			log.Fatalf("Failed to seed categories: %v", err)
		}
		categoryRepo = memCategories
		productRepo = memory.NewProductRepository(tracer, logger)
	}

	categoryService := service.NewCategoryService(categoryRepo, tracer, meter, logger)
	productService := service.NewProductService(productRepo, categoryService, tracer, meter, logger)

	categoryHandler := handler.NewCategoryHandler(categoryService, logger)
	productHandler := handler.NewProductHandler(productService, logger)

	server := http.NewServer(cfg, categoryHandler, productHandler, telem)

	go func() {
		if err := server.Start(); err != nil {
			logger.Error("Server error", "error", err.Error())
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("Shutting down server...")
	case <-ctx.Done():
		logger.Info("Context cancelled, shutting down...")
	}

	logger.Info("Server stopped")
}
