package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/snackhub/catalog-api/internal/infrastructure/config"
	"github.com/snackhub/catalog-api/internal/infrastructure/http/handler"
	"github.com/snackhub/catalog-api/internal/infrastructure/http/middleware"
	"github.com/snackhub/catalog-api/internal/infrastructure/telemetry"
)

// Server represents the HTTP server
type Server struct {
	router     *chi.Mux
	config     *config.Config
	categories *handler.CategoryHandler
	products   *handler.ProductHandler
	logger     *slog.Logger
	telemetry  *telemetry.Telemetry
}

// NewServer creates a new HTTP server
func NewServer(
	cfg *config.Config,
	categories *handler.CategoryHandler,
	products *handler.ProductHandler,
	telem *telemetry.Telemetry,
) *Server {
	s := &Server{
		router:     chi.NewRouter(),
		config:     cfg,
		categories: categories,
		products:   products,
		logger:     telem.Logger,
		telemetry:  telem,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.StructuredLogger(s.logger))
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(middleware.HTTPRouteContext())

	meter := s.telemetry.MeterProvider.Meter("catalog-api")
	s.router.Use(middleware.ActiveRequests(meter))
}

// setupRoutes configures the API routes. Reads are open; product
// mutations require the employees role.
func (s *Server) setupRoutes() {
	s.router.Get("/categories", s.categories.List)

	s.router.Route("/products", func(r chi.Router) {
		r.Get("/", s.products.List)
		r.Get("/{id}", s.products.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(s.config.Auth.JWTSecret, middleware.RoleEmployees))
			r.Post("/", s.products.Create)
			r.Put("/{id}", s.products.Update)
			r.Delete("/{id}", s.products.Delete)
		})
	})

	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Prometheus metrics endpoint - exposes OpenTelemetry metrics
	s.router.Get("/metrics", promhttp.Handler().ServeHTTP)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.Server.Host, s.config.Server.Port)
	s.logger.Info("Starting HTTP server",
		slog.String("address", addr),
	)

	// Wrap the whole router with otelhttp for server-side traces and
	// the standard http.server.* metrics.
	handler := otelhttp.NewHandler(s.router, "http-server",
		otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
			return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
		}),
		otelhttp.WithMeterProvider(s.telemetry.MeterProvider),
		otelhttp.WithMetricAttributesFn(func(r *http.Request) []attribute.KeyValue {
			routePattern := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					routePattern = pattern
				}
			}
			return []attribute.KeyValue{
				attribute.String("http.route", routePattern),
			}
		}),
	)

	return http.ListenAndServe(addr, handler)
}
