package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/keystone1031/exchange-tools/internal/api/handlers"
	custommiddleware "github.com/keystone1031/exchange-tools/internal/api/middleware"
	"github.com/keystone1031/exchange-tools/internal/config"
	"github.com/keystone1031/exchange-tools/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(systemService *service.SystemService, calculatorService *service.CalculatorService, referenceService *service.ReferenceService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/calculators", func(r chi.Router) {
			calculatorHandler := handlers.NewCalculatorHandler(calculatorService)
			r.Post("/boot", calculatorHandler.EstimateBoot)
			r.Post("/costs", calculatorHandler.EstimateCosts)
			r.Post("/identification", calculatorHandler.ValidateIdentification)
			r.Post("/deadlines", calculatorHandler.ComputeDeadlines)
			r.Post("/timeline", calculatorHandler.BuildTimeline)
		})

		r.Route("/reference", func(r chi.Router) {
			referenceHandler := handlers.NewReferenceHandler(referenceService)
			r.Get("/services", referenceHandler.Services)
			r.Get("/services/{slug}", referenceHandler.ServiceBySlug)
			r.Get("/locations", referenceHandler.Locations)
			r.Get("/locations/{slug}", referenceHandler.LocationBySlug)
			r.Get("/property-types", referenceHandler.PropertyTypes)
			r.Get("/property-types/{slug}", referenceHandler.PropertyTypeBySlug)
			r.Get("/profiles", referenceHandler.Profiles)
			r.Get("/profiles/{slug}", referenceHandler.ProfileBySlug)
			r.Get("/articles", referenceHandler.Articles)
			r.Get("/articles/{slug}", referenceHandler.ArticleBySlug)
		})
	})

	return r
}
