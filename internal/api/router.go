package api

import (
	"net/http"

	"github.com/dom/teyvat-archive/internal/api/handlers"
	"github.com/dom/teyvat-archive/internal/api/middleware"
	"github.com/dom/teyvat-archive/internal/config"
	"github.com/dom/teyvat-archive/internal/metrics"
	"github.com/dom/teyvat-archive/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func NewRouter(services *service.Services, m *metrics.Manager, cfg *config.Config, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware. Metrics sits outside Recoverer so panics are counted as 500s.
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	if cfg.MetricsEnabled {
		r.Use(middleware.Metrics(m))
	}
	r.Use(middleware.Recoverer(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	if cfg.MetricsEnabled {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	// Initialize handlers
	characterHandler := handlers.NewCharacterHandler(services.Catalog, logger)
	artifactHandler := handlers.NewArtifactHandler(services.Catalog, logger)
	domainHandler := handlers.NewFarmingDomainHandler(services.Catalog, logger)
	teamHandler := handlers.NewTeamHandler(services.Team, services.TeamBuilder, logger)
	teamBuilderHandler := handlers.NewTeamBuilderHandler(services.TeamBuilder, logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/characters", func(r chi.Router) {
			r.Get("/", characterHandler.GetAll)
			r.Get("/{id}", characterHandler.Get)
		})

		r.Get("/artifacts", artifactHandler.GetAll)
		r.Get("/domains", domainHandler.GetAll)
		r.Get("/reactions", teamBuilderHandler.Reactions)

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", teamHandler.GetAll)
			r.Post("/", teamHandler.Create)
			r.Delete("/{id}", teamHandler.Delete)
			r.Get("/{id}/analysis", teamHandler.Analysis)
		})

		r.Post("/team-builder/analyze", teamBuilderHandler.Analyze)
	})

	return r
}
