package api

import (
	"net/http"
	"storefront/api/middleware"
	"storefront/api/views"
	"storefront/config"
	"storefront/services"
	"storefront/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
)

const maxBodyBytes = 1 << 20

func App(cfg *structs.Config, sm *services.ServiceManager) chi.Router {
	r := chi.NewRouter()

	// create loggers
	mwLogger := config.NewLogger(cfg, false)
	standardLogger := config.NewLogger(cfg, true)

	// Initialize middleware
	mw := middleware.NewMiddleware(cfg, mwLogger, sm.SessionService)

	// Core infra
	r.Use(chiware.RequestID)
	r.Use(chiware.RealIP)
	r.Use(chiware.Recoverer)

	// Limits & security
	r.Use(mw.BodyLimit(maxBodyBytes))
	r.Use(mw.SecurityHeaders())

	// Observability
	r.Use(mw.SetupLoggerMiddleware())
	r.Use(middleware.MetricsMiddleware)

	// CORS (must be before auth / csrf)
	r.Use(mw.SetupCORS().Handler)

	// Register all routes
	NewRouterManager(standardLogger, cfg, mw, sm).RegisterRoutes(r)

	r.Handle("/static/*", views.StaticHandler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		gecho.NotFound(w,
			gecho.Send(),
		)
	})

	return r
}
