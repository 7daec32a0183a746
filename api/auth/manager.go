package auth

import (
	"storefront/api/middleware"
	"storefront/services"
	"storefront/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger         *gecho.Logger
	sessionService *services.SessionService
	cfg            *structs.Config
	mw             *middleware.Middleware
}

func NewAuthRoutesManager(
	logger *gecho.Logger,
	sessionService *services.SessionService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:         logger,
		sessionService: sessionService,
		cfg:            cfg,
		mw:             mw,
	}
}

func (ar *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/login", ar.ShowLogin)

	r.Group(func(r chi.Router) {
		r.Use(ar.mw.CSRFMiddleware())
		r.Post("/login", ar.HandleLogin)
		r.Post("/logout", ar.HandleLogout)
	})

	r.Route("/auth", func(r chi.Router) {
		// CSRF token endpoint for scripted clients
		r.Get("/csrf", ar.HandleCSRF)

		r.Group(func(r chi.Router) {
			r.Use(ar.mw.APIAuthMiddleware)
			r.Get("/me", ar.HandleMe)
		})
	})
}
