package storefront

import (
	"storefront/api/middleware"
	"storefront/services"
	"storefront/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type StorefrontRoutesManager struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	sessionService *services.SessionService
	catalogService *services.CatalogService
	orderService   *services.OrderService
	mw             *middleware.Middleware
}

func NewStorefrontRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	sessionService *services.SessionService,
	catalogService *services.CatalogService,
	orderService *services.OrderService,
	mw *middleware.Middleware,
) *StorefrontRoutesManager {
	return &StorefrontRoutesManager{
		logger:         logger,
		cfg:            cfg,
		sessionService: sessionService,
		catalogService: catalogService,
		orderService:   orderService,
		mw:             mw,
	}
}

func (srm *StorefrontRoutesManager) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(srm.mw.PageAuthMiddleware)
		r.Get("/", srm.ShowStorefront)
	})

	r.Group(func(r chi.Router) {
		r.Use(srm.mw.CSRFMiddleware())
		r.Post("/buy/{productId}", srm.HandleBuy)
	})
}
