package api

import (
	"storefront/api/auth"
	"storefront/api/health"
	"storefront/api/middleware"
	"storefront/api/orders"
	"storefront/api/products"
	"storefront/api/storefront"
	"storefront/services"
	"storefront/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	storefrontRoutes *storefront.StorefrontRoutesManager
	authRoutes       *auth.AuthRoutesManager
	productRoutes    *products.ProductRoutesManager
	orderRoutes      *orders.OrderRoutesManager
	healthRoutes     *health.HealthRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	mw *middleware.Middleware,
	sm *services.ServiceManager,
) *routerManager {
	return &routerManager{
		storefrontRoutes: storefront.NewStorefrontRoutesManager(logger, cfg, sm.SessionService, sm.CatalogService, sm.OrderService, mw),
		authRoutes:       auth.NewAuthRoutesManager(logger, sm.SessionService, cfg, mw),
		productRoutes:    products.NewProductRoutesManager(logger, sm.CatalogService),
		orderRoutes:      orders.NewOrderRoutesManager(logger, sm.SessionService, sm.OrderService, mw),
		healthRoutes:     health.NewHealthRoutesManager(logger, sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.storefrontRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.productRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
