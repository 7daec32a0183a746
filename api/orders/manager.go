package orders

import (
	"storefront/api/middleware"
	"storefront/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger         *gecho.Logger
	sessionService *services.SessionService
	orderService   *services.OrderService
	mw             *middleware.Middleware
}

func NewOrderRoutesManager(
	logger *gecho.Logger,
	sessionService *services.SessionService,
	orderService *services.OrderService,
	mw *middleware.Middleware,
) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:         logger,
		sessionService: sessionService,
		orderService:   orderService,
		mw:             mw,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(orm.mw.CSRFMiddleware())
		r.Post("/", orm.CreateOrder)
	})
}
