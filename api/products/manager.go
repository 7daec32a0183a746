package products

import (
	"storefront/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
}

func NewProductRoutesManager(logger *gecho.Logger, catalogService *services.CatalogService) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		catalogService: catalogService,
	}
}

func (p *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", p.FetchAllProducts)
		r.Get("/{id}", p.FetchProductByID)
	})
}
