package products

import (
	"errors"
	"net/http"
	"storefront/lib"
	"storefront/structs"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// FetchAllProducts handles GET /api/products
func (p *ProductRoutesManager) FetchAllProducts(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	products, err := p.catalogService.ListProducts(r.Context())
	if err != nil {
		p.logger.Error("Failed to fetch products", gecho.Field("error", err))
		gecho.ServiceUnavailable(w,
			gecho.WithMessage("error.products.failedToFetch"),
			gecho.Send(),
		)
		return
	}

	if products == nil {
		products = []structs.Product{}
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": products,
			"meta": map[string]any{
				"query_time_ms": time.Since(startTime).Milliseconds(),
				"count":         len(products),
			},
		}),
		gecho.Send(),
	)
}

// FetchProductByID handles GET /api/products/{id}
func (p *ProductRoutesManager) FetchProductByID(w http.ResponseWriter, r *http.Request) {
	req := structs.ProductLookupRequest{ProductID: chi.URLParam(r, "id")}
	if err := lib.Validate(&req); err != nil {
		p.logger.Warn("Invalid product id", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidProductId"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	product, err := p.catalogService.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.Send(),
			)
			return
		}

		p.logger.Error("Failed to fetch product by ID", gecho.Field("id", req.ProductID), gecho.Field("error", err))
		gecho.ServiceUnavailable(w,
			gecho.WithMessage("error.products.failedToFetchOne"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product": product,
		}),
		gecho.Send(),
	)
}
