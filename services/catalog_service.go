package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"storefront/lib"
	"storefront/structs"
	"time"

	"github.com/MonkyMars/gecho"
)

type CatalogService struct {
	logger *gecho.Logger
	api    *APIClient
}

func NewCatalogService(logger *gecho.Logger, api *APIClient) *CatalogService {
	return &CatalogService{
		logger: logger,
		api:    api,
	}
}

// ListProducts issues a single GET /products. No paging, no caching.
func (cs *CatalogService) ListProducts(ctx context.Context) ([]structs.Product, error) {
	startTime := time.Now()

	var products []structs.Product
	if err := cs.api.Do(ctx, http.MethodGet, "/products", nil, nil, &products); err != nil {
		CatalogFetches.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	CatalogFetches.WithLabelValues("succeeded").Inc()
	cs.logger.Debug("Products fetched successfully",
		gecho.Field("count", len(products)),
		gecho.Field("duration", time.Since(startTime)),
	)

	return products, nil
}

// GetProduct fetches one product by id
func (cs *CatalogService) GetProduct(ctx context.Context, productID string) (*structs.Product, error) {
	var product structs.Product
	err := cs.api.Do(ctx, http.MethodGet, "/products/"+url.PathEscape(productID), nil, nil, &product)
	if err != nil {
		if lib.IsNotFound(err) {
			return nil, lib.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch product %s: %w", productID, err)
	}

	if product.ProductID == "" {
		return nil, fmt.Errorf("%w: product without productId", lib.ErrMalformedResponse)
	}

	return &product, nil
}
