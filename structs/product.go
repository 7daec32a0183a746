package structs

import "github.com/shopspring/decimal"

func init() {
	// prices go out as JSON numbers, the way the catalog API sends them
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is one catalog entry as served by GET /products.
type Product struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

type ProductLookupRequest struct {
	ProductID string `json:"productId" validate:"required,max=128"`
}
