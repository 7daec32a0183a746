package structs

type LineItem struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

// OrderRequest is the body of POST /orders. Built fresh for every buy action.
type OrderRequest struct {
	Items  []LineItem `json:"items" validate:"required,min=1,dive"`
	UserID string     `json:"userId"`
}

// OrderResult is the success body of POST /orders.
type OrderResult struct {
	OrderID string `json:"OrderId"`
	Message string `json:"message,omitempty"`
}

type BuyRequest struct {
	ProductID string `json:"productId" validate:"required"`
}
