package response

import (
	"aaai-platform/internal/usecase"
	"aaai-platform/internal/usecase/queries"
)

type CheckoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
}

type PublishableKeyResponse struct {
	PublishableKey string `json:"publishableKey"`
}

type PriceResponse struct {
	ID         string `json:"id"`
	UnitAmount int64  `json:"unitAmount"`
	Currency   string `json:"currency"`
}

type ProductResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata"`
	Prices      []PriceResponse   `json:"prices"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

func FromProducts(items []queries.ProductWithPrices) *ProductListResponse {
	products := make([]ProductResponse, len(items))
	for i, it := range items {
		products[i] = ProductResponse{
			ID:          it.Product.ID,
			Name:        it.Product.Name,
			Description: it.Product.Description,
			Metadata:    it.Product.Metadata,
			Prices:      fromPrices(it.Prices),
		}
	}
	return &ProductListResponse{Products: products}
}

func fromPrices(prices []usecase.Price) []PriceResponse {
	res := make([]PriceResponse, len(prices))
	for i, p := range prices {
		res[i] = PriceResponse{ID: p.ID, UnitAmount: p.UnitAmount, Currency: p.Currency}
	}
	return res
}
