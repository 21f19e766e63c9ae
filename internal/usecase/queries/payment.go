package queries

import (
	"context"

	"aaai-platform/internal/usecase"
)

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/queries/payment_mock.go -package=queriesmock

// ProductWithPrices joins a processor product with its active prices for the
// storefront product listing.
type ProductWithPrices struct {
	Product usecase.Product
	Prices  []usecase.Price
}

type PaymentQueries interface {
	ProductsWithPrices(ctx context.Context) ([]ProductWithPrices, error)
}

type paymentQueriesImpl struct {
	gateway usecase.PaymentGateway
}

func NewPaymentQueries(gateway usecase.PaymentGateway) PaymentQueries {
	return &paymentQueriesImpl{gateway: gateway}
}

func (q *paymentQueriesImpl) ProductsWithPrices(ctx context.Context) ([]ProductWithPrices, error) {
	products, err := q.gateway.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	prices, err := q.gateway.ListPrices(ctx, "")
	if err != nil {
		return nil, err
	}

	byProduct := make(map[string][]usecase.Price, len(products))
	for _, p := range prices {
		byProduct[p.ProductID] = append(byProduct[p.ProductID], p)
	}

	out := make([]ProductWithPrices, 0, len(products))
	for _, p := range products {
		out = append(out, ProductWithPrices{Product: p, Prices: byProduct[p.ID]})
	}
	return out, nil
}
