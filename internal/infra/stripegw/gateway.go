// Package stripegw adapts the Stripe API to the payment gateway port. It is a
// thin translation layer; all orchestration lives in the usecase package.
package stripegw

import (
	"context"

	"aaai-platform/internal/pkg/errs"
	"aaai-platform/internal/usecase"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

const listPageSize = 100

type Gateway struct {
	api *client.API
}

func New(secretKey string) *Gateway {
	return &Gateway{api: client.New(secretKey, nil)}
}

func (g *Gateway) CreateCheckoutSession(ctx context.Context, in usecase.CheckoutSessionInput) (*usecase.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(in.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(in.SuccessURL),
		CancelURL:  stripe.String(in.CancelURL),
	}
	if in.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(in.CustomerEmail)
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe checkout session create failed")
	}
	return &usecase.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

func (g *Gateway) CreateProduct(ctx context.Context, name, description string, metadata map[string]string) (*usecase.Product, error) {
	params := &stripe.ProductParams{
		Params: stripe.Params{Context: ctx},
		Name:   stripe.String(name),
	}
	if description != "" {
		params.Description = stripe.String(description)
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	product, err := g.api.Products.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe product create failed")
	}
	return toProduct(product), nil
}

func (g *Gateway) CreatePrice(ctx context.Context, productID string, unitAmount int64, currency string) (*usecase.Price, error) {
	params := &stripe.PriceParams{
		Params:     stripe.Params{Context: ctx},
		Product:    stripe.String(productID),
		UnitAmount: stripe.Int64(unitAmount),
		Currency:   stripe.String(currency),
	}

	price, err := g.api.Prices.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe price create failed")
	}
	return toPrice(price), nil
}

func (g *Gateway) ListProducts(ctx context.Context) ([]usecase.Product, error) {
	params := &stripe.ProductListParams{
		ListParams: stripe.ListParams{Context: ctx, Limit: stripe.Int64(listPageSize)},
		Active:     stripe.Bool(true),
	}

	var out []usecase.Product
	iter := g.api.Products.List(params)
	for iter.Next() {
		out = append(out, *toProduct(iter.Product()))
	}
	if err := iter.Err(); err != nil {
		return nil, errs.Wrap(err, "stripe product list failed")
	}
	return out, nil
}

func (g *Gateway) ListPrices(ctx context.Context, productID string) ([]usecase.Price, error) {
	params := &stripe.PriceListParams{
		ListParams: stripe.ListParams{Context: ctx, Limit: stripe.Int64(listPageSize)},
		Active:     stripe.Bool(true),
	}
	if productID != "" {
		params.Product = stripe.String(productID)
	}

	var out []usecase.Price
	iter := g.api.Prices.List(params)
	for iter.Next() {
		out = append(out, *toPrice(iter.Price()))
	}
	if err := iter.Err(); err != nil {
		return nil, errs.Wrap(err, "stripe price list failed")
	}
	return out, nil
}

func toProduct(p *stripe.Product) *usecase.Product {
	return &usecase.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Metadata:    p.Metadata,
	}
}

func toPrice(p *stripe.Price) *usecase.Price {
	price := &usecase.Price{
		ID:         p.ID,
		UnitAmount: p.UnitAmount,
		Currency:   string(p.Currency),
	}
	if p.Product != nil {
		price.ProductID = p.Product.ID
	}
	return price
}
