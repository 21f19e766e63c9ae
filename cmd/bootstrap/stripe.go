package bootstrap

import (
	"aaai-platform/internal/infra/stripegw"
	"aaai-platform/internal/pkg/config"
	"aaai-platform/internal/usecase"

	"go.uber.org/fx"
)

var StripeModule = fx.Module("stripe",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(usecase.PaymentGateway)),
		),
	),
)

func NewPaymentGateway(cfg config.Config) *stripegw.Gateway {
	return stripegw.New(cfg.Stripe.SecretKey)
}
