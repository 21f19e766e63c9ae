package bootstrap

import (
	"aaai-platform/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StoreModule,
	StripeModule,
	components.UseCaseModule,
	components.HandlerModule,
)
