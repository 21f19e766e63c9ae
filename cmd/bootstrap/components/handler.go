package components

import (
	"aaai-platform/internal/handler"
	"aaai-platform/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewPaymentHandler,
	),
	fx.Invoke(handler.NewRouter),
)
