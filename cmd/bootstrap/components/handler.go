package components

import (
	"pro-stock-editor/internal/handler"
	"pro-stock-editor/internal/handler/api"
	"pro-stock-editor/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewStockEditionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
