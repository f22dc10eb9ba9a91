package components

import (
	"pro-stock-editor/internal/pkg/clock"
	"pro-stock-editor/internal/pkg/config"
	"pro-stock-editor/internal/usecase"
	"pro-stock-editor/internal/usecase/stockedit"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseStockEditModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	stockedit.NewLocks,
	func(cfg config.Config, locks *stockedit.Locks) stockedit.Options {
		return stockedit.Options{PageSize: cfg.PCAPI.StocksPerPage, Locks: locks}
	},
)

var usecaseStockEditModule = fx.Module("usecase/stockedit",
	fx.Provide(
		stockedit.NewService,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
