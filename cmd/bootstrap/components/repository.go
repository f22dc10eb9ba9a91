package components

import (
	"log/slog"

	"pro-stock-editor/internal/infra/offercache"
	"pro-stock-editor/internal/infra/pcapi"
	"pro-stock-editor/internal/pkg/config"
	"pro-stock-editor/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// RepositoryModule wires the upstream pass Culture API behind the usecase ports.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewPCAPIClient,
		fx.Annotate(
			func(c *pcapi.Client) *pcapi.Client { return c },
			fx.As(new(shared.StockGateway)),
			fx.As(new(shared.OfferSource)),
		),
		fx.Annotate(
			NewOfferCache,
			fx.As(new(shared.OfferSummaries)),
		),
	),
)

func NewPCAPIClient(cfg config.Config, logger *slog.Logger) (*pcapi.Client, error) {
	return pcapi.NewClient(cfg.PCAPI.BaseURL, cfg.PCAPI.Timeout, logger)
}

func NewOfferCache(source shared.OfferSource, rdb redis.Cmdable, cfg config.Config, logger *slog.Logger) *offercache.Cache {
	return offercache.New(source, rdb, cfg.Redis.OfferCacheTTL, logger)
}
