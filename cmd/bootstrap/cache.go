package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"pro-stock-editor/internal/pkg/config"
	"pro-stock-editor/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis returns a nil Cmdable when the cache is disabled; the offer cache
// then reads through to the upstream API.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (redis.Cmdable, error) {
	if !cfg.Redis.Enabled {
		logger.Info("offer cache disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to ping redis")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	logger.Info("offer cache connected", "addr", cfg.Redis.Addr)
	return client, nil
}
