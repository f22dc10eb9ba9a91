package components

import (
	"context"
	"log/slog"

	"pro-stock-editor/internal/infra/sessionstore"
	"pro-stock-editor/internal/pkg/clock"
	"pro-stock-editor/internal/pkg/config"
	"pro-stock-editor/internal/usecase/stockedit"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSessionStore,
		fx.Annotate(
			func(s sessionstore.Store) sessionstore.Store { return s },
			fx.As(new(stockedit.SessionStore)),
		),
		NewJanitor,
	),
	fx.Invoke(func(*sessionstore.Janitor) {}),
)

func NewSessionStore(cfg config.Config, pool *pgxpool.Pool, clk clock.Clock, logger *slog.Logger) sessionstore.Store {
	if cfg.Session.Store == config.SessionStorePostgres {
		logger.Info("edit sessions stored in postgres", "ttl", cfg.Session.TTL)
		return sessionstore.NewPostgresStore(pool, cfg.Session.TTL, clk)
	}
	logger.Info("edit sessions stored in memory", "ttl", cfg.Session.TTL)
	return sessionstore.NewMemoryStore(cfg.Session.TTL, clk)
}

func NewJanitor(lc fx.Lifecycle, store sessionstore.Store, locks *stockedit.Locks, cfg config.Config, logger *slog.Logger) *sessionstore.Janitor {
	j := sessionstore.NewJanitor(store, locks, cfg.Session.PurgeInterval, logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			j.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			j.Stop()
			return nil
		},
	})
	return j
}
