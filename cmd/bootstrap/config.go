package bootstrap

import (
	"fmt"
	"log/slog"
	"os"

	"pro-stock-editor/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
	),
)

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig() (config.Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env", "error", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	switch cfg.Session.Store {
	case config.SessionStoreMemory, config.SessionStorePostgres:
	default:
		return config.Config{}, fmt.Errorf("unknown SESSION_STORE %q", cfg.Session.Store)
	}
	return cfg, nil
}
