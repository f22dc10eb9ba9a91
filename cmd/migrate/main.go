package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"pro-stock-editor/cmd/bootstrap"
	"pro-stock-editor/internal/handler/middleware"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	bin := flag.String("atlas", "atlas", "path of the atlas binary")
	status := flag.Bool("status", false, "print the migration status and exit")
	flag.Parse()

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	client, err := atlasexec.NewClient(".", *bin)
	if err != nil {
		logger.Error("failed to create atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dirURL := "file://" + *dir
	if *status {
		st, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
			URL:    cfg.DB.BuildDSN(),
			DirURL: dirURL,
		})
		if err != nil {
			logger.Error("failed to read migration status", "error", err)
			os.Exit(1)
		}
		logger.Info("migration status", "status", st.Status, "current", st.Current, "next", st.Next, "pending", len(st.Pending))
		return
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: dirURL,
	})
	if err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("migrations applied", "applied", len(res.Applied), "current", res.Current, "target", res.Target)
}
