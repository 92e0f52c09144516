package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"hotel-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// migrate applies the versioned SQL files under migrations/ with the atlas CLI.
//
//	go run ./cmd/migrate            apply pending migrations
//	go run ./cmd/migrate -status    show applied and pending versions
func main() {
	var (
		dir     = flag.String("dir", "file://migrations", "migration directory URL")
		binary  = flag.String("atlas", "atlas", "atlas executable")
		status  = flag.Bool("status", false, "print migration status instead of applying")
		timeout = flag.Duration("timeout", 2*time.Minute, "overall timeout")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, cfg.DB.BuildDSN(), *dir, *binary, *status); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dsn, dir, binary string, statusOnly bool) error {
	client, err := atlasexec.NewClient(".", binary)
	if err != nil {
		return fmt.Errorf("failed to create atlas client: %w", err)
	}

	if statusOnly {
		st, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
			URL:    dsn,
			DirURL: dir,
		})
		if err != nil {
			return fmt.Errorf("failed to read migration status: %w", err)
		}
		slog.Info("migration status",
			"status", st.Status,
			"current", st.Current,
			"next", st.Next,
			"pending", len(st.Pending))
		return nil
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dsn,
		DirURL: dir,
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	slog.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
	return nil
}
