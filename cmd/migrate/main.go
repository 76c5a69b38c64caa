// Command migrate applies the embedded goose migrations to the configured
// PostgreSQL database.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/microblog/internal/config"
	"github.com/dmitrijs2005/microblog/internal/logging"
	"github.com/dmitrijs2005/microblog/internal/repositories/repomanager"
)

func main() {

	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.LoadConfig()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "db open error", "error", err.Error())
		os.Exit(1)
	}
	defer db.Close()

	m := repomanager.NewPostgresRepositoryManager()

	if err := m.RunMigrations(ctx, db); err != nil {
		logger.Error(ctx, "migration error", "error", err.Error())
		os.Exit(1)
	}

	logger.Info(ctx, "migrations applied")
}
