// Command seed loads development fixtures: a few users following each
// other, each with a couple of microposts. Emails get a random suffix so
// the command can run repeatedly against the same database.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/microblog/internal/common"
	"github.com/dmitrijs2005/microblog/internal/config"
	"github.com/dmitrijs2005/microblog/internal/dbx"
	"github.com/dmitrijs2005/microblog/internal/logging"
	"github.com/dmitrijs2005/microblog/internal/models"
	"github.com/dmitrijs2005/microblog/internal/repositories/repomanager"
	"github.com/dmitrijs2005/microblog/internal/services"
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

	rm := repomanager.NewPostgresRepositoryManager()

	if err := rm.RunMigrations(ctx, db); err != nil {
		logger.Error(ctx, "migration error", "error", err.Error())
		os.Exit(1)
	}

	userService := services.NewUserService(db, rm, cfg)

	names := []string{"Alice", "Bob", "Carol"}
	seeded := make([]*models.User, 0, len(names))

	for _, name := range names {
		email := fmt.Sprintf("%s-%s@example.com", strings.ToLower(name), uuid.NewString()[:8])
		user, err := userService.Register(ctx, models.RegisterParams{
			Name:     name,
			Email:    email,
			Password: "password",
		})
		if err != nil {
			logger.Error(ctx, "seed user error", "name", name, "error", err.Error())
			os.Exit(1)
		}
		seeded = append(seeded, user)
		logger.Info(ctx, "seeded user", "id", user.ID, "email", user.Email)
	}

	// Edges and posts land together or not at all.
	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		rels := rm.Relationships(tx)
		posts := rm.Microposts(tx)

		for i, u := range seeded {
			for j, v := range seeded {
				if i == j {
					continue
				}
				if err := rels.Create(ctx, u.ID, v.ID); err != nil && !errors.Is(err, common.ErrorDuplicate) {
					return err
				}
			}
			for n := 1; n <= 2; n++ {
				post := &models.Micropost{UserID: u.ID, Content: fmt.Sprintf("%s's post #%d", u.Name, n)}
				if _, err := posts.Create(ctx, post); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx, "seed error", "error", err.Error())
		os.Exit(1)
	}

	logger.Info(ctx, "seed complete", "users", len(seeded))
}
