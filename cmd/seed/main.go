// Seeds the initial administrator account ("Admin"/"admin") if absent.
package main

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/riku-2004/video-voting-app-AI/internal/config"
	"github.com/riku-2004/video-voting-app-AI/internal/db"
	"github.com/riku-2004/video-voting-app-AI/internal/middleware"
	"github.com/riku-2004/video-voting-app-AI/internal/model"
	"github.com/riku-2004/video-voting-app-AI/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	middleware.InitLogger(cfg.LogLevel, "voting-seed")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	users := repository.NewUserRepo(pool)

	_, err = users.FindByName(ctx, "Admin")
	if err == nil {
		log.Info().Msg("admin already exists, skipping seed")
		return
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		log.Fatal().Err(err).Msg("failed to look up admin")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	admin, err := users.Create(ctx, "Admin", string(hash), model.RoleAdmin)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create admin")
	}

	log.Info().Str("user_id", admin.ID).Msg("created admin user (password: admin)")
}
