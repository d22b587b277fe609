package main

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/riku-2004/video-voting-app-AI/internal/config"
	"github.com/riku-2004/video-voting-app-AI/internal/db"
	"github.com/riku-2004/video-voting-app-AI/internal/handler"
	"github.com/riku-2004/video-voting-app-AI/internal/middleware"
	"github.com/riku-2004/video-voting-app-AI/internal/repository"
	"github.com/riku-2004/video-voting-app-AI/internal/router"
	"github.com/riku-2004/video-voting-app-AI/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	middleware.InitLogger(cfg.LogLevel, "voting-api")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	handler.InitMetrics(pool)

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()
	cache.OnHit = func() { handler.Metrics.CacheHits.Inc() }
	cache.OnMiss = func() { handler.Metrics.CacheMisses.Inc() }

	userRepo := repository.NewUserRepo(pool)
	videoRepo := repository.NewVideoRepo(pool)
	voteRepo := repository.NewVoteRepo(pool)
	commentRepo := repository.NewCommentRepo(pool)

	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	userSvc := service.NewUserService(userRepo)
	videoSvc := service.NewVideoService(videoRepo, userRepo, cache)
	voteSvc := service.NewVoteService(voteRepo, videoRepo, cache)
	commentSvc := service.NewCommentService(commentRepo, cache)
	resultsSvc := service.NewResultsService(voteRepo, commentRepo, videoRepo, userRepo, cache, cfg.IncludeDraftVotes)

	h := &router.Handlers{
		Auth:    handler.NewAuthHandler(authSvc, userSvc),
		Video:   handler.NewVideoHandler(videoSvc),
		Vote:    handler.NewVoteHandler(voteSvc),
		Comment: handler.NewCommentHandler(commentSvc),
		Results: handler.NewResultsHandler(resultsSvc),
		User:    handler.NewUserHandler(userSvc),
		Health:  handler.NewHealthHandler(pool, cache.Client()),
	}

	app := fiber.New(fiber.Config{
		AppName:      "Voting API",
		ServerHeader: "Voting",
	})

	router.Setup(app, h, middleware.NewAuth(authSvc), cfg.CORSOrigins)

	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Environment).
		Bool("include_draft_votes", cfg.IncludeDraftVotes).
		Msg("voting backend starting")

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
