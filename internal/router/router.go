package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/riku-2004/video-voting-app-AI/internal/handler"
	"github.com/riku-2004/video-voting-app-AI/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Auth    *handler.AuthHandler
	Video   *handler.VideoHandler
	Vote    *handler.VoteHandler
	Comment *handler.CommentHandler
	Results *handler.ResultsHandler
	User    *handler.UserHandler
	Health  *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given
// Fiber app. auth is attached per route rather than on the /api group:
// group middleware mounts on the path prefix and would otherwise also guard
// the login endpoint.
func Setup(app *fiber.App, h *Handlers, auth fiber.Handler, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Probes and metrics (no auth)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	api := app.Group("/api")

	// Login is the only unauthenticated API surface
	loginLimit := middleware.NewLoginRateLimiter()
	api.Post("/auth/login", h.Auth.Login, loginLimit.Handler())
	api.Get("/auth/login", h.Auth.ListUsers)

	api.Post("/auth/password", h.Auth.ChangePassword, auth)

	// Participant-facing voting surface
	api.Get("/videos", h.Video.ListEligible, auth)

	saveLimit := middleware.NewRankingSaveRateLimiter()
	api.Get("/vote", h.Vote.CurrentRanking, auth)
	api.Post("/vote", h.Vote.SaveRanking, auth, saveLimit.Handler())
	api.Get("/vote/submit", h.Vote.Status, auth)
	api.Post("/vote/submit", h.Vote.Submit, auth)

	api.Get("/comments", h.Comment.Get, auth)
	api.Post("/comments", h.Comment.Save, auth)

	// Admin surface: the /admin prefix has no public routes, so group
	// middleware is safe here.
	admin := api.Group("/admin", auth, middleware.RequireAdmin())

	resultsLimit := middleware.NewResultsRateLimiter()
	admin.Get("/results", h.Results.Leaderboard, resultsLimit.Handler())

	admin.Get("/videos", h.Video.AdminView)
	admin.Post("/videos", h.Video.Create)

	admin.Post("/users", h.User.Create)
	admin.Delete("/users", h.User.Delete)
	admin.Post("/users/password", h.Auth.ResetPassword)
}
