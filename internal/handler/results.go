package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/riku-2004/video-voting-app-AI/internal/middleware"
	"github.com/riku-2004/video-voting-app-AI/internal/service"
)

type ResultsHandler struct {
	svc *service.ResultsService
}

func NewResultsHandler(svc *service.ResultsService) *ResultsHandler {
	return &ResultsHandler{svc: svc}
}

// Leaderboard handles GET /api/admin/results. The admin guard runs in the
// router; this recomputes (or serves the cached) per-video aggregate.
func (h *ResultsHandler) Leaderboard(c fiber.Ctx) error {
	start := time.Now()

	results, err := h.svc.Leaderboard(c.Context())
	if err != nil {
		return middleware.Fail(c, err, "Failed to compute results")
	}

	Metrics.LeaderboardDuration.Observe(time.Since(start).Seconds())
	return c.JSON(results)
}
