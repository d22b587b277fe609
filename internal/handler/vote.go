package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/riku-2004/video-voting-app-AI/internal/middleware"
	"github.com/riku-2004/video-voting-app-AI/internal/model"
	"github.com/riku-2004/video-voting-app-AI/internal/service"
)

type VoteHandler struct {
	svc *service.VoteService
}

func NewVoteHandler(svc *service.VoteService) *VoteHandler {
	return &VoteHandler{svc: svc}
}

// CurrentRanking handles GET /api/vote — the caller's saved ranking, empty
// array if none.
func (h *VoteHandler) CurrentRanking(c fiber.Ctx) error {
	items, err := h.svc.CurrentRanking(c.Context(), middleware.UserID(c))
	if err != nil {
		return middleware.Fail(c, err, "Failed to load ranking")
	}
	return c.JSON(items)
}

// SaveRanking handles POST /api/vote
func (h *VoteHandler) SaveRanking(c fiber.Ctx) error {
	var req model.SaveRankingRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	if err := h.svc.SaveRanking(c.Context(), middleware.UserID(c), req.VideoIDs); err != nil {
		return middleware.Fail(c, err, "Failed to save ranking")
	}

	Metrics.RankingsSaved.Inc()
	return c.JSON(fiber.Map{"success": true})
}

// Submit handles POST /api/vote/submit
func (h *VoteHandler) Submit(c fiber.Ctx) error {
	if err := h.svc.Submit(c.Context(), middleware.UserID(c)); err != nil {
		return middleware.Fail(c, err, "Failed to submit vote")
	}

	Metrics.Submissions.Inc()
	return c.JSON(fiber.Map{"success": true})
}

// Status handles GET /api/vote/submit — {hasVote, isSubmitted}.
func (h *VoteHandler) Status(c fiber.Ctx) error {
	status, err := h.svc.Status(c.Context(), middleware.UserID(c))
	if err != nil {
		return middleware.Fail(c, err, "Failed to load submission status")
	}
	return c.JSON(status)
}
