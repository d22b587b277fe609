package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/riku-2004/video-voting-app-AI/internal/middleware"
	"github.com/riku-2004/video-voting-app-AI/internal/model"
	"github.com/riku-2004/video-voting-app-AI/internal/service"
)

type VideoHandler struct {
	svc *service.VideoService
}

func NewVideoHandler(svc *service.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// ListEligible handles GET /api/videos — the videos the caller may rank.
// Admins acting as voters get the same excluded view as everyone else.
func (h *VideoHandler) ListEligible(c fiber.Ctx) error {
	videos, err := h.svc.EligibleVideos(c.Context(), middleware.UserID(c))
	if err != nil {
		return middleware.Fail(c, err, "Failed to list videos")
	}
	return c.JSON(videos)
}

// AdminView handles GET /api/admin/videos — full catalog with cast links.
func (h *VideoHandler) AdminView(c fiber.Ctx) error {
	view, err := h.svc.AdminView(c.Context())
	if err != nil {
		return middleware.Fail(c, err, "Failed to load video management view")
	}
	return c.JSON(view)
}

// Create handles POST /api/admin/videos
func (h *VideoHandler) Create(c fiber.Ctx) error {
	var req model.CreateVideoRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	video, err := h.svc.CreateVideo(c.Context(), req)
	if err != nil {
		return middleware.Fail(c, err, "Failed to create video")
	}

	return c.JSON(video)
}
