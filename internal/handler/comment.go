package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/riku-2004/video-voting-app-AI/internal/middleware"
	"github.com/riku-2004/video-voting-app-AI/internal/model"
	"github.com/riku-2004/video-voting-app-AI/internal/service"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// Get handles GET /api/comments?videoId= — empty body when no comment exists.
func (h *CommentHandler) Get(c fiber.Ctx) error {
	videoID := c.Query("videoId")

	body, err := h.svc.Get(c.Context(), videoID, middleware.UserID(c))
	if err != nil {
		return middleware.Fail(c, err, "Failed to load comment")
	}

	return c.JSON(model.CommentResponse{Body: body})
}

// Save handles POST /api/comments — upsert keyed on (videoId, caller).
func (h *CommentHandler) Save(c fiber.Ctx) error {
	var req model.SaveCommentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	if err := h.svc.Save(c.Context(), req.VideoID, middleware.UserID(c), req.Comment); err != nil {
		return middleware.Fail(c, err, "Failed to save comment")
	}

	return c.JSON(fiber.Map{"success": true})
}
