package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/riku-2004/video-voting-app-AI/internal/middleware"
	"github.com/riku-2004/video-voting-app-AI/internal/model"
	"github.com/riku-2004/video-voting-app-AI/internal/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Create handles POST /api/admin/users
func (h *UserHandler) Create(c fiber.Ctx) error {
	var req model.CreateUserRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	resp, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return middleware.Fail(c, err, "Failed to create user")
	}

	return c.JSON(resp)
}

// Delete handles DELETE /api/admin/users?userId=
func (h *UserHandler) Delete(c fiber.Ctx) error {
	userID := c.Query("userId")

	if err := h.svc.Delete(c.Context(), middleware.UserID(c), userID); err != nil {
		return middleware.Fail(c, err, "Failed to delete user")
	}

	return c.JSON(fiber.Map{"success": true})
}
