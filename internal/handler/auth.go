package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/riku-2004/video-voting-app-AI/internal/middleware"
	"github.com/riku-2004/video-voting-app-AI/internal/model"
	"github.com/riku-2004/video-voting-app-AI/internal/service"
)

type AuthHandler struct {
	auth  *service.AuthService
	users *service.UserService
}

func NewAuthHandler(auth *service.AuthService, users *service.UserService) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	resp, err := h.auth.Login(c.Context(), req.UserID, req.Password)
	if err != nil {
		return middleware.Fail(c, err, "Failed to log in")
	}

	return c.JSON(resp)
}

// ListUsers handles GET /api/auth/login — the login dropdown source.
func (h *AuthHandler) ListUsers(c fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return middleware.Fail(c, err, "Failed to list users")
	}
	return c.JSON(users)
}

// ChangePassword handles POST /api/auth/password
func (h *AuthHandler) ChangePassword(c fiber.Ctx) error {
	var req model.ChangePasswordRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	err := h.auth.ChangePassword(c.Context(), middleware.UserID(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		return middleware.Fail(c, err, "Failed to change password")
	}

	return c.JSON(fiber.Map{"success": true})
}

// ResetPassword handles POST /api/admin/users/password
func (h *AuthHandler) ResetPassword(c fiber.Ctx) error {
	var req model.ResetPasswordRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	if err := h.auth.ResetPassword(c.Context(), req.UserID, req.NewPassword); err != nil {
		return middleware.Fail(c, err, "Failed to reset password")
	}

	return c.JSON(fiber.Map{"success": true})
}
