package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/riku-2004/video-voting-app-AI/internal/apperr"
)

// ErrorResponse returns a standard API error envelope.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// Fail maps a service error to the API error envelope. Sentinel errors from
// apperr carry their own status; anything else is an internal error and the
// caller's message is used instead of the raw error text.
func Fail(c fiber.Ctx, err error, internalMessage string) error {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, apperr.ErrUnauthorized):
		return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		return ErrorResponse(c, fiber.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		return ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case apperr.IsConflict(err):
		return ErrorResponse(c, fiber.StatusConflict, "CONFLICT", err.Error())
	default:
		return ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", internalMessage)
	}
}
