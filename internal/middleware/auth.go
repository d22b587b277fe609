package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/riku-2004/video-voting-app-AI/internal/model"
	"github.com/riku-2004/video-voting-app-AI/internal/service"
)

const (
	localUserID   = "session_user_id"
	localUserName = "session_user_name"
	localRole     = "session_role"
)

// NewAuth returns a middleware that verifies the Bearer session token and
// stores the caller's identity on the request context. Requests without a
// valid token are rejected.
func NewAuth(auth *service.AuthService) fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authorization header is required")
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		session, err := auth.VerifyToken(tokenString)
		if err != nil {
			return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired session token")
		}

		c.Locals(localUserID, session.UserID)
		c.Locals(localUserName, session.Name)
		c.Locals(localRole, session.Role)
		return c.Next()
	}
}

// RequireAdmin rejects callers whose session does not carry the admin role.
// Must run after NewAuth.
func RequireAdmin() fiber.Handler {
	return func(c fiber.Ctx) error {
		if Role(c) != model.RoleAdmin {
			return ErrorResponse(c, fiber.StatusForbidden, "FORBIDDEN", "Administrator role required")
		}
		return c.Next()
	}
}

// UserID returns the authenticated caller's user id, or "" when the request
// carries no session.
func UserID(c fiber.Ctx) string {
	id, _ := c.Locals(localUserID).(string)
	return id
}

// Role returns the authenticated caller's role, or "".
func Role(c fiber.Ctx) string {
	role, _ := c.Locals(localRole).(string)
	return role
}
