package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mrsetia1/flowmint/internal/application/dto"
	"github.com/mrsetia1/flowmint/pkg/token"
)

// Locals keys for the identity attached by AuthMiddleware.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware validates the Bearer token and attaches the decoded
// identity to the request locals. This is the single point where
// unauthenticated traffic is filtered; downstream handlers trust the
// locals and never re-verify the token.
//
// Missing header: 401. Present but malformed, tampered or expired: 403.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "No token provided"})
		}
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Invalid token"})
		}
		id, err := token.Parse(jwtSecret, parts[1])
		if err != nil {
			// ErrExpired and ErrMalformed collapse to the same response.
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Invalid token"})
		}
		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalRole, id.Role)
		return c.Next()
	}
}

// UserID returns the authenticated user's ID from the request locals
// (empty before AuthMiddleware has run).
func UserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// Role returns the authenticated user's role from the request locals.
func Role(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
