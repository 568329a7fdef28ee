package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mrsetia1/flowmint/internal/application/dto"
)

// RequireRole gates an endpoint on the roles carried by the verified token.
// Must run after AuthMiddleware. With an empty allow-list any authenticated
// role passes, which is the default policy for mutating content endpoints.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := Role(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Missing role"})
		}
		if len(allowed) == 0 {
			return c.Next()
		}
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Insufficient role"})
	}
}
