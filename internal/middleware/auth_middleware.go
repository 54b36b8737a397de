package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"chefbook/internal/services"
)

// TokenRequired is a Fiber middleware that resolves the Authorization
// header to an active session before the handler runs. The header value
// may or may not carry a "Bearer " prefix; both forms resolve to the
// same session lookup. A missing header or an unknown token
// short-circuits with 401 before any persistence call.
//
// The authenticated chef is stored in c.Locals("chef").
func TokenRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("Authorization")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		token = strings.TrimPrefix(token, "Bearer ")

		chef, err := authService.ChefFromToken(token)
		if err != nil {
			log.Printf("Error resolving session token: %v", err)
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}
		if chef == nil {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		c.Locals("chef", *chef)
		return c.Next()
	}
}
