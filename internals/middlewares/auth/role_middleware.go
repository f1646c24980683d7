package auth

import (
	"github.com/gofiber/fiber/v2"

	"anpl_backend/internals/constants"
)

// AdminOnly gates a route group to ADMIN users. Must run after AuthMiddleware.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Admin access required")
		}
		return c.Next()
	}
}
