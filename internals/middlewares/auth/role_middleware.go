package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "github.com/rodrigospisila/parish-backend/internals/helpers"
)

// RoleMiddlewareWithCustomError gates a route group by role.
func RoleMiddlewareWithCustomError(allowedRoles []string, forbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetUserRole(c)
		if role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Missing role information")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if forbiddenMessage == "" {
			forbiddenMessage = "You are not authorized to access this resource"
		}
		return helper.JsonError(c, fiber.StatusForbidden, forbiddenMessage)
	}
}

// OnlyRoles is a shortcut for RoleMiddlewareWithCustomError.
func OnlyRoles(message string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, message)
}
