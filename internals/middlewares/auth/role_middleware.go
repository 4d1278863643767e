package auth

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRoles allows the request through only when the token role is one of
// the given roles.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Access denied for role "+role)
		}
		return c.Next()
	}
}
