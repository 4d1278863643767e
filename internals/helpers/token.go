package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var ErrNoUserInContext = errors.New("no authenticated user in request context")

// UserIDFromLocals reads the user id the auth middleware stored on the request.
func UserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, ErrNoUserInContext
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNoUserInContext
	}
	return id, nil
}

func RoleFromLocals(c *fiber.Ctx) string {
	role, _ := c.Locals("user_role").(string)
	return role
}
