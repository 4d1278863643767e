package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError renders fiber errors (middleware rejections, 404s) through
// the same envelope the handlers use.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonInternal(c, err)
}
