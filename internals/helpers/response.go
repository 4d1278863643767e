package helper

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Every endpoint answers with the same envelope:
// {status: "SUCCESS"|"ERROR", message, data?, pagination?}

func JsonOK(c *fiber.Ctx, message string, data interface{}) error {
	return jsonSuccess(c, fiber.StatusOK, message, data)
}

func JsonCreated(c *fiber.Ctx, message string, data interface{}) error {
	return jsonSuccess(c, fiber.StatusCreated, message, data)
}

func JsonList(c *fiber.Ctx, message string, data interface{}, pagination Pagination) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":     "SUCCESS",
		"message":    message,
		"data":       data,
		"pagination": pagination,
	})
}

func jsonSuccess(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"status":  "SUCCESS",
		"message": message,
		"data":    data,
	})
}

func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"status":  "ERROR",
		"message": message,
	})
}

func JsonErrorWithDetails(c *fiber.Ctx, code int, message string, errors interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"status":  "ERROR",
		"message": message,
		"errors":  errors,
	})
}

// JsonValidationError maps validator.v10 field errors into the envelope.
func JsonValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}
	return JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errorsMap)
}

// JsonInternal hides the cause behind a correlation id; the id is logged so
// support can match the report against the server log.
func JsonInternal(c *fiber.Ctx, err error) error {
	corrID := uuid.NewString()
	log.Printf("[ERROR] corr=%s reqid=%v %s %s: %v", corrID, c.Locals("reqid"), c.Method(), c.OriginalURL(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":         "ERROR",
		"message":        "Internal server error",
		"correlation_id": corrID,
	})
}
