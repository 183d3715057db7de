package handlers

import (
	"errors"
	"fmt"

	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// validationMessages flattens validator errors into a field → reason map.
func validationMessages(err error) map[string]string {
	messages := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			messages[e.Field()] = fmt.Sprintf("field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return messages
}

// writeServiceError maps a service error to the HTTP response. Expected
// absences and rejected input log at warn; anything else is a server fault
// and logs at error without leaking internals to the caller.
func writeServiceError(c *fiber.Ctx, err error, operation string) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		log.WithError(err).Warnf("%s: not found", operation)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrInvalidInput):
		log.WithError(err).Warnf("%s: invalid input", operation)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	default:
		log.WithError(err).Errorf("%s failed", operation)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "internal server error",
		})
	}
}
