// error_utils.go
package utils

import (
	"github.com/gofiber/fiber/v2"

	"formbuilder-backend/src/models"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
