// error_utils.go
package utils

import (
	"Agency-Backend/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleErrorWithDetails carries the underlying error string in the
// details field, message stays human readable.
func HandleErrorWithDetails(c *fiber.Ctx, status int, message string, err error) error {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
		Details: details,
	})
}
