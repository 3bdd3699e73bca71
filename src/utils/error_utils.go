// error_utils.go
package utils

import (
	"errors"
	"log"

	"Backend-Scholarship-Finder/src/apperrors"
	"Backend-Scholarship-Finder/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleServiceError แปลง error จาก service เป็น HTTP status ที่เหมาะสม
func HandleServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return HandleError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrEmptyFile),
		errors.Is(err, apperrors.ErrInvalidMode):
		return HandleError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrUnauthorized):
		return HandleError(c, fiber.StatusUnauthorized, err.Error())
	}
	log.Println("❌ unexpected error:", err)
	return HandleError(c, fiber.StatusInternalServerError, err.Error())
}
