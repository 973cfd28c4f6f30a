package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	apimodels "hr-screening-backend/models/api"
)

// WithBodyLimit отклоняет запросы с телом больше limit байт
func WithBodyLimit(limit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		size := int64(c.Request().Header.ContentLength())
		if size <= 0 {
			size = int64(len(c.Body()))
		}
		if size > limit {
			return c.Status(fiber.StatusRequestEntityTooLarge).
				JSON(apimodels.NewError(fmt.Sprintf("слишком большой запрос, допустимо не более %d байт", limit)))
		}
		return c.Next()
	}
}
