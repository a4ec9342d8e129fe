package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"taskboard/pkg/logger"
)

// ErrorHandler logs every incoming request and converts panics into the
// generic 500 envelope. The panic and stack stay in the server logs; the
// client never sees them.
func ErrorHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorLogger.Error(fmt.Sprintf("Recovered from panic: %v", r),
					zap.String("stack", string(debug.Stack())),
				)
				c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"message":    "Unexpected server error",
					"error_code": "server_error",
				})
			}
		}()
		logger.RequestLogger.Info("Incoming request",
			zap.String("method", c.Method()),
			zap.String("url", c.OriginalURL()),
		)
		return c.Next()
	}
}
