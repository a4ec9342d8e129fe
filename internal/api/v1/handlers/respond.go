package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"taskboard/pkg/apperrors"
	"taskboard/pkg/logger"
)

var validate = validator.New()

// errorBody is the uniform error envelope. error_code is omitted when not
// supplied; callers must not rely on its presence.
type errorBody struct {
	Message   string `json:"message"`
	ErrorCode string `json:"error_code,omitempty"`
}

// respondError converts a service error into the wire envelope. Internal
// causes are logged here and never reach the client body.
func respondError(c *fiber.Ctx, err error) error {
	appErr := apperrors.From(err)
	switch {
	case appErr.Status >= 500:
		logger.ErrorLogger.Error(appErr.Message,
			zap.String("url", c.OriginalURL()),
			zap.Error(appErr.Err),
		)
	case appErr.Status == fiber.StatusUnauthorized:
		logger.SecurityLogger.Warn(appErr.Message, zap.String("url", c.OriginalURL()))
	default:
		logger.RequestLogger.Info(appErr.Message,
			zap.String("url", c.OriginalURL()),
			zap.String("error_code", appErr.Code),
		)
	}
	return c.Status(appErr.Status).JSON(errorBody{Message: appErr.Message, ErrorCode: appErr.Code})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorBody{Message: message})
}
