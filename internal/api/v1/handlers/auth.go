package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"taskboard/internal/models"
	"taskboard/internal/service"
	"taskboard/pkg/apperrors"
	"taskboard/pkg/logger"
)

type AuthHandler struct {
	credentials *service.CredentialService
}

func NewAuthHandler(credentials *service.CredentialService) *AuthHandler {
	return &AuthHandler{credentials: credentials}
}

// Register creates a new account with the identity provider.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in register", zap.Error(err))
		return badRequest(c, "Bad request")
	}

	if err := validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during register", zap.Error(err))
		return respondError(c, apperrors.Validation(err.Error()))
	}

	userID, err := h.credentials.Register(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	logger.AuditLogger.Info("User registered successfully", zap.String("user_id", userID))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user_id": userID,
	})
}

// Login verifies the credentials against the identity provider and returns
// its token bundle.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in login", zap.Error(err))
		return badRequest(c, "Bad request")
	}

	if err := validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during login", zap.Error(err))
		return respondError(c, apperrors.Validation(err.Error()))
	}

	tokens, err := h.credentials.Login(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	logger.AuditLogger.Info("Login success", zap.String("email", req.Email))
	return c.JSON(tokens)
}
