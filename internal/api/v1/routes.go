package v1

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/internal/api/v1/handlers"
	"taskboard/internal/middleware"
)

func RegisterRoutes(app *fiber.App, authHandler *handlers.AuthHandler, taskHandler *handlers.TaskHandler, healthHandler *handlers.HealthHandler) {
	api := app.Group("/api/v1")

	if healthHandler != nil {
		api.Get("/health", healthHandler.CheckHealth)
	}

	// Auth
	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	// Task
	taskRoutes := api.Group("/tasks", middleware.Claims())
	taskRoutes.Get("/", taskHandler.List)
	taskRoutes.Post("/", taskHandler.Create)
	taskRoutes.Get("/:id", taskHandler.Get)
	taskRoutes.Put("/:id", taskHandler.Update)
	taskRoutes.Delete("/:id", taskHandler.Delete)
}
