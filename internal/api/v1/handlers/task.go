package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"taskboard/internal/middleware"
	"taskboard/internal/models"
	"taskboard/internal/service"
	"taskboard/pkg/apperrors"
	"taskboard/pkg/logger"
)

type TaskHandler struct {
	tasks *service.TaskService
}

func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List returns every task owned by the caller, in store-native order.
func (h *TaskHandler) List(c *fiber.Ctx) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return respondError(c, apperrors.Unauthenticated())
	}

	items, err := h.tasks.List(c.Context(), identity.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *TaskHandler) Get(c *fiber.Ctx) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return respondError(c, apperrors.Unauthenticated())
	}

	item, err := h.tasks.Get(c.Context(), identity.UserID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// Create stores a new task owned by the caller. The owner always comes
// from the verified identity, never from the body.
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return respondError(c, apperrors.Unauthenticated())
	}

	var req models.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in create task", zap.Error(err))
		return badRequest(c, "Bad request")
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, apperrors.Validation(err.Error()))
	}

	item, err := h.tasks.Create(c.Context(), identity.UserID, req)
	if err != nil {
		return respondError(c, err)
	}

	logger.AuditLogger.Info("Task created successfully",
		zap.String("task_id", item.ID),
		zap.String("user_id", identity.UserID),
	)
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return respondError(c, apperrors.Unauthenticated())
	}

	var req models.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in update task", zap.Error(err))
		return badRequest(c, "Bad request")
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, apperrors.Validation(err.Error()))
	}

	item, err := h.tasks.Update(c.Context(), identity.UserID, c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}

	logger.AuditLogger.Info("Task updated", zap.String("task_id", item.ID))
	return c.JSON(item)
}

// Delete removes the task and returns a confirmation, not the record.
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return respondError(c, apperrors.Unauthenticated())
	}

	taskID := c.Params("id")
	if err := h.tasks.Delete(c.Context(), identity.UserID, taskID); err != nil {
		return respondError(c, err)
	}

	logger.AuditLogger.Info("Task deleted", zap.String("task_id", taskID))
	return c.JSON(fiber.Map{"message": "Task successfully deleted"})
}
