package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"taskboard/internal/models"
	"taskboard/pkg/apperrors"
	"taskboard/pkg/logger"
)

const taskCacheTTL = time.Hour

// TaskStore is the document-store surface the task service needs. FindOne
// must return (nil, nil) when no document matches the (id, user_id) pair.
type TaskStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.Task, error)
	FindOne(ctx context.Context, id, userID string) (*models.Task, error)
	Insert(ctx context.Context, task models.Task) error
	SetFields(ctx context.Context, id, userID string, fields bson.M) error
	Delete(ctx context.Context, id, userID string) error
}

// TaskService implements the task operations, always scoped to the owning
// user. The cache client may be nil, in which case reads always hit the
// store.
type TaskService struct {
	store TaskStore
	cache *redis.Client
}

func NewTaskService(store TaskStore, cache *redis.Client) *TaskService {
	return &TaskService{store: store, cache: cache}
}

func (s *TaskService) List(ctx context.Context, userID string) ([]models.TaskItem, error) {
	if userID == "" {
		return nil, apperrors.Unauthenticated()
	}

	tasks, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("Error retrieving tasks", err)
	}
	return models.ToTaskItems(tasks), nil
}

func (s *TaskService) Get(ctx context.Context, userID, taskID string) (*models.TaskItem, error) {
	if userID == "" {
		return nil, apperrors.Unauthenticated()
	}
	if taskID == "" {
		return nil, apperrors.MissingTaskID()
	}

	if cached := s.cacheGet(ctx, taskID, userID); cached != nil {
		return models.ToTaskItem(cached), nil
	}

	task, err := s.store.FindOne(ctx, taskID, userID)
	if err != nil {
		return nil, apperrors.Internal("Error retrieving task", err)
	}
	if task == nil {
		return nil, apperrors.TaskNotFound()
	}

	s.cacheSet(ctx, task)
	return models.ToTaskItem(task), nil
}

func (s *TaskService) Create(ctx context.Context, userID string, req models.CreateTaskRequest) (*models.TaskItem, error) {
	if userID == "" {
		return nil, apperrors.Unauthenticated()
	}
	if req.Title == "" || req.Description == nil {
		return nil, apperrors.Validation("title and description are required")
	}

	status := models.StatusToDo
	if req.Status != nil {
		status = models.TaskStatus(*req.Status)
		if !status.Valid() {
			return nil, apperrors.Validation("invalid status")
		}
	}

	task := models.Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: *req.Description,
		Status:      status,
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.Insert(ctx, task); err != nil {
		return nil, apperrors.Internal("Error creating task", err)
	}

	s.cacheSet(ctx, &task)
	return models.ToTaskItem(&task), nil
}

// Update applies only the fields present in req, stamps updated_at, and
// returns the record re-read from the store so the response reflects
// exactly what was durably written.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, req models.UpdateTaskRequest) (*models.TaskItem, error) {
	if userID == "" {
		return nil, apperrors.Unauthenticated()
	}
	if taskID == "" {
		return nil, apperrors.MissingTaskID()
	}

	if req.Status != nil && !models.TaskStatus(*req.Status).Valid() {
		return nil, apperrors.Validation("invalid status")
	}

	existing, err := s.store.FindOne(ctx, taskID, userID)
	if err != nil {
		return nil, apperrors.Internal("Error updating task", err)
	}
	if existing == nil {
		return nil, apperrors.TaskNotFound()
	}

	fields := bson.M{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	fields["updated_at"] = time.Now().UTC()

	if err := s.store.SetFields(ctx, taskID, userID, fields); err != nil {
		return nil, apperrors.Internal("Error updating task", err)
	}

	updated, err := s.store.FindOne(ctx, taskID, userID)
	if err != nil || updated == nil {
		return nil, apperrors.Internal("Error fetching updated task", err)
	}

	s.cacheSet(ctx, updated)
	return models.ToTaskItem(updated), nil
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	if userID == "" {
		return apperrors.Unauthenticated()
	}
	if taskID == "" {
		return apperrors.MissingTaskID()
	}

	existing, err := s.store.FindOne(ctx, taskID, userID)
	if err != nil {
		return apperrors.Internal("Error deleting task", err)
	}
	if existing == nil {
		return apperrors.TaskNotFound()
	}

	if err := s.store.Delete(ctx, taskID, userID); err != nil {
		return apperrors.Internal("Error deleting task", err)
	}

	s.cacheDel(ctx, taskID)
	return nil
}

// cacheGet returns the cached task only when it belongs to userID;
// ownership is enforced on cache hits as well. Cache failures fall through
// to the store.
func (s *TaskService) cacheGet(ctx context.Context, taskID, userID string) *models.Task {
	if s.cache == nil {
		return nil
	}
	cached, err := s.cache.Get(ctx, cacheKey(taskID)).Result()
	if err != nil {
		return nil
	}
	var task models.Task
	if err := json.Unmarshal([]byte(cached), &task); err != nil {
		return nil
	}
	if task.UserID != userID {
		return nil
	}
	return &task
}

func (s *TaskService) cacheSet(ctx context.Context, task *models.Task) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(task)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(task.ID), data, taskCacheTTL).Err(); err != nil {
		logger.ErrorLogger.Error("Error caching task", zap.String("task_id", task.ID), zap.Error(err))
	}
}

func (s *TaskService) cacheDel(ctx context.Context, taskID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cacheKey(taskID)).Err(); err != nil {
		logger.ErrorLogger.Error("Error evicting task from cache", zap.String("task_id", taskID), zap.Error(err))
	}
}

func cacheKey(taskID string) string {
	return fmt.Sprintf("task:%s", taskID)
}
