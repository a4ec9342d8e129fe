package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"taskboard/internal/models"
)

// TasksCollection is the document-store collection holding tasks.
const TasksCollection = "tasks"

// TaskRepository maps task operations onto MongoDB. Every lookup filters on
// the application-level id together with user_id, so a task is invisible to
// anyone but its owner.
type TaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{coll: db.Collection(TasksCollection)}
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]models.Task, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindOne returns (nil, nil) when no document matches the (id, user_id)
// pair.
func (r *TaskRepository) FindOne(ctx context.Context, id, userID string) (*models.Task, error) {
	var task models.Task
	err := r.coll.FindOne(ctx, bson.M{"id": id, "user_id": userID}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Insert(ctx context.Context, task models.Task) error {
	_, err := r.coll.InsertOne(ctx, task)
	return err
}

// SetFields applies a partial $set to the (id, user_id) pair. Fields not
// named in fields are left untouched.
func (r *TaskRepository) SetFields(ctx context.Context, id, userID string, fields bson.M) error {
	_, err := r.coll.UpdateOne(
		ctx,
		bson.M{"id": id, "user_id": userID},
		bson.M{"$set": fields},
	)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id, userID string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "user_id": userID})
	return err
}
