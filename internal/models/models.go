package models

import "time"

// TaskStatus is the closed set of task states.
type TaskStatus string

const (
	StatusToDo       TaskStatus = "to_do"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// Valid reports whether s is one of the three known states.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Task is the stored document. The id is assigned server-side at creation
// and user_id always comes from the authenticated caller; both are
// immutable. updated_at is absent until the first update.
type Task struct {
	ID          string     `bson:"id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Status      TaskStatus `bson:"status" json:"status"`
	UserID      string     `bson:"user_id" json:"user_id"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Identity is the claim set attached to a request by the verifying front
// door. It is referenced, never persisted.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// TokenBundle is what a successful login returns.
type TokenBundle struct {
	IDToken      string `json:"id_token"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int32  `json:"expires_in"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description" validate:"required"`
	Status      *string `json:"status" validate:"omitempty,oneof=to_do in_progress completed"`
}

// UpdateTaskRequest is a PATCH-style partial update: nil fields are left
// untouched. An explicit JSON null behaves like an absent field.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=to_do in_progress completed"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
