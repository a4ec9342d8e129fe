package models

import "time"

// TaskItem is the wire shape of a task. Timestamps are rendered as RFC3339
// UTC so they sort lexicographically; everything else passes through
// verbatim.
type TaskItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	UserID      string  `json:"user_id"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   *string `json:"updated_at,omitempty"`
}

// ToTaskItem converts a stored task to its wire shape. A nil task maps to
// nil.
func ToTaskItem(task *Task) *TaskItem {
	if task == nil {
		return nil
	}

	item := &TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt.UTC().Format(time.RFC3339),
	}
	if task.UpdatedAt != nil {
		value := task.UpdatedAt.UTC().Format(time.RFC3339)
		item.UpdatedAt = &value
	}
	return item
}

func ToTaskItems(tasks []Task) []TaskItem {
	items := make([]TaskItem, 0, len(tasks))
	for i := range tasks {
		items = append(items, *ToTaskItem(&tasks[i]))
	}
	return items
}

// FromTaskItem parses a wire task back into its stored shape.
func FromTaskItem(item *TaskItem) (*Task, error) {
	if item == nil {
		return nil, nil
	}

	createdAt, err := time.Parse(time.RFC3339, item.CreatedAt)
	if err != nil {
		return nil, err
	}

	task := &Task{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Status:      TaskStatus(item.Status),
		UserID:      item.UserID,
		CreatedAt:   createdAt,
	}
	if item.UpdatedAt != nil {
		updatedAt, err := time.Parse(time.RFC3339, *item.UpdatedAt)
		if err != nil {
			return nil, err
		}
		task.UpdatedAt = &updatedAt
	}
	return task, nil
}
