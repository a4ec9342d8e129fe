package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToTaskItemRendersTimestamps(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	updatedAt := createdAt.Add(2 * time.Hour)

	item := ToTaskItem(&Task{
		ID:          "abc-123",
		Title:       "Buy milk",
		Description: "2%",
		Status:      StatusInProgress,
		UserID:      "u1",
		CreatedAt:   createdAt,
		UpdatedAt:   &updatedAt,
	})

	assert.Equal(t, "2026-03-14T09:26:53Z", item.CreatedAt)
	require.NotNil(t, item.UpdatedAt)
	assert.Equal(t, "2026-03-14T11:26:53Z", *item.UpdatedAt)
	assert.Equal(t, "in_progress", item.Status)
}

func TestToTaskItemOmitsUnsetUpdatedAt(t *testing.T) {
	item := ToTaskItem(&Task{ID: "abc", CreatedAt: time.Now()})
	assert.Nil(t, item.UpdatedAt)
}

func TestToTaskItemNilInNilOut(t *testing.T) {
	assert.Nil(t, ToTaskItem(nil))

	task, err := FromTaskItem(nil)
	assert.NoError(t, err)
	assert.Nil(t, task)
}

func TestTaskRoundTripPreservesFields(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	updatedAt := createdAt.Add(time.Minute)
	original := &Task{
		ID:          "abc-123",
		Title:       "Buy milk",
		Description: "2%",
		Status:      StatusCompleted,
		UserID:      "u1",
		CreatedAt:   createdAt,
		UpdatedAt:   &updatedAt,
	}

	restored, err := FromTaskItem(ToTaskItem(original))
	require.NoError(t, err)
	assert.Equal(t, original.ID, restored.ID)
	assert.Equal(t, original.Title, restored.Title)
	assert.Equal(t, original.Description, restored.Description)
	assert.Equal(t, original.Status, restored.Status)
	assert.Equal(t, original.UserID, restored.UserID)
	assert.True(t, original.CreatedAt.Equal(restored.CreatedAt))
	require.NotNil(t, restored.UpdatedAt)
	assert.True(t, original.UpdatedAt.Equal(*restored.UpdatedAt))
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusToDo.Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, TaskStatus("done").Valid())
	assert.False(t, TaskStatus("").Valid())
	assert.False(t, TaskStatus("TO_DO").Valid())
}
