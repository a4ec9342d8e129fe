package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTask(t *testing.T) {
	app := newTestApp(newMemStore(), &fakeCognito{})
	token := bearerToken(t, "u1", "u1@example.com", "User One")

	resp := doJSON(t, app, "POST", "/api/v1/tasks/", map[string]string{
		"title":       "Buy milk",
		"description": "2%",
		"status":      "to_do",
	}, token)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "to_do", body["status"])
	assert.Equal(t, "u1", body["user_id"])
	assert.Equal(t, "Buy milk", body["title"])
}

func TestCreateTaskIgnoresClientSuppliedOwner(t *testing.T) {
	app := newTestApp(newMemStore(), &fakeCognito{})
	token := bearerToken(t, "u1", "u1@example.com", "")

	resp := doJSON(t, app, "POST", "/api/v1/tasks/", map[string]string{
		"title":       "Buy milk",
		"description": "2%",
		"user_id":     "somebody-else",
	}, token)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "u1", body["user_id"])
}

func TestCreateTaskWithoutIdentity(t *testing.T) {
	app := newTestApp(newMemStore(), &fakeCognito{})

	resp := doJSON(t, app, "POST", "/api/v1/tasks/", map[string]string{
		"title":       "Buy milk",
		"description": "2%",
	}, "")

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "unauthorized", body["error_code"])
}

func TestCreateTaskValidation(t *testing.T) {
	app := newTestApp(newMemStore(), &fakeCognito{})
	token := bearerToken(t, "u1", "u1@example.com", "")

	// Missing title.
	resp := doJSON(t, app, "POST", "/api/v1/tasks/", map[string]string{
		"description": "2%",
	}, token)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "validation_error", body["error_code"])

	// Unknown status value.
	resp = doJSON(t, app, "POST", "/api/v1/tasks/", map[string]string{
		"title":       "Buy milk",
		"description": "2%",
		"status":      "done",
	}, token)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
}

func TestGetTaskNotFound(t *testing.T) {
	app := newTestApp(newMemStore(), &fakeCognito{})
	token := bearerToken(t, "u1", "u1@example.com", "")

	resp := doJSON(t, app, "GET", "/api/v1/tasks/missing", nil, token)

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "task_not_found", body["error_code"])
	assert.Equal(t, "Task not found", body["message"])
}

func TestGetTaskOwnedByAnotherUser(t *testing.T) {
	app := newTestApp(newMemStore(), &fakeCognito{})
	owner := bearerToken(t, "u1", "u1@example.com", "")
	intruder := bearerToken(t, "u2", "u2@example.com", "")

	resp := doJSON(t, app, "POST", "/api/v1/tasks/", map[string]string{
		"title":       "private",
		"description": "",
	}, owner)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]interface{}
	decodeBody(t, resp, &created)
	taskID := created["id"].(string)

	// Identical shape to a truly-nonexistent id.
	resp = doJSON(t, app, "GET", "/api/v1/tasks/"+taskID, nil, intruder)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "task_not_found", body["error_code"])
}

func TestListTasks(t *testing.T) {
	app := newTestApp(newMemStore(), &fakeCognito{})
	token := bearerToken(t, "u1", "u1@example.com", "")
	other := bearerToken(t, "u2", "u2@example.com", "")

	for _, title := range []string{"one", "two"} {
		resp := doJSON(t, app, "POST", "/api/v1/tasks/", map[string]string{
			"title":       title,
			"description": "",
		}, token)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, "GET", "/api/v1/tasks/", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []map[string]interface{}
	decodeBody(t, resp, &items)
	assert.Len(t, items, 2)

	// Another user sees none of them; empty is not an error.
	resp = doJSON(t, app, "GET", "/api/v1/tasks/", nil, other)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &items)
	assert.Empty(t, items)
}

func TestUpdateTaskPartial(t *testing.T) {
	app := newTestApp(newMemStore(), &fakeCognito{})
	token := bearerToken(t, "u1", "u1@example.com", "")

	resp := doJSON(t, app, "POST", "/api/v1/tasks/", map[string]string{
		"title":       "original",
		"description": "keep me",
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]interface{}
	decodeBody(t, resp, &created)
	taskID := created["id"].(string)
	assert.Nil(t, created["updated_at"])

	resp = doJSON(t, app, "PUT", "/api/v1/tasks/"+taskID, map[string]string{
		"status": "in_progress",
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated map[string]interface{}
	decodeBody(t, resp, &updated)

	assert.Equal(t, "original", updated["title"])
	assert.Equal(t, "keep me", updated["description"])
	assert.Equal(t, "in_progress", updated["status"])
	assert.NotEmpty(t, updated["updated_at"])
}

func TestUpdateTaskNotFound(t *testing.T) {
	app := newTestApp(newMemStore(), &fakeCognito{})
	token := bearerToken(t, "u1", "u1@example.com", "")

	resp := doJSON(t, app, "PUT", "/api/v1/tasks/missing", map[string]string{
		"title": "new",
	}, token)

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "task_not_found", body["error_code"])
}

func TestDeleteTask(t *testing.T) {
	app := newTestApp(newMemStore(), &fakeCognito{})
	token := bearerToken(t, "u1", "u1@example.com", "")

	resp := doJSON(t, app, "POST", "/api/v1/tasks/", map[string]string{
		"title":       "to delete",
		"description": "",
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]interface{}
	decodeBody(t, resp, &created)
	taskID := created["id"].(string)

	resp = doJSON(t, app, "DELETE", "/api/v1/tasks/"+taskID, nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Task successfully deleted", body["message"])

	// Deleting again reports NotFound, not success.
	resp = doJSON(t, app, "DELETE", "/api/v1/tasks/"+taskID, nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
