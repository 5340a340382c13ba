package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalToolName(t *testing.T) {
	tests := map[string]struct {
		name     string
		expected ToolName
	}{
		"canonical-unchanged": {
			name:     "list_tasks",
			expected: ToolName_ListTasks,
		},
		"create-alias": {
			name:     "todo_create_tool",
			expected: ToolName_AddTask,
		},
		"search-alias": {
			name:     "search_tasks",
			expected: ToolName_ListTasks,
		},
		"complete-alias": {
			name:     "todo_complete_tool",
			expected: ToolName_CompleteTask,
		},
		"unknown-passthrough": {
			name:     "launch_rocket",
			expected: ToolName("launch_rocket"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalToolName(tt.name))
		})
	}
}

func TestNewToolDefinition(t *testing.T) {
	def := NewToolDefinition(ToolName_ListTasks, "List tasks", nil)

	raw, err := json.Marshal(def)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "function",
		"function": {
			"name": "list_tasks",
			"description": "List tasks",
			"parameters": {"type": "object", "properties": {}, "required": []}
		}
	}`, string(raw))
}

func TestNewToolTask(t *testing.T) {
	created := time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)
	due := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	got := NewToolTask(Task{
		ID:        3,
		UserID:    7,
		Title:     "Buy milk",
		Status:    TaskStatus_PENDING,
		DueDate:   &due,
		CreatedAt: created,
		UpdatedAt: created,
	})

	require.NotNil(t, got.DueDate)
	assert.Equal(t, "2026-02-01", *got.DueDate)
	assert.Equal(t, int64(3), got.ID)
	assert.Nil(t, NewToolTask(Task{}).DueDate)
}

func TestToolResult_JSON(t *testing.T) {
	raw, err := json.Marshal(ToolFailure("Task 9 not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": false, "message": "Task 9 not found"}`, string(raw))
}
