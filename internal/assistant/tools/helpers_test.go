package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func passthroughUow(uow *domain.MockUnitOfWork) {
	uow.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(domain.UnitOfWork) error) error {
			return fn(uow)
		})
}

func TestUnmarshalArgs(t *testing.T) {
	type target struct {
		TaskID taskIDArg `json:"task_id"`
		Title  string    `json:"title"`
	}

	tests := map[string]struct {
		args        string
		expected    target
		expectedErr bool
	}{
		"numeric-id": {
			args:     `{"task_id": 3, "title": "x"}`,
			expected: target{TaskID: 3, Title: "x"},
		},
		"string-id": {
			args:     `{"task_id": "12"}`,
			expected: target{TaskID: 12},
		},
		"empty-args": {
			args:     ``,
			expected: target{},
		},
		"null-id": {
			args:     `{"task_id": null}`,
			expected: target{},
		},
		"non-numeric-id": {
			args:        `{"task_id": "abc"}`,
			expectedErr: true,
		},
		"unknown-field": {
			args:        `{"name": "x"}`,
			expectedErr: true,
		},
		"trailing-object": {
			args:        `{"title": "x"} {"title": "y"}`,
			expectedErr: true,
		},
		"not-json": {
			args:        `create it`,
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var got target
			err := unmarshalArgs(json.RawMessage(tt.args), &got)
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFailure(t *testing.T) {
	assert.Equal(t,
		domain.ToolFailure("Task with ID 4 not found"),
		failure("update task", domain.NewNotFoundErr("Task with ID 4 not found")),
	)
	assert.Equal(t,
		domain.ToolFailure("Unauthorized: You can only modify your own tasks"),
		failure("update task", domain.NewForbiddenErr("Unauthorized: You can only modify your own tasks")),
	)
	assert.Equal(t,
		domain.ToolFailure("Failed to update task: connection reset"),
		failure("update task", errors.New("connection reset")),
	)
}
