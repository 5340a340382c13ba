package tools

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpdateTaskTool_Execute(t *testing.T) {
	fixedTime := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)
	due := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	newTitle := "Buy oat milk"
	inProgress := domain.TaskStatus_IN_PROGRESS

	tests := map[string]struct {
		args           string
		setupMocks     func(uow *domain.MockUnitOfWork, updater *usecases.MockTaskUpdater, timeProvider *domain.MockCurrentTimeProvider)
		expectedResult domain.ToolResult
	}{
		"update-title-and-status": {
			args: `{"task_id": 3, "title": "Buy oat milk", "status": "in_progress"}`,
			setupMocks: func(uow *domain.MockUnitOfWork, updater *usecases.MockTaskUpdater, timeProvider *domain.MockCurrentTimeProvider) {
				passthroughUow(uow)
				updater.EXPECT().
					Update(mock.Anything, uow, int64(7), int64(3), usecases.TaskPatch{Title: &newTitle, Status: &inProgress}).
					Return(domain.Task{ID: 3, Title: newTitle, Status: inProgress}, nil).
					Once()
			},
			expectedResult: domain.ToolResult{Success: true, Message: "Task 'Buy oat milk' updated successfully", TaskID: taskIDPtr(3)},
		},
		"set-due-date": {
			args: `{"task_id": "3", "due_date": "2026-02-01"}`,
			setupMocks: func(uow *domain.MockUnitOfWork, updater *usecases.MockTaskUpdater, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime).Once()
				passthroughUow(uow)
				updater.EXPECT().
					Update(mock.Anything, uow, int64(7), int64(3), usecases.TaskPatch{DueDate: &due}).
					Return(domain.Task{ID: 3, Title: "Buy milk", DueDate: &due}, nil).
					Once()
			},
			expectedResult: domain.ToolResult{Success: true, Message: "Task 'Buy milk' updated successfully", TaskID: taskIDPtr(3)},
		},
		"clear-due-date": {
			args: `{"task_id": 3, "due_date": ""}`,
			setupMocks: func(uow *domain.MockUnitOfWork, updater *usecases.MockTaskUpdater, timeProvider *domain.MockCurrentTimeProvider) {
				passthroughUow(uow)
				updater.EXPECT().
					Update(mock.Anything, uow, int64(7), int64(3), usecases.TaskPatch{ClearDueDate: true}).
					Return(domain.Task{ID: 3, Title: "Buy milk"}, nil).
					Once()
			},
			expectedResult: domain.ToolResult{Success: true, Message: "Task 'Buy milk' updated successfully", TaskID: taskIDPtr(3)},
		},
		"missing-task-id": {
			args:           `{"title": "x"}`,
			setupMocks:     func(uow *domain.MockUnitOfWork, updater *usecases.MockTaskUpdater, timeProvider *domain.MockCurrentTimeProvider) {},
			expectedResult: domain.ToolFailure("Invalid arguments: task_id is required"),
		},
		"no-changes": {
			args:           `{"task_id": 3}`,
			setupMocks:     func(uow *domain.MockUnitOfWork, updater *usecases.MockTaskUpdater, timeProvider *domain.MockCurrentTimeProvider) {},
			expectedResult: domain.ToolFailure("No changes provided. Give at least one of title, description, status or due_date"),
		},
		"foreign-task": {
			args: `{"task_id": 3, "title": "Buy oat milk"}`,
			setupMocks: func(uow *domain.MockUnitOfWork, updater *usecases.MockTaskUpdater, timeProvider *domain.MockCurrentTimeProvider) {
				passthroughUow(uow)
				updater.EXPECT().
					Update(mock.Anything, uow, int64(7), int64(3), mock.Anything).
					Return(domain.Task{}, domain.NewForbiddenErr(usecases.ForeignTaskMessage)).
					Once()
			},
			expectedResult: domain.ToolFailure("Unauthorized: You can only modify your own tasks"),
		},
		"not-found": {
			args: `{"task_id": 99, "title": "Buy oat milk"}`,
			setupMocks: func(uow *domain.MockUnitOfWork, updater *usecases.MockTaskUpdater, timeProvider *domain.MockCurrentTimeProvider) {
				passthroughUow(uow)
				updater.EXPECT().
					Update(mock.Anything, uow, int64(7), int64(99), mock.Anything).
					Return(domain.Task{}, domain.NewNotFoundErr("Task with ID 99 not found")).
					Once()
			},
			expectedResult: domain.ToolFailure("Task with ID 99 not found"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain.NewMockUnitOfWork(t)
			updater := usecases.NewMockTaskUpdater(t)
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			tt.setupMocks(uow, updater, timeProvider)

			got := NewUpdateTaskTool(uow, updater, timeProvider).Execute(t.Context(), 7, json.RawMessage(tt.args))

			assert.Equal(t, tt.expectedResult, got)
		})
	}
}
