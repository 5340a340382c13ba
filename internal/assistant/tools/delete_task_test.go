package tools

import (
	"encoding/json"
	"testing"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeleteTaskTool_Execute(t *testing.T) {
	tests := map[string]struct {
		args           string
		setupMocks     func(uow *domain.MockUnitOfWork, repo *domain.MockTaskRepository, deleter *usecases.MockTaskDeleter)
		expectedResult domain.ToolResult
	}{
		"by-id": {
			args: `{"task_id": 5}`,
			setupMocks: func(uow *domain.MockUnitOfWork, repo *domain.MockTaskRepository, deleter *usecases.MockTaskDeleter) {
				passthroughUow(uow)
				deleter.EXPECT().Delete(mock.Anything, uow, int64(7), int64(5)).Return(domain.Task{ID: 5}, nil).Once()
			},
			expectedResult: domain.ToolResult{Success: true, Message: "Task with ID 5 deleted successfully", TaskID: taskIDPtr(5)},
		},
		"by-title": {
			args: `{"title": "Buy milk"}`,
			setupMocks: func(uow *domain.MockUnitOfWork, repo *domain.MockTaskRepository, deleter *usecases.MockTaskDeleter) {
				passthroughUow(uow)
				uow.EXPECT().Task().Return(repo)
				repo.EXPECT().FindTaskByTitle(mock.Anything, int64(7), "Buy milk").Return(domain.Task{ID: 8, UserID: 7}, true, nil).Once()
				deleter.EXPECT().Delete(mock.Anything, uow, int64(7), int64(8)).Return(domain.Task{ID: 8}, nil).Once()
			},
			expectedResult: domain.ToolResult{Success: true, Message: "Task with ID 8 deleted successfully", TaskID: taskIDPtr(8)},
		},
		"title-not-found": {
			args: `{"title": "Nope"}`,
			setupMocks: func(uow *domain.MockUnitOfWork, repo *domain.MockTaskRepository, deleter *usecases.MockTaskDeleter) {
				passthroughUow(uow)
				uow.EXPECT().Task().Return(repo)
				repo.EXPECT().FindTaskByTitle(mock.Anything, int64(7), "Nope").Return(domain.Task{}, false, nil).Once()
			},
			expectedResult: domain.ToolFailure("Task with title 'Nope' not found"),
		},
		"id-not-found": {
			args: `{"task_id": 5}`,
			setupMocks: func(uow *domain.MockUnitOfWork, repo *domain.MockTaskRepository, deleter *usecases.MockTaskDeleter) {
				passthroughUow(uow)
				deleter.EXPECT().
					Delete(mock.Anything, uow, int64(7), int64(5)).
					Return(domain.Task{}, domain.NewNotFoundErr("Task with ID 5 not found")).
					Once()
			},
			expectedResult: domain.ToolFailure("Task with ID 5 not found"),
		},
		"neither-id-nor-title": {
			args:           `{}`,
			setupMocks:     func(uow *domain.MockUnitOfWork, repo *domain.MockTaskRepository, deleter *usecases.MockTaskDeleter) {},
			expectedResult: domain.ToolFailure("Either task_id or title must be provided"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain.NewMockUnitOfWork(t)
			repo := domain.NewMockTaskRepository(t)
			deleter := usecases.NewMockTaskDeleter(t)
			tt.setupMocks(uow, repo, deleter)

			got := NewDeleteTaskTool(uow, deleter).Execute(t.Context(), 7, json.RawMessage(tt.args))

			assert.Equal(t, tt.expectedResult, got)
		})
	}
}
