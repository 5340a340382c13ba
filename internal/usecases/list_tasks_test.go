package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListTasksImpl_Query(t *testing.T) {
	completed := domain.TaskStatus_COMPLETED
	tasks := []domain.Task{
		{ID: 2, UserID: 7, Title: "Walk dog", Status: domain.TaskStatus_COMPLETED},
		{ID: 1, UserID: 7, Title: "Buy milk", Status: domain.TaskStatus_COMPLETED},
	}

	tests := map[string]struct {
		params          ListTasksParams
		setExpectations func(repo *domain.MockTaskRepository)
		expectedTasks   []domain.Task
		expectedErr     error
	}{
		"default-page-size": {
			params: ListTasksParams{},
			setExpectations: func(repo *domain.MockTaskRepository) {
				repo.EXPECT().ListTasks(mock.Anything, domain.ListTasksFilter{
					UserID: 7,
					Limit:  DefaultTaskPageSize,
				}).Return(tasks, nil)
			},
			expectedTasks: tasks,
		},
		"filters-and-cap": {
			params: ListTasksParams{Status: &completed, Search: "  milk ", Limit: 500, Offset: 10},
			setExpectations: func(repo *domain.MockTaskRepository) {
				repo.EXPECT().ListTasks(mock.Anything, domain.ListTasksFilter{
					UserID: 7,
					Status: &completed,
					Search: "milk",
					Limit:  MaxTaskPageSize,
					Offset: 10,
				}).Return(tasks[1:], nil)
			},
			expectedTasks: tasks[1:],
		},
		"negative-offset": {
			params:          ListTasksParams{Offset: -1},
			setExpectations: func(repo *domain.MockTaskRepository) {},
			expectedErr:     domain.NewValidationErr("offset cannot be negative"),
		},
		"repository-error": {
			params: ListTasksParams{Limit: 5},
			setExpectations: func(repo *domain.MockTaskRepository) {
				repo.EXPECT().ListTasks(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
			},
			expectedErr: errors.New("db down"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockTaskRepository(t)
			tt.setExpectations(repo)

			got, err := NewListTasksImpl(repo).Query(context.Background(), 7, tt.params)

			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedTasks, got)
		})
	}
}

func TestClampPageSize(t *testing.T) {
	assert.Equal(t, 10, clampPageSize(0, 10))
	assert.Equal(t, 10, clampPageSize(-3, 10))
	assert.Equal(t, 25, clampPageSize(25, 10))
	assert.Equal(t, MaxTaskPageSize, clampPageSize(MaxTaskPageSize+1, 10))
}

func TestInitListTasks_Initialize(t *testing.T) {
	_, err := InitListTasks{TaskRepo: domain.NewMockTaskRepository(t)}.Initialize(context.Background())
	assert.NoError(t, err)

	r, err := depend.Resolve[ListTasks]()
	assert.NoError(t, err)
	assert.NotNil(t, r)
}
