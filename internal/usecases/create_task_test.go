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

func TestCreateTaskImpl_Execute(t *testing.T) {
	input := NewTaskInput{Title: "Buy milk"}
	created := domain.Task{ID: 1, UserID: 7, Title: "Buy milk", Status: domain.TaskStatus_PENDING}

	tests := map[string]struct {
		setExpectations func(uow *domain.MockUnitOfWork, creator *MockTaskCreator)
		expectedTask    domain.Task
		expectedErr     error
	}{
		"success": {
			setExpectations: func(uow *domain.MockUnitOfWork, creator *MockTaskCreator) {
				uow.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
					func(ctx context.Context, fn func(domain.UnitOfWork) error) error {
						return fn(uow)
					},
				)
				creator.EXPECT().Create(mock.Anything, uow, int64(7), input).Return(created, nil)
			},
			expectedTask: created,
		},
		"creator-error": {
			setExpectations: func(uow *domain.MockUnitOfWork, creator *MockTaskCreator) {
				uow.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
					func(ctx context.Context, fn func(domain.UnitOfWork) error) error {
						return fn(uow)
					},
				)
				creator.EXPECT().Create(mock.Anything, uow, int64(7), input).Return(
					domain.Task{}, domain.NewValidationErr("title cannot be empty"),
				)
			},
			expectedErr: domain.NewValidationErr("title cannot be empty"),
		},
		"transaction-error": {
			setExpectations: func(uow *domain.MockUnitOfWork, creator *MockTaskCreator) {
				uow.EXPECT().Execute(mock.Anything, mock.Anything).Return(errors.New("begin failed"))
			},
			expectedErr: errors.New("begin failed"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain.NewMockUnitOfWork(t)
			creator := NewMockTaskCreator(t)
			tt.setExpectations(uow, creator)

			got, err := NewCreateTaskImpl(uow, creator).Execute(context.Background(), 7, input)

			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedTask, got)
		})
	}
}

func TestInitCreateTask_Initialize(t *testing.T) {
	i := InitCreateTask{
		Uow:     domain.NewMockUnitOfWork(t),
		Creator: NewMockTaskCreator(t),
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	r, err := depend.Resolve[CreateTask]()
	assert.NoError(t, err)
	assert.NotNil(t, r)
}
