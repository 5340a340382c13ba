package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// TaskDeleter defines the interface for deleting tasks within a unit of work.
type TaskDeleter interface {
	Delete(ctx context.Context, uow domain.UnitOfWork, userID, taskID int64) (domain.Task, error)
}

// TaskDeleterImpl is the implementation of the TaskDeleter interface.
type TaskDeleterImpl struct{}

// NewTaskDeleterImpl creates a new instance of TaskDeleterImpl.
func NewTaskDeleterImpl() TaskDeleterImpl {
	return TaskDeleterImpl{}
}

// Delete removes the task and returns its last state.
func (TaskDeleterImpl) Delete(ctx context.Context, uow domain.UnitOfWork, userID, taskID int64) (domain.Task, error) {
	task, err := getOwnedTask(ctx, uow, userID, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if err := uow.Task().DeleteTask(ctx, taskID); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// InitTaskDeleter initializes the TaskDeleter.
type InitTaskDeleter struct{}

// Initialize registers the TaskDeleter use case in the dependency container.
func (InitTaskDeleter) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[TaskDeleter](NewTaskDeleterImpl())
	return ctx, nil
}
