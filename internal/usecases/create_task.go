package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// CreateTask defines the interface for the CreateTask use case.
type CreateTask interface {
	Execute(ctx context.Context, userID int64, input NewTaskInput) (domain.Task, error)
}

// CreateTaskImpl is the implementation of the CreateTask use case.
type CreateTaskImpl struct {
	uow     domain.UnitOfWork
	creator TaskCreator
}

// NewCreateTaskImpl creates a new instance of CreateTaskImpl.
func NewCreateTaskImpl(uow domain.UnitOfWork, creator TaskCreator) CreateTaskImpl {
	return CreateTaskImpl{
		uow:     uow,
		creator: creator,
	}
}

// Execute creates a new task for the user.
func (cti CreateTaskImpl) Execute(ctx context.Context, userID int64, input NewTaskInput) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var task domain.Task
	err := cti.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		created, err := cti.creator.Create(spanCtx, uow, userID, input)
		if err != nil {
			return err
		}
		task = created
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	return task, nil
}

// InitCreateTask initializes the CreateTask use case and registers it in the dependency container.
type InitCreateTask struct {
	Uow     domain.UnitOfWork `resolve:""`
	Creator TaskCreator       `resolve:""`
}

// Initialize registers the CreateTask use case.
func (i InitCreateTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateTask](NewCreateTaskImpl(i.Uow, i.Creator))
	return ctx, nil
}
