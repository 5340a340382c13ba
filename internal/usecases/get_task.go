package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// GetTask defines the interface for the GetTask use case.
type GetTask interface {
	Query(ctx context.Context, userID, taskID int64) (domain.Task, error)
}

// GetTaskImpl is the implementation of the GetTask use case.
type GetTaskImpl struct {
	uow domain.UnitOfWork
}

// NewGetTaskImpl creates a new instance of GetTaskImpl.
func NewGetTaskImpl(uow domain.UnitOfWork) GetTaskImpl {
	return GetTaskImpl{uow: uow}
}

// Query returns the task when the user owns it.
func (gti GetTaskImpl) Query(ctx context.Context, userID, taskID int64) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	task, err := getOwnedTask(spanCtx, gti.uow, userID, taskID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}
	return task, nil
}

// InitGetTask initializes the GetTask use case.
type InitGetTask struct {
	Uow domain.UnitOfWork `resolve:""`
}

// Initialize registers the GetTask use case.
func (i InitGetTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetTask](NewGetTaskImpl(i.Uow))
	return ctx, nil
}
