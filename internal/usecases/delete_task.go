package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DeleteTask defines the interface for the DeleteTask use case.
type DeleteTask interface {
	Execute(ctx context.Context, userID, taskID int64) error
}

// DeleteTaskImpl is the implementation of the DeleteTask use case.
type DeleteTaskImpl struct {
	uow     domain.UnitOfWork
	deleter TaskDeleter
}

// NewDeleteTaskImpl creates a new instance of DeleteTaskImpl.
func NewDeleteTaskImpl(uow domain.UnitOfWork, deleter TaskDeleter) DeleteTaskImpl {
	return DeleteTaskImpl{
		uow:     uow,
		deleter: deleter,
	}
}

// Execute deletes the user's task.
func (dti DeleteTaskImpl) Execute(ctx context.Context, userID, taskID int64) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("task_id", taskID),
	))
	defer span.End()

	err := dti.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		_, err := dti.deleter.Delete(spanCtx, uow, userID, taskID)
		return err
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitDeleteTask initializes the DeleteTask use case.
type InitDeleteTask struct {
	Uow     domain.UnitOfWork `resolve:""`
	Deleter TaskDeleter       `resolve:""`
}

// Initialize registers the DeleteTask use case.
func (i InitDeleteTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeleteTask](NewDeleteTaskImpl(i.Uow, i.Deleter))
	return ctx, nil
}
