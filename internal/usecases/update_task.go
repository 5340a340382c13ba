package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// UpdateTask defines the interface for the UpdateTask use case.
type UpdateTask interface {
	Execute(ctx context.Context, userID, taskID int64, patch TaskPatch) (domain.Task, error)
}

// UpdateTaskImpl is the implementation of the UpdateTask use case.
type UpdateTaskImpl struct {
	uow     domain.UnitOfWork
	updater TaskUpdater
}

// NewUpdateTaskImpl creates a new instance of UpdateTaskImpl.
func NewUpdateTaskImpl(uow domain.UnitOfWork, updater TaskUpdater) UpdateTaskImpl {
	return UpdateTaskImpl{
		uow:     uow,
		updater: updater,
	}
}

// Execute applies the patch to the user's task. It also backs the status shortcuts.
func (uti UpdateTaskImpl) Execute(ctx context.Context, userID, taskID int64, patch TaskPatch) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("task_id", taskID),
	))
	defer span.End()

	var task domain.Task
	err := uti.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		updated, err := uti.updater.Update(spanCtx, uow, userID, taskID, patch)
		if err != nil {
			return err
		}
		task = updated
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	return task, nil
}

// InitUpdateTask initializes the UpdateTask use case.
type InitUpdateTask struct {
	Uow     domain.UnitOfWork `resolve:""`
	Updater TaskUpdater       `resolve:""`
}

// Initialize registers the UpdateTask use case.
func (i InitUpdateTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpdateTask](NewUpdateTaskImpl(i.Uow, i.Updater))
	return ctx, nil
}
