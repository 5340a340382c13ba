package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// ForeignTaskMessage is reported when a user touches a task owned by somebody else.
const ForeignTaskMessage = "Unauthorized: You can only modify your own tasks"

// TaskPatch describes a partial task update. Nil fields are left unchanged.
type TaskPatch struct {
	Title        *string
	Description  *string
	Status       *domain.TaskStatus
	DueDate      *time.Time
	ClearDueDate bool
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil && p.DueDate == nil && !p.ClearDueDate
}

// TaskUpdater defines the interface for modifying tasks.
type TaskUpdater interface {
	Update(ctx context.Context, uow domain.UnitOfWork, userID, taskID int64, patch TaskPatch) (domain.Task, error)
}

// TaskUpdaterImpl is the implementation of the TaskUpdater interface.
type TaskUpdaterImpl struct {
	timeProvider domain.CurrentTimeProvider
}

// NewTaskUpdaterImpl creates a new instance of TaskUpdaterImpl.
func NewTaskUpdaterImpl(timeProvider domain.CurrentTimeProvider) TaskUpdaterImpl {
	return TaskUpdaterImpl{timeProvider: timeProvider}
}

// Update applies patch to the task identified by taskID. The owner never changes.
func (tui TaskUpdaterImpl) Update(ctx context.Context, uow domain.UnitOfWork, userID, taskID int64, patch TaskPatch) (domain.Task, error) {
	task, err := getOwnedTask(ctx, uow, userID, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	if patch.Title != nil {
		task.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		task.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.ClearDueDate {
		task.DueDate = nil
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}
	task.UpdatedAt = tui.timeProvider.Now()

	if err := task.Validate(); err != nil {
		return domain.Task{}, err
	}

	if err := uow.Task().UpdateTask(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// getOwnedTask loads a task and checks that userID owns it.
func getOwnedTask(ctx context.Context, uow domain.UnitOfWork, userID, taskID int64) (domain.Task, error) {
	task, found, err := uow.Task().GetTask(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if !found {
		return domain.Task{}, domain.NewNotFoundErr(fmt.Sprintf("Task with ID %d not found", taskID))
	}
	if !task.IsOwnedBy(userID) {
		return domain.Task{}, domain.NewForbiddenErr(ForeignTaskMessage)
	}
	return task, nil
}

// InitTaskUpdater initializes the TaskUpdater use case.
type InitTaskUpdater struct {
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the TaskUpdater in the dependency container.
func (i InitTaskUpdater) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[TaskUpdater](NewTaskUpdaterImpl(i.TimeProvider))
	return ctx, nil
}
