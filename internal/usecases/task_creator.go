package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// NewTaskInput holds the user supplied fields of a new task.
type NewTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
}

// TaskCreator defines the interface for creating tasks within a unit of work.
type TaskCreator interface {
	Create(ctx context.Context, uow domain.UnitOfWork, userID int64, input NewTaskInput) (domain.Task, error)
}

// TaskCreatorImpl is the implementation of the TaskCreator interface.
type TaskCreatorImpl struct {
	timeProvider domain.CurrentTimeProvider
}

// NewTaskCreatorImpl creates a new instance of TaskCreatorImpl.
func NewTaskCreatorImpl(timeProvider domain.CurrentTimeProvider) TaskCreatorImpl {
	return TaskCreatorImpl{timeProvider: timeProvider}
}

// Create validates and stores a new pending task owned by userID.
func (tci TaskCreatorImpl) Create(ctx context.Context, uow domain.UnitOfWork, userID int64, input NewTaskInput) (domain.Task, error) {
	now := tci.timeProvider.Now()

	task := domain.Task{
		UserID:      userID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Status:      domain.TaskStatus_PENDING,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return domain.Task{}, err
	}

	return uow.Task().CreateTask(ctx, task)
}

// InitTaskCreator initializes the TaskCreator and registers it in the dependency container.
type InitTaskCreator struct {
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the TaskCreator in the dependency container.
func (i InitTaskCreator) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[TaskCreator](NewTaskCreatorImpl(i.TimeProvider))
	return ctx, nil
}
