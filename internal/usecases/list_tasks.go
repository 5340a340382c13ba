package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultTaskPageSize is the page size used by the REST listing when none is given.
	DefaultTaskPageSize = 50
	// MaxTaskPageSize caps every task listing.
	MaxTaskPageSize = 100
)

// ListTasksParams holds the optional filters for listing tasks.
type ListTasksParams struct {
	Status *domain.TaskStatus
	Search string
	Limit  int
	Offset int
}

// ListTasks defines the interface for the ListTasks use case.
type ListTasks interface {
	Query(ctx context.Context, userID int64, params ListTasksParams) ([]domain.Task, error)
}

// ListTasksImpl is the implementation of the ListTasks use case.
type ListTasksImpl struct {
	taskRepo domain.TaskRepository
}

// NewListTasksImpl creates a new instance of ListTasksImpl.
func NewListTasksImpl(taskRepo domain.TaskRepository) ListTasksImpl {
	return ListTasksImpl{taskRepo: taskRepo}
}

// Query returns the user's tasks, newest first.
func (lti ListTasksImpl) Query(ctx context.Context, userID int64, params ListTasksParams) ([]domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.UserID(userID),
	))
	defer span.End()

	if params.Offset < 0 {
		err := domain.NewValidationErr("offset cannot be negative")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	tasks, err := lti.taskRepo.ListTasks(spanCtx, domain.ListTasksFilter{
		UserID: userID,
		Status: params.Status,
		Search: strings.TrimSpace(params.Search),
		Limit:  clampPageSize(params.Limit, DefaultTaskPageSize),
		Offset: params.Offset,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return tasks, nil
}

// clampPageSize returns def when limit is unset and never more than MaxTaskPageSize.
func clampPageSize(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return min(limit, MaxTaskPageSize)
}

// InitListTasks initializes the ListTasks use case and registers it in the dependency container.
type InitListTasks struct {
	TaskRepo domain.TaskRepository `resolve:""`
}

// Initialize registers the ListTasks use case.
func (i InitListTasks) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListTasks](NewListTasksImpl(i.TaskRepo))
	return ctx, nil
}
