package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxTaskTitleLength is the maximum number of characters in a task title.
	MaxTaskTitleLength = 200
	// MaxTaskDescriptionLength is the maximum number of characters in a task description.
	MaxTaskDescriptionLength = 1000
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	// TaskStatus_PENDING indicates that work on the task has not started.
	TaskStatus_PENDING TaskStatus = "pending"
	// TaskStatus_IN_PROGRESS indicates that the task is being worked on.
	TaskStatus_IN_PROGRESS TaskStatus = "in_progress"
	// TaskStatus_COMPLETED indicates that the task is done.
	TaskStatus_COMPLETED TaskStatus = "completed"
)

// IsValid reports whether s is one of the known task statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatus_PENDING, TaskStatus_IN_PROGRESS, TaskStatus_COMPLETED:
		return true
	}
	return false
}

// ParseTaskStatus converts a raw string into a TaskStatus.
func ParseTaskStatus(raw string) (TaskStatus, error) {
	status := TaskStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !status.IsValid() {
		return "", NewValidationErr(fmt.Sprintf(
			"invalid status '%s': must be one of pending, in_progress, completed", raw,
		))
	}
	return status, nil
}

// Task represents a to-do item owned by a single user.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Status      TaskStatus
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the task invariants enforced before any write.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationErr("title cannot be empty")
	}
	if utf8.RuneCountInString(t.Title) > MaxTaskTitleLength {
		return NewValidationErr(fmt.Sprintf("title cannot exceed %d characters", MaxTaskTitleLength))
	}
	if utf8.RuneCountInString(t.Description) > MaxTaskDescriptionLength {
		return NewValidationErr(fmt.Sprintf("description cannot exceed %d characters", MaxTaskDescriptionLength))
	}
	if !t.Status.IsValid() {
		return NewValidationErr(fmt.Sprintf("invalid status '%s'", t.Status))
	}
	if t.UserID <= 0 {
		return NewValidationErr("task must belong to a user")
	}
	return nil
}

// IsOwnedBy reports whether the task belongs to the given user.
func (t Task) IsOwnedBy(userID int64) bool {
	return t.UserID == userID
}

// ListTasksFilter narrows the tasks returned by TaskRepository.ListTasks.
type ListTasksFilter struct {
	UserID int64
	Status *TaskStatus
	// Search matches title or description, case-insensitively.
	Search string
	Limit  int
	Offset int
}

// TaskRepository defines the interface for interacting with tasks in the data store.
type TaskRepository interface {
	// CreateTask stores a new task and returns it with the generated ID.
	CreateTask(ctx context.Context, task Task) (Task, error)

	// GetTask retrieves a task by its identifier.
	GetTask(ctx context.Context, id int64) (Task, bool, error)

	// FindTaskByTitle returns the first task (lowest ID) of the user with exactly the given title.
	FindTaskByTitle(ctx context.Context, userID int64, title string) (Task, bool, error)

	// ListTasks returns the tasks matching the filter, newest first.
	ListTasks(ctx context.Context, filter ListTasksFilter) ([]Task, error)

	// UpdateTask persists the mutable fields of an existing task.
	UpdateTask(ctx context.Context, task Task) error

	// DeleteTask removes a task by its identifier.
	DeleteTask(ctx context.Context, id int64) error
}
