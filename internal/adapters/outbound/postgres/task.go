package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	taskFields = []string{
		"id",
		"user_id",
		"title",
		"description",
		"status",
		"due_date",
		"created_at",
		"updated_at",
	}

	likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
)

// TaskRepository implements the domain.TaskRepository interface using PostgreSQL as the storage backend.
type TaskRepository struct {
	sb squirrel.StatementBuilderType
}

// NewTaskRepository creates a new instance of TaskRepository.
func NewTaskRepository(br squirrel.BaseRunner) TaskRepository {
	return TaskRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateTask inserts a task and returns it with the generated ID.
func (tr TaskRepository) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.UserID(task.UserID),
	))
	defer span.End()

	err := tr.sb.
		Insert("tasks").
		Columns(taskFields[1:]...).
		Values(
			task.UserID,
			task.Title,
			task.Description,
			task.Status,
			task.DueDate,
			task.CreatedAt,
			task.UpdatedAt,
		).
		Suffix("RETURNING id").
		QueryRowContext(spanCtx).
		Scan(&task.ID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	return task, nil
}

// GetTask retrieves a task by its ID.
func (tr TaskRepository) GetTask(ctx context.Context, id int64) (domain.Task, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("task_id", id),
	))
	defer span.End()

	task, err := scanTask(tr.sb.
		Select(taskFields...).
		From("tasks").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		QueryRowContext(spanCtx))
	if errors.Is(err, sql.ErrNoRows) {
		telemetry.RecordErrorAndStatus(span, nil)
		return domain.Task{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, false, err
	}

	return task, true, nil
}

// FindTaskByTitle returns the oldest task of the user with exactly the given title.
func (tr TaskRepository) FindTaskByTitle(ctx context.Context, userID int64, title string) (domain.Task, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.UserID(userID),
	))
	defer span.End()

	task, err := scanTask(tr.sb.
		Select(taskFields...).
		From("tasks").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"title": title}).
		OrderBy("id ASC").
		Limit(1).
		QueryRowContext(spanCtx))
	if errors.Is(err, sql.ErrNoRows) {
		telemetry.RecordErrorAndStatus(span, nil)
		return domain.Task{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, false, err
	}

	return task, true, nil
}

// ListTasks lists the tasks matching the filter ordered from newest to oldest.
func (tr TaskRepository) ListTasks(ctx context.Context, filter domain.ListTasksFilter) ([]domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.UserID(filter.UserID),
		attribute.Int("limit", filter.Limit),
		attribute.Int("offset", filter.Offset),
	))
	defer span.End()

	if filter.Limit <= 0 {
		err := domain.NewValidationErr("limit must be greater than 0")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	qry := tr.sb.
		Select(taskFields...).
		From("tasks").
		Where(squirrel.Eq{"user_id": filter.UserID})

	if filter.Status != nil {
		qry = qry.Where(squirrel.Eq{"status": *filter.Status})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(search) + "%"
		qry = qry.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	qry = qry.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit))
	if filter.Offset > 0 {
		qry = qry.Offset(uint64(filter.Offset))
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	tasks := []domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return tasks, nil
}

// UpdateTask updates the mutable fields of an existing task. The owner is never rewritten.
func (tr TaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("task_id", task.ID),
	))
	defer span.End()

	_, err := tr.sb.
		Update("tasks").
		Set("title", task.Title).
		Set("description", task.Description).
		Set("status", task.Status).
		Set("due_date", task.DueDate).
		Set("updated_at", task.UpdatedAt).
		Where(squirrel.Eq{"id": task.ID}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// DeleteTask deletes a task by its ID.
func (tr TaskRepository) DeleteTask(ctx context.Context, id int64) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("task_id", id),
	))
	defer span.End()

	_, err := tr.sb.
		Delete("tasks").
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

func scanTask(row squirrel.RowScanner) (domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.DueDate,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	return task, err
}

// InitTaskRepository is a Symbiont initializer for TaskRepository.
type InitTaskRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the TaskRepository in the dependency container.
func (tr InitTaskRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.TaskRepository](NewTaskRepository(tr.DB))
	return ctx, nil
}
