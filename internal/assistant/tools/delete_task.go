package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/usecases"
)

// DeleteTaskTool removes one of the caller's tasks, addressed by id or by exact title.
type DeleteTaskTool struct {
	uow     domain.UnitOfWork
	deleter usecases.TaskDeleter
}

// NewDeleteTaskTool creates a new instance of DeleteTaskTool.
func NewDeleteTaskTool(uow domain.UnitOfWork, deleter usecases.TaskDeleter) DeleteTaskTool {
	return DeleteTaskTool{
		uow:     uow,
		deleter: deleter,
	}
}

// Definition returns the delete_task schema.
func (t DeleteTaskTool) Definition() domain.ToolDefinition {
	return domain.NewToolDefinition(
		domain.ToolName_DeleteTask,
		"Delete a task by ID, or by its exact title when the ID is unknown.",
		map[string]domain.ToolProperty{
			"task_id": {
				Type:        "integer",
				Description: "ID of the task to delete.",
			},
			"title": {
				Type:        "string",
				Description: "Exact title of the task to delete. The oldest match is deleted.",
			},
		},
	)
}

// Execute deletes the task.
func (t DeleteTaskTool) Execute(ctx context.Context, userID int64, args json.RawMessage) domain.ToolResult {
	params := struct {
		TaskID taskIDArg `json:"task_id"`
		Title  string    `json:"title"`
	}{}
	if err := unmarshalArgs(args, &params); err != nil {
		return invalidArguments(err)
	}
	title := strings.TrimSpace(params.Title)
	if params.TaskID <= 0 && title == "" {
		return domain.ToolFailure("Either task_id or title must be provided")
	}

	var deleted domain.Task
	err := t.uow.Execute(ctx, func(uow domain.UnitOfWork) error {
		taskID := int64(params.TaskID)
		if taskID <= 0 {
			task, found, err := uow.Task().FindTaskByTitle(ctx, userID, title)
			if err != nil {
				return err
			}
			if !found {
				return domain.NewNotFoundErr(fmt.Sprintf("Task with title '%s' not found", title))
			}
			taskID = task.ID
		}

		task, err := t.deleter.Delete(ctx, uow, userID, taskID)
		if err != nil {
			return err
		}
		deleted = task
		return nil
	})
	if err != nil {
		return failure("delete task", err)
	}

	result := domain.ToolSuccess(fmt.Sprintf("Task with ID %d deleted successfully", deleted.ID))
	result.TaskID = taskIDPtr(deleted.ID)
	return result
}
