package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/usecases"
)

// UpdateTaskTool changes fields of one of the caller's tasks.
type UpdateTaskTool struct {
	uow          domain.UnitOfWork
	updater      usecases.TaskUpdater
	timeProvider domain.CurrentTimeProvider
}

// NewUpdateTaskTool creates a new instance of UpdateTaskTool.
func NewUpdateTaskTool(uow domain.UnitOfWork, updater usecases.TaskUpdater, timeProvider domain.CurrentTimeProvider) UpdateTaskTool {
	return UpdateTaskTool{
		uow:          uow,
		updater:      updater,
		timeProvider: timeProvider,
	}
}

// Definition returns the update_task schema.
func (t UpdateTaskTool) Definition() domain.ToolDefinition {
	return domain.NewToolDefinition(
		domain.ToolName_UpdateTask,
		"Update the title, description, status or due date of an existing task. Only the given fields change.",
		map[string]domain.ToolProperty{
			"task_id": {
				Type:        "integer",
				Description: "ID of the task to update.",
			},
			"title": {
				Type:        "string",
				Description: "New title.",
			},
			"description": {
				Type:        "string",
				Description: "New description.",
			},
			"status": {
				Type:        "string",
				Description: "New status.",
				Enum: []string{
					string(domain.TaskStatus_PENDING),
					string(domain.TaskStatus_IN_PROGRESS),
					string(domain.TaskStatus_COMPLETED),
				},
			},
			"due_date": {
				Type:        "string",
				Description: "New due date. An empty string removes it.",
			},
		},
		"task_id",
	)
}

// Execute applies the update.
func (t UpdateTaskTool) Execute(ctx context.Context, userID int64, args json.RawMessage) domain.ToolResult {
	params := struct {
		TaskID      taskIDArg `json:"task_id"`
		Title       *string   `json:"title"`
		Description *string   `json:"description"`
		Status      *string   `json:"status"`
		DueDate     *string   `json:"due_date"`
	}{}
	if err := unmarshalArgs(args, &params); err != nil {
		return invalidArguments(err)
	}
	if params.TaskID <= 0 {
		return domain.ToolFailure("Invalid arguments: task_id is required")
	}

	patch := usecases.TaskPatch{
		Title:       params.Title,
		Description: params.Description,
	}
	if params.Status != nil {
		status, err := domain.ParseTaskStatus(*params.Status)
		if err != nil {
			return failure("update task", err)
		}
		patch.Status = &status
	}
	if params.DueDate != nil {
		if strings.TrimSpace(*params.DueDate) == "" {
			patch.ClearDueDate = true
		} else {
			due, err := domain.ParseDueDate(*params.DueDate, t.timeProvider.Now())
			if err != nil {
				return failure("update task", err)
			}
			patch.DueDate = &due
		}
	}
	if patch.IsEmpty() {
		return domain.ToolFailure("No changes provided. Give at least one of title, description, status or due_date")
	}

	var task domain.Task
	err := t.uow.Execute(ctx, func(uow domain.UnitOfWork) error {
		updated, err := t.updater.Update(ctx, uow, userID, int64(params.TaskID), patch)
		if err != nil {
			return err
		}
		task = updated
		return nil
	})
	if err != nil {
		return failure("update task", err)
	}

	result := domain.ToolSuccess(fmt.Sprintf("Task '%s' updated successfully", task.Title))
	result.TaskID = taskIDPtr(task.ID)
	return result
}
