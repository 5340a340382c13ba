package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/usecases"
)

// CompleteTaskTool marks a task as completed, or back to pending.
type CompleteTaskTool struct {
	uow     domain.UnitOfWork
	updater usecases.TaskUpdater
}

// NewCompleteTaskTool creates a new instance of CompleteTaskTool.
func NewCompleteTaskTool(uow domain.UnitOfWork, updater usecases.TaskUpdater) CompleteTaskTool {
	return CompleteTaskTool{
		uow:     uow,
		updater: updater,
	}
}

// Definition returns the complete_task schema.
func (t CompleteTaskTool) Definition() domain.ToolDefinition {
	return domain.NewToolDefinition(
		domain.ToolName_CompleteTask,
		"Mark a task as completed. Pass complete=false to mark it as incomplete again.",
		map[string]domain.ToolProperty{
			"task_id": {
				Type:        "integer",
				Description: "ID of the task.",
			},
			"complete": {
				Type:        "boolean",
				Description: "true marks the task completed (default), false marks it pending.",
			},
		},
		"task_id",
	)
}

// Execute changes the completion state. Completing a completed task succeeds.
func (t CompleteTaskTool) Execute(ctx context.Context, userID int64, args json.RawMessage) domain.ToolResult {
	params := struct {
		TaskID   taskIDArg `json:"task_id"`
		Complete *bool     `json:"complete"`
	}{}
	if err := unmarshalArgs(args, &params); err != nil {
		return invalidArguments(err)
	}
	if params.TaskID <= 0 {
		return domain.ToolFailure("Invalid arguments: task_id is required")
	}

	complete := params.Complete == nil || *params.Complete
	status := domain.TaskStatus_COMPLETED
	state := "completed"
	if !complete {
		status = domain.TaskStatus_PENDING
		state = "incomplete"
	}

	var task domain.Task
	err := t.uow.Execute(ctx, func(uow domain.UnitOfWork) error {
		updated, err := t.updater.Update(ctx, uow, userID, int64(params.TaskID), usecases.TaskPatch{Status: &status})
		if err != nil {
			return err
		}
		task = updated
		return nil
	})
	if err != nil {
		return failure("update task", err)
	}

	result := domain.ToolSuccess(fmt.Sprintf("Task '%s' marked as %s", task.Title, state))
	result.TaskID = taskIDPtr(task.ID)
	return result
}
