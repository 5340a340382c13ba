package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/usecases"
)

// AddTaskTool creates a task for the caller.
type AddTaskTool struct {
	uow          domain.UnitOfWork
	creator      usecases.TaskCreator
	timeProvider domain.CurrentTimeProvider
}

// NewAddTaskTool creates a new instance of AddTaskTool.
func NewAddTaskTool(uow domain.UnitOfWork, creator usecases.TaskCreator, timeProvider domain.CurrentTimeProvider) AddTaskTool {
	return AddTaskTool{
		uow:          uow,
		creator:      creator,
		timeProvider: timeProvider,
	}
}

// Definition returns the add_task schema.
func (t AddTaskTool) Definition() domain.ToolDefinition {
	return domain.NewToolDefinition(
		domain.ToolName_AddTask,
		"Create a new task for the current user.",
		map[string]domain.ToolProperty{
			"title": {
				Type:        "string",
				Description: "Short title of the task, at most 200 characters.",
			},
			"description": {
				Type:        "string",
				Description: "Optional longer description.",
			},
			"due_date": {
				Type:        "string",
				Description: "Optional due date, for example 2026-04-30 or tomorrow.",
			},
		},
		"title",
	)
}

// Execute creates the task.
func (t AddTaskTool) Execute(ctx context.Context, userID int64, args json.RawMessage) domain.ToolResult {
	params := struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		DueDate     string `json:"due_date"`
	}{}
	if err := unmarshalArgs(args, &params); err != nil {
		return invalidArguments(err)
	}
	if strings.TrimSpace(params.Title) == "" {
		return domain.ToolFailure("Invalid arguments: title is required")
	}

	input := usecases.NewTaskInput{
		Title:       params.Title,
		Description: params.Description,
	}
	if strings.TrimSpace(params.DueDate) != "" {
		due, err := domain.ParseDueDate(params.DueDate, t.timeProvider.Now())
		if err != nil {
			return failure("create task", err)
		}
		input.DueDate = &due
	}

	var task domain.Task
	err := t.uow.Execute(ctx, func(uow domain.UnitOfWork) error {
		created, err := t.creator.Create(ctx, uow, userID, input)
		if err != nil {
			return err
		}
		task = created
		return nil
	})
	if err != nil {
		return failure("create task", err)
	}

	result := domain.ToolSuccess(fmt.Sprintf("Task '%s' created successfully", task.Title))
	result.TaskID = taskIDPtr(task.ID)
	return result
}
