package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/usecases"
)

// DefaultListLimit is the number of tasks returned when the caller gives no limit.
const DefaultListLimit = 10

// ListTasksTool lists the caller's tasks.
type ListTasksTool struct {
	lister usecases.ListTasks
}

// NewListTasksTool creates a new instance of ListTasksTool.
func NewListTasksTool(lister usecases.ListTasks) ListTasksTool {
	return ListTasksTool{lister: lister}
}

// Definition returns the list_tasks schema.
func (t ListTasksTool) Definition() domain.ToolDefinition {
	return domain.NewToolDefinition(
		domain.ToolName_ListTasks,
		"List the current user's tasks, newest first. Optionally filter by status or by a search term matched against title and description.",
		map[string]domain.ToolProperty{
			"status": {
				Type:        "string",
				Description: "Only return tasks with this status.",
				Enum: []string{
					string(domain.TaskStatus_PENDING),
					string(domain.TaskStatus_IN_PROGRESS),
					string(domain.TaskStatus_COMPLETED),
				},
			},
			"search": {
				Type:        "string",
				Description: "Case-insensitive text to look for in title or description.",
			},
			"limit": {
				Type:        "integer",
				Description: "Maximum number of tasks to return (default 10, max 100).",
			},
		},
	)
}

// Execute lists the tasks.
func (t ListTasksTool) Execute(ctx context.Context, userID int64, args json.RawMessage) domain.ToolResult {
	params := struct {
		Status string `json:"status"`
		Search string `json:"search"`
		Limit  int    `json:"limit"`
	}{}
	if err := unmarshalArgs(args, &params); err != nil {
		return invalidArguments(err)
	}

	query := usecases.ListTasksParams{
		Search: params.Search,
		Limit:  params.Limit,
	}
	if query.Limit <= 0 {
		query.Limit = DefaultListLimit
	}
	if strings.TrimSpace(params.Status) != "" {
		status, err := domain.ParseTaskStatus(params.Status)
		if err != nil {
			return failure("list tasks", err)
		}
		query.Status = &status
	}

	tasks, err := t.lister.Query(ctx, userID, query)
	if err != nil {
		return failure("list tasks", err)
	}

	result := domain.ToolSuccess(fmt.Sprintf("Found %d task(s)", len(tasks)))
	result.Tasks = make([]domain.ToolTask, 0, len(tasks))
	for _, task := range tasks {
		result.Tasks = append(result.Tasks, domain.NewToolTask(task))
	}
	return result
}
