package domain

import (
	"context"
	"encoding/json"
	"time"
)

// ToolName is the canonical identifier of a tool exposed to agents.
type ToolName string

const (
	ToolName_AddTask      ToolName = "add_task"
	ToolName_ListTasks    ToolName = "list_tasks"
	ToolName_UpdateTask   ToolName = "update_task"
	ToolName_DeleteTask   ToolName = "delete_task"
	ToolName_CompleteTask ToolName = "complete_task"
)

// toolAliases maps alternate tool names onto their canonical name.
var toolAliases = map[string]ToolName{
	"todo_create_tool":   ToolName_AddTask,
	"create_task":        ToolName_AddTask,
	"todo_search_tool":   ToolName_ListTasks,
	"search_tasks":       ToolName_ListTasks,
	"todo_update_tool":   ToolName_UpdateTask,
	"todo_delete_tool":   ToolName_DeleteTask,
	"todo_complete_tool": ToolName_CompleteTask,
}

// CanonicalToolName resolves aliases to their canonical name. Unknown names are returned unchanged.
func CanonicalToolName(name string) ToolName {
	if canonical, ok := toolAliases[name]; ok {
		return canonical
	}
	return ToolName(name)
}

// ToolProperty describes one parameter of a tool.
type ToolProperty struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}

// ToolParameters is the JSON-Schema object describing a tool's arguments.
type ToolParameters struct {
	Type       string                  `json:"type"`
	Properties map[string]ToolProperty `json:"properties"`
	Required   []string                `json:"required"`
}

// ToolFunction carries the name, description and parameter schema of a tool.
type ToolFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  ToolParameters `json:"parameters"`
}

// ToolDefinition is a tool in the shape expected by function-calling model APIs.
type ToolDefinition struct {
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`
}

// NewToolDefinition builds a function-typed ToolDefinition.
func NewToolDefinition(name ToolName, description string, properties map[string]ToolProperty, required ...string) ToolDefinition {
	if properties == nil {
		properties = map[string]ToolProperty{}
	}
	if required == nil {
		required = []string{}
	}
	return ToolDefinition{
		Type: "function",
		Function: ToolFunction{
			Name:        string(name),
			Description: description,
			Parameters: ToolParameters{
				Type:       "object",
				Properties: properties,
				Required:   required,
			},
		},
	}
}

// ToolTask is the task representation returned by tools.
type ToolTask struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	DueDate     *string    `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewToolTask maps a Task into its tool representation.
func NewToolTask(t Task) ToolTask {
	tt := ToolTask{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.DueDate != nil {
		d := t.DueDate.Format(time.DateOnly)
		tt.DueDate = &d
	}
	return tt
}

// ToolResult is the outcome of a tool execution.
type ToolResult struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	TaskID  *int64     `json:"task_id,omitempty"`
	Tasks   []ToolTask `json:"tasks,omitzero"`
}

// ToolSuccess builds a successful ToolResult.
func ToolSuccess(message string) ToolResult {
	return ToolResult{Success: true, Message: message}
}

// ToolFailure builds a failed ToolResult.
func ToolFailure(message string) ToolResult {
	return ToolResult{Success: false, Message: message}
}

// Tool is a single named operation against the task store.
type Tool interface {
	// Definition returns the tool's name, description and parameter schema.
	Definition() ToolDefinition
	// Execute runs the tool on behalf of userID. Failures are reported in the result.
	Execute(ctx context.Context, userID int64, args json.RawMessage) ToolResult
}

// ToolRegistry is the catalogue and dispatcher of tools.
type ToolRegistry interface {
	// Register adds or replaces a tool under the given name.
	Register(name ToolName, tool Tool)
	// Definitions returns every registered tool definition ordered by name.
	Definitions() []ToolDefinition
	// Execute dispatches to the tool registered under name or one of its aliases.
	Execute(ctx context.Context, name string, userID int64, args json.RawMessage) ToolResult
}
