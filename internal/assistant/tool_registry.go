package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/cleitonmarx/symbiont-taskchat/internal/assistant/tools"
	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont-taskchat/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ToolRegistry maps tool names to their implementations. Aliases resolve to the
// canonical name before lookup.
type ToolRegistry struct {
	tools  map[domain.ToolName]domain.Tool
	logger *zap.Logger
}

// NewToolRegistry creates an empty registry.
func NewToolRegistry(logger *zap.Logger) *ToolRegistry {
	return &ToolRegistry{
		tools:  make(map[domain.ToolName]domain.Tool),
		logger: logger,
	}
}

// Register adds or replaces the tool stored under name.
func (r *ToolRegistry) Register(name domain.ToolName, tool domain.Tool) {
	r.tools[domain.CanonicalToolName(string(name))] = tool
}

// Definitions returns every tool definition sorted by name.
func (r *ToolRegistry) Definitions() []domain.ToolDefinition {
	defs := make([]domain.ToolDefinition, 0, len(r.tools))
	for _, tool := range r.tools {
		defs = append(defs, tool.Definition())
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Function.Name < defs[j].Function.Name
	})
	return defs
}

// Execute runs the named tool on behalf of userID. Unknown names and panicking
// tools produce a failed result.
func (r *ToolRegistry) Execute(ctx context.Context, name string, userID int64, args json.RawMessage) (result domain.ToolResult) {
	canonical := domain.CanonicalToolName(name)
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("tool", string(canonical)),
		telemetry.UserID(userID),
	))
	defer span.End()

	tool, ok := r.tools[canonical]
	if !ok {
		result = domain.ToolFailure(fmt.Sprintf("Tool %s not found", name))
		telemetry.RecordErrorAndStatus(span, fmt.Errorf("tool %s not found", name))
		usecases.RecordToolExecution(spanCtx, name, false)
		return result
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("tool panicked",
				zap.String("tool", string(canonical)),
				zap.Any("panic", rec),
			)
			result = domain.ToolFailure(fmt.Sprintf("Error executing tool %s", canonical))
			telemetry.RecordErrorAndStatus(span, fmt.Errorf("tool %s panicked: %v", canonical, rec))
		}
		usecases.RecordToolExecution(spanCtx, string(canonical), result.Success)
	}()

	result = tool.Execute(spanCtx, userID, args)
	if !result.Success {
		r.logger.Debug("tool reported failure",
			zap.String("tool", string(canonical)),
			zap.Int64("user_id", userID),
			zap.String("message", result.Message),
		)
	}
	return result
}

// InitToolRegistry builds the registry with every task tool and registers it.
type InitToolRegistry struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TaskCreator  usecases.TaskCreator       `resolve:""`
	TaskUpdater  usecases.TaskUpdater       `resolve:""`
	TaskDeleter  usecases.TaskDeleter       `resolve:""`
	ListTasks    usecases.ListTasks         `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *zap.Logger                `resolve:""`
}

// Initialize registers the ToolRegistry in the dependency container.
func (i InitToolRegistry) Initialize(ctx context.Context) (context.Context, error) {
	registry := NewToolRegistry(i.Logger)
	registry.Register(domain.ToolName_AddTask, tools.NewAddTaskTool(i.Uow, i.TaskCreator, i.TimeProvider))
	registry.Register(domain.ToolName_ListTasks, tools.NewListTasksTool(i.ListTasks))
	registry.Register(domain.ToolName_UpdateTask, tools.NewUpdateTaskTool(i.Uow, i.TaskUpdater, i.TimeProvider))
	registry.Register(domain.ToolName_DeleteTask, tools.NewDeleteTaskTool(i.Uow, i.TaskDeleter))
	registry.Register(domain.ToolName_CompleteTask, tools.NewCompleteTaskTool(i.Uow, i.TaskUpdater))

	depend.Register[domain.ToolRegistry](registry)
	return ctx, nil
}
