package assistant

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-taskchat/internal/assistant/tools"
	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryTasks is a TaskRepository kept in memory for end-to-end tool scenarios.
type memoryTasks struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]domain.Task
}

func newMemoryTasks() *memoryTasks {
	return &memoryTasks{tasks: map[int64]domain.Task{}}
}

func (m *memoryTasks) CreateTask(_ context.Context, task domain.Task) (domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	task.ID = m.nextID
	m.tasks[task.ID] = task
	return task, nil
}

func (m *memoryTasks) GetTask(_ context.Context, id int64) (domain.Task, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	task, ok := m.tasks[id]
	return task, ok, nil
}

func (m *memoryTasks) FindTaskByTitle(_ context.Context, userID int64, title string) (domain.Task, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var found *domain.Task
	for _, task := range m.tasks {
		if task.UserID == userID && task.Title == title && (found == nil || task.ID < found.ID) {
			found = &task
		}
	}
	if found == nil {
		return domain.Task{}, false, nil
	}
	return *found, true, nil
}

func (m *memoryTasks) ListTasks(_ context.Context, filter domain.ListTasksFilter) ([]domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := []domain.Task{}
	for _, task := range m.tasks {
		if task.UserID != filter.UserID {
			continue
		}
		if filter.Status != nil && task.Status != *filter.Status {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(task.Title), strings.ToLower(filter.Search)) {
			continue
		}
		result = append(result, task)
	}
	slices.SortFunc(result, func(a, b domain.Task) int { return int(b.ID - a.ID) })
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (m *memoryTasks) UpdateTask(_ context.Context, task domain.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks[task.ID] = task
	return nil
}

func (m *memoryTasks) DeleteTask(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tasks, id)
	return nil
}

// memoryUow runs every function directly against memoryTasks.
type memoryUow struct {
	tasks *memoryTasks
}

func (u memoryUow) User() domain.UserRepository                 { return nil }
func (u memoryUow) Task() domain.TaskRepository                 { return u.tasks }
func (u memoryUow) Conversation() domain.ConversationRepository { return nil }
func (u memoryUow) Message() domain.MessageRepository           { return nil }

func (u memoryUow) Execute(_ context.Context, fn func(uow domain.UnitOfWork) error) error {
	return fn(u)
}

func newScenarioRegistry(t *testing.T) (*ToolRegistry, *memoryTasks) {
	t.Helper()
	timeProvider := domain.NewMockCurrentTimeProvider(t)
	timeProvider.EXPECT().Now().Return(time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)).Maybe()

	store := newMemoryTasks()
	uow := memoryUow{tasks: store}
	creator := usecases.NewTaskCreatorImpl(timeProvider)
	updater := usecases.NewTaskUpdaterImpl(timeProvider)
	deleter := usecases.NewTaskDeleterImpl()

	registry := NewToolRegistry(zap.NewNop())
	registry.Register(domain.ToolName_AddTask, tools.NewAddTaskTool(uow, creator, timeProvider))
	registry.Register(domain.ToolName_ListTasks, tools.NewListTasksTool(usecases.NewListTasksImpl(store)))
	registry.Register(domain.ToolName_UpdateTask, tools.NewUpdateTaskTool(uow, updater, timeProvider))
	registry.Register(domain.ToolName_DeleteTask, tools.NewDeleteTaskTool(uow, deleter))
	registry.Register(domain.ToolName_CompleteTask, tools.NewCompleteTaskTool(uow, updater))
	return registry, store
}

func TestScenario_AddThenList(t *testing.T) {
	registry, _ := newScenarioRegistry(t)

	added := registry.Execute(t.Context(), "add_task", 1, json.RawMessage(`{"title":"Buy milk","due_date":"2026-02-01"}`))
	require.True(t, added.Success, added.Message)
	require.NotNil(t, added.TaskID)

	listed := registry.Execute(t.Context(), "list_tasks", 1, json.RawMessage(`{}`))
	require.True(t, listed.Success)
	require.Len(t, listed.Tasks, 1)
	assert.Equal(t, *added.TaskID, listed.Tasks[0].ID)
	assert.Equal(t, "Buy milk", listed.Tasks[0].Title)
	assert.Equal(t, domain.TaskStatus_PENDING, listed.Tasks[0].Status)
	require.NotNil(t, listed.Tasks[0].DueDate)
	assert.Equal(t, "2026-02-01", *listed.Tasks[0].DueDate)

	other := registry.Execute(t.Context(), "list_tasks", 2, json.RawMessage(`{}`))
	assert.True(t, other.Success)
	assert.Empty(t, other.Tasks)
}

func TestScenario_CompleteIsIdempotent(t *testing.T) {
	registry, store := newScenarioRegistry(t)
	added := registry.Execute(t.Context(), "add_task", 1, json.RawMessage(`{"title":"Write report"}`))
	require.True(t, added.Success)

	for range 2 {
		result := registry.Execute(t.Context(), "complete_task", 1, json.RawMessage(`{"task_id":1}`))
		assert.True(t, result.Success, result.Message)
		assert.Equal(t, "Task 'Write report' marked as completed", result.Message)
	}
	task, _, _ := store.GetTask(t.Context(), 1)
	assert.Equal(t, domain.TaskStatus_COMPLETED, task.Status)

	reopened := registry.Execute(t.Context(), "complete_task", 1, json.RawMessage(`{"task_id":1,"complete":false}`))
	assert.True(t, reopened.Success)
	task, _, _ = store.GetTask(t.Context(), 1)
	assert.Equal(t, domain.TaskStatus_PENDING, task.Status)
}

func TestScenario_DeleteThenNotFound(t *testing.T) {
	registry, _ := newScenarioRegistry(t)
	added := registry.Execute(t.Context(), "add_task", 1, json.RawMessage(`{"title":"Call mom"}`))
	require.True(t, added.Success)

	deleted := registry.Execute(t.Context(), "delete_task", 1, json.RawMessage(`{"task_id":1}`))
	assert.True(t, deleted.Success)
	assert.Equal(t, "Task with ID 1 deleted successfully", deleted.Message)

	again := registry.Execute(t.Context(), "delete_task", 1, json.RawMessage(`{"task_id":1}`))
	assert.False(t, again.Success)
	assert.Equal(t, "Task with ID 1 not found", again.Message)

	updated := registry.Execute(t.Context(), "update_task", 1, json.RawMessage(`{"task_id":1,"title":"x"}`))
	assert.False(t, updated.Success)
	assert.Equal(t, "Task with ID 1 not found", updated.Message)
}

func TestScenario_CrossUserLeavesTaskUnchanged(t *testing.T) {
	registry, store := newScenarioRegistry(t)
	added := registry.Execute(t.Context(), "add_task", 1, json.RawMessage(`{"title":"Private task"}`))
	require.True(t, added.Success)
	before, _, _ := store.GetTask(t.Context(), 1)

	calls := map[string]string{
		"update_task":   `{"task_id":1,"title":"hijacked"}`,
		"complete_task": `{"task_id":1}`,
		"delete_task":   `{"task_id":1}`,
	}
	for name, args := range calls {
		result := registry.Execute(t.Context(), name, 2, json.RawMessage(args))
		assert.False(t, result.Success, name)
		assert.Equal(t, usecases.ForeignTaskMessage, result.Message, name)
	}

	after, found, _ := store.GetTask(t.Context(), 1)
	require.True(t, found)
	assert.Equal(t, before, after)
}

func TestScenario_RuleAgent(t *testing.T) {
	registry, store := newScenarioRegistry(t)
	agent := NewRuleBasedAgent(registry)

	reply := agent.ProcessRequest(t.Context(), domain.AgentRequest{UserID: 1, Message: "Create a task to buy milk"})
	require.Len(t, reply.ToolCalls, 1)
	assert.Equal(t, "add_task", reply.ToolCalls[0].Name)
	assert.True(t, reply.ToolCalls[0].Result.Success)
	task, found, _ := store.GetTask(t.Context(), 1)
	require.True(t, found)
	assert.Equal(t, "buy milk", task.Title)

	reply = agent.ProcessRequest(t.Context(), domain.AgentRequest{UserID: 1, Message: "Just saying hi"})
	assert.Empty(t, reply.ToolCalls)
	assert.Equal(t, "I understand you said: 'Just saying hi'. How can I help you with your tasks today?", reply.Response)

	reply = agent.ProcessRequest(t.Context(), domain.AgentRequest{UserID: 1, Message: "complete task 1"})
	require.Len(t, reply.ToolCalls, 1)
	assert.Equal(t, "complete_task", reply.ToolCalls[0].Name)
	task, _, _ = store.GetTask(t.Context(), 1)
	assert.Equal(t, domain.TaskStatus_COMPLETED, task.Status)
}
