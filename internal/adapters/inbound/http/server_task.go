package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/usecases"
	"go.uber.org/zap"
)

// List the current user's tasks
// (GET /api/v1/tasks)
func (api TaskChatServer) ListTasks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := usecases.ListTasksParams{
		Search: query.Get("search"),
	}
	if raw := query.Get("status"); raw != "" {
		status, err := domain.ParseTaskStatus(raw)
		if err != nil {
			respondError(w, toError(err))
			return
		}
		params.Status = &status
	}
	var ok bool
	if params.Limit, ok = queryInt(w, query.Get("limit"), "limit"); !ok {
		return
	}
	if params.Offset, ok = queryInt(w, query.Get("offset"), "offset"); !ok {
		return
	}

	user := currentUser(r.Context())
	tasks, err := api.ListTasksUseCase.Query(r.Context(), user.ID, params)
	if err != nil {
		api.Logger.Error("listing tasks failed", zap.Error(err), zap.Int64("user_id", user.ID))
		respondError(w, toError(err))
		return
	}

	resp := ListTasksResp{Items: make([]Task, 0, len(tasks))}
	for _, t := range tasks {
		resp.Items = append(resp.Items, toTask(t))
	}
	respondJSON(w, http.StatusOK, resp)
}

// Create a task
// (POST /api/v1/tasks)
func (api TaskChatServer) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := usecases.NewTaskInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.DueDate != nil && strings.TrimSpace(*req.DueDate) != "" {
		dueDate, err := domain.ParseDueDate(*req.DueDate, api.TimeProvider.Now())
		if err != nil {
			respondError(w, toError(err))
			return
		}
		input.DueDate = &dueDate
	}

	user := currentUser(r.Context())
	task, err := api.CreateTaskUseCase.Execute(r.Context(), user.ID, input)
	if err != nil {
		api.Logger.Debug("creating task failed", zap.Error(err), zap.Int64("user_id", user.ID))
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toTask(task))
}

// Get a task
// (GET /api/v1/tasks/{task_id})
func (api TaskChatServer) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathTaskID(w, r)
	if !ok {
		return
	}

	task, err := api.GetTaskUseCase.Query(r.Context(), currentUser(r.Context()).ID, taskID)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toTask(task))
}

// Update a task
// (PUT /api/v1/tasks/{task_id})
func (api TaskChatServer) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathTaskID(w, r)
	if !ok {
		return
	}
	var req UpdateTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	patch := usecases.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status, err := domain.ParseTaskStatus(*req.Status)
		if err != nil {
			respondError(w, toError(err))
			return
		}
		patch.Status = &status
	}
	if req.DueDate != nil {
		if strings.TrimSpace(*req.DueDate) == "" {
			patch.ClearDueDate = true
		} else {
			dueDate, err := domain.ParseDueDate(*req.DueDate, api.TimeProvider.Now())
			if err != nil {
				respondError(w, toError(err))
				return
			}
			patch.DueDate = &dueDate
		}
	}

	api.updateTask(w, r, taskID, patch)
}

// Delete a task
// (DELETE /api/v1/tasks/{task_id})
func (api TaskChatServer) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathTaskID(w, r)
	if !ok {
		return
	}

	if err := api.DeleteTaskUseCase.Execute(r.Context(), currentUser(r.Context()).ID, taskID); err != nil {
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Set the status of a task
// (PATCH /api/v1/tasks/{task_id}/status)
func (api TaskChatServer) SetTaskStatus(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathTaskID(w, r)
	if !ok {
		return
	}
	var req TaskStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	status, err := domain.ParseTaskStatus(req.Status)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	api.updateTask(w, r, taskID, usecases.TaskPatch{Status: &status})
}

// Mark a task as completed
// (PATCH /api/v1/tasks/{task_id}/complete)
func (api TaskChatServer) CompleteTask(w http.ResponseWriter, r *http.Request) {
	api.setStatus(w, r, domain.TaskStatus_COMPLETED)
}

// Mark a task as pending
// (PATCH /api/v1/tasks/{task_id}/pending)
func (api TaskChatServer) MarkTaskPending(w http.ResponseWriter, r *http.Request) {
	api.setStatus(w, r, domain.TaskStatus_PENDING)
}

func (api TaskChatServer) setStatus(w http.ResponseWriter, r *http.Request, status domain.TaskStatus) {
	taskID, ok := pathTaskID(w, r)
	if !ok {
		return
	}
	api.updateTask(w, r, taskID, usecases.TaskPatch{Status: &status})
}

func (api TaskChatServer) updateTask(w http.ResponseWriter, r *http.Request, taskID int64, patch usecases.TaskPatch) {
	task, err := api.UpdateTaskUseCase.Execute(r.Context(), currentUser(r.Context()).ID, taskID, patch)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toTask(task))
}

func pathTaskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("task_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, newErrorResp(BADREQUEST, fmt.Sprintf("invalid task_id '%s'", raw)))
		return 0, false
	}
	return id, true
}

func queryInt(w http.ResponseWriter, raw, name string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, newErrorResp(BADREQUEST, fmt.Sprintf("invalid %s '%s'", name, raw)))
		return 0, false
	}
	return v, true
}
