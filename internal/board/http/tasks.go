package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/service"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

type TasksHandler struct {
	TaskService *service.TaskService
	TeamService *service.TeamService
}

func (h *TasksHandler) taskDTO(r *http.Request, t domain.Task) boardsdk.Task {
	return toTaskDTO(t, h.TeamService.ResolveName(r.Context(), t.AssigneeID))
}

// HandleList godoc
//
//	@Summary		List Tasks Endpoint
//	@Description	List the current workspace's tasks. With a query parameter the list is filtered by a case-insensitive match on title, description or assignee name.
//	@Tags			Tasks
//	@Produce		json
//	@Param			query	query		string					false	"Search query"
//	@Success		200		{array}		boardsdk.Task			"tasks"
//	@Failure		500		{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tasks, err := h.TaskService.Search(ctx, r.URL.Query().Get("query"))
	if err != nil {
		slogx.FromContext(ctx).Error("task list failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to list tasks",
		})
		return
	}

	out := make([]boardsdk.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, h.taskDTO(r, t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary		Create Task Endpoint
//	@Description	Create a task. Status defaults to "To Do", priority to "Medium" and workspace to the current one. The assignee is a weak reference and is not validated against the roster.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.CreateTaskRequest	true	"New task"
//	@Success		201		{object}	boardsdk.Task				"created task"
//	@Failure		400		{object}	boardsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	boardsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/tasks [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req boardsdk.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	task, err := h.TaskService.Create(ctx, service.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.Status(req.Status),
		Priority:    domain.Priority(req.Priority),
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
		WorkspaceID: req.WorkspaceID,
		Subtasks:    req.Subtasks,
	})
	if err != nil {
		h.writeTaskError(w, r, err, "Failed to create task")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, h.taskDTO(r, task))
}

// HandleGet godoc
//
//	@Summary		Get Task Endpoint
//	@Description	Fetch a single task by ID
//	@Tags			Tasks
//	@Produce		json
//	@Param			id	path		string					true	"Task ID"
//	@Success		200	{object}	boardsdk.Task			"task"
//	@Failure		404	{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/tasks/{id} [get].
func (h *TasksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	task, err := h.TaskService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeTaskError(w, r, err, "Failed to fetch task")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.taskDTO(r, task))
}

// HandleUpdate godoc
//
//	@Summary		Update Task Endpoint
//	@Description	Apply a partial edit to a task. Only fields present in the body are changed; a present subtasks array replaces the whole checklist.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Task ID"
//	@Param			request	body		boardsdk.UpdateTaskRequest	true	"Task edit"
//	@Success		200		{object}	boardsdk.Task				"updated task"
//	@Failure		400		{object}	boardsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	boardsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/tasks/{id} [patch].
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req boardsdk.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	update := service.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
	}
	if req.Status != nil {
		s := domain.Status(*req.Status)
		update.Status = &s
	}
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		update.Priority = &p
	}
	if req.Subtasks != nil {
		subtasks := make([]domain.Subtask, 0, len(req.Subtasks))
		for _, st := range req.Subtasks {
			subtasks = append(subtasks, domain.Subtask{
				ID:        st.ID,
				Title:     st.Title,
				Completed: st.Completed,
			})
		}
		update.Subtasks = subtasks
	}

	task, err := h.TaskService.Update(ctx, r.PathValue("id"), update)
	if err != nil {
		h.writeTaskError(w, r, err, "Failed to update task")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, h.taskDTO(r, task))
}

// HandleMove godoc
//
//	@Summary		Move Task Endpoint
//	@Description	Move a task to another board column. Any column is reachable from any other. A real move stamps the task's last-activity record with the acting user; moving to the current column is a no-op.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Task ID"
//	@Param			request	body		boardsdk.MoveTaskRequest	true	"Target column"
//	@Success		200		{object}	boardsdk.Task			"moved task"
//	@Failure		400		{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/tasks/{id}/move [post].
func (h *TasksHandler) HandleMove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req boardsdk.MoveTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	actor := httpx.UserNameFromCtx(ctx)
	task, err := h.TaskService.Move(ctx, r.PathValue("id"), domain.Status(req.Status), actor)
	if err != nil {
		h.writeTaskError(w, r, err, "Failed to move task")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, h.taskDTO(r, task))
}

// HandleDelete godoc
//
//	@Summary		Delete Task Endpoint
//	@Description	Remove a task. Notifications referencing the task keep their task reference.
//	@Tags			Tasks
//	@Produce		json
//	@Param			id	path	string	true	"Task ID"
//	@Success		204	"task removed"
//	@Failure		404	{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/tasks/{id} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.TaskService.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeTaskError(w, r, err, "Failed to delete task")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TasksHandler) writeTaskError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrTitleRequired):
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "title is required",
		})
	case errors.Is(err, service.ErrInvalidStatus):
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid status",
		})
	case errors.Is(err, service.ErrInvalidPriority):
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid priority",
		})
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeNotFound,
			ErrorDescription: "Task or workspace not found",
		})
	default:
		slogx.FromContext(r.Context()).Error("task operation failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeServerError,
			ErrorDescription: fallback,
		})
	}
}
