package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/board/service"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

type AssistantHandler struct {
	AssistantService *service.AssistantService
	TeamService      *service.TeamService
}

// HandleAsk godoc
//
//	@Summary		Assistant Endpoint
//	@Description	Send a prompt to the assistant. Mode "generate" returns a task suggestion derived from the prompt, "summarize" a stand-up style summary of the current workspace, "suggest" canned next steps.
//	@Tags			Assistant
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.AssistantRequest	true	"Prompt"
//	@Success		200		{object}	boardsdk.AssistantResponse	"message, suggestion"
//	@Failure		400		{object}	boardsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/assistant [post].
func (h *AssistantHandler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req boardsdk.AssistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	resp, err := h.AssistantService.Ask(ctx, service.AssistantMode(req.Mode), req.Prompt)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAssistantMode):
			httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
				Error:            boardsdk.ErrorCodeInvalidRequest,
				ErrorDescription: "mode must be generate, summarize or suggest",
			})
		case errors.Is(err, service.ErrPromptRequired):
			httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
				Error:            boardsdk.ErrorCodeInvalidRequest,
				ErrorDescription: "prompt is required",
			})
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, boardsdk.ErrorResponse{
				Error:            boardsdk.ErrorCodeNotFound,
				ErrorDescription: "No current workspace",
			})
		default:
			slogx.FromContext(ctx).Error("assistant request failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
				Error:            boardsdk.ErrorCodeServerError,
				ErrorDescription: "Assistant request failed",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.AssistantResponse{
		Message:    resp.Message,
		Suggestion: toSuggestionDTO(resp.Suggestion),
	})
}

// HandleApply godoc
//
//	@Summary		Apply Suggestion Endpoint
//	@Description	Create the task the assistant suggested. The task lands in the current workspace's "To Do" column with no assignee.
//	@Tags			Assistant
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.ApplySuggestionRequest	true	"Suggestion"
//	@Success		201		{object}	boardsdk.Task					"created task"
//	@Failure		400		{object}	boardsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/assistant/apply [post].
func (h *AssistantHandler) HandleApply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req boardsdk.ApplySuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	task, err := h.AssistantService.Apply(ctx, service.TaskSuggestion{
		Title:       req.Suggestion.Title,
		Description: req.Suggestion.Description,
		DueDate:     req.Suggestion.DueDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired):
			httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
				Error:            boardsdk.ErrorCodeInvalidRequest,
				ErrorDescription: "suggestion title is required",
			})
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, boardsdk.ErrorResponse{
				Error:            boardsdk.ErrorCodeNotFound,
				ErrorDescription: "No current workspace",
			})
		default:
			slogx.FromContext(ctx).Error("apply suggestion failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
				Error:            boardsdk.ErrorCodeServerError,
				ErrorDescription: "Failed to create task",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toTaskDTO(task, h.TeamService.ResolveName(ctx, task.AssigneeID)))
}
