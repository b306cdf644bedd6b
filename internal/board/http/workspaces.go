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

type WorkspacesHandler struct {
	WorkspaceService *service.WorkspaceService
}

// HandleList godoc
//
//	@Summary		List Workspaces Endpoint
//	@Description	List every workspace. The current one is flagged in the response.
//	@Tags			Workspaces
//	@Produce		json
//	@Success		200	{array}		boardsdk.Workspace		"workspaces"
//	@Failure		500	{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/workspaces [get].
func (h *WorkspacesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	workspaces, err := h.WorkspaceService.List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("workspace list failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to list workspaces",
		})
		return
	}

	currentID := ""
	if current, err := h.WorkspaceService.Current(ctx); err == nil {
		currentID = current.ID
	}

	out := make([]boardsdk.Workspace, 0, len(workspaces))
	for _, ws := range workspaces {
		out = append(out, toWorkspaceDTO(ws, currentID))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCurrent godoc
//
//	@Summary		Current Workspace Endpoint
//	@Description	Return the workspace the board is currently scoped to
//	@Tags			Workspaces
//	@Produce		json
//	@Success		200	{object}	boardsdk.Workspace		"current workspace"
//	@Failure		404	{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/workspaces/current [get].
func (h *WorkspacesHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	current, err := h.WorkspaceService.Current(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, boardsdk.ErrorResponse{
				Error:            boardsdk.ErrorCodeNotFound,
				ErrorDescription: "No current workspace",
			})
			return
		}
		slogx.FromContext(ctx).Error("current workspace lookup failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to fetch current workspace",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWorkspaceDTO(current, current.ID))
}

// HandleCreate godoc
//
//	@Summary		Create Workspace Endpoint
//	@Description	Create a workspace and immediately switch the board to it
//	@Tags			Workspaces
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.CreateWorkspaceRequest	true	"New workspace"
//	@Success		201		{object}	boardsdk.Workspace				"created workspace"
//	@Failure		400		{object}	boardsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/workspaces [post].
func (h *WorkspacesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req boardsdk.CreateWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	ws, err := h.WorkspaceService.Add(ctx, service.AddWorkspaceParams{
		Name:        req.Name,
		Description: req.Description,
		MemberIDs:   req.MemberIDs,
	})
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
				Error:            boardsdk.ErrorCodeInvalidRequest,
				ErrorDescription: "name is required",
			})
			return
		}
		slogx.FromContext(ctx).Error("workspace create failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to create workspace",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toWorkspaceDTO(ws, ws.ID))
}

// HandleSelect godoc
//
//	@Summary		Select Workspace Endpoint
//	@Description	Switch the board's current workspace
//	@Tags			Workspaces
//	@Produce		json
//	@Param			id	path	string	true	"Workspace ID"
//	@Success		204	"workspace selected"
//	@Failure		404	{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/workspaces/{id}/select [post].
func (h *WorkspacesHandler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.WorkspaceService.Select(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, boardsdk.ErrorResponse{
				Error:            boardsdk.ErrorCodeNotFound,
				ErrorDescription: "Workspace not found",
			})
			return
		}
		slogx.FromContext(ctx).Error("workspace select failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to select workspace",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
