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

type MembersHandler struct {
	TeamService *service.TeamService
}

// HandleList godoc
//
//	@Summary		List Team Members Endpoint
//	@Description	List the roster. With a query parameter the list is filtered by a case-insensitive match on name or email.
//	@Tags			Team
//	@Produce		json
//	@Param			query	query		string					false	"Search query"
//	@Success		200		{array}		boardsdk.TeamMember		"members"
//	@Failure		500		{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/members [get].
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	members, err := h.TeamService.Search(ctx, r.URL.Query().Get("query"))
	if err != nil {
		slogx.FromContext(ctx).Error("member list failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to list members",
		})
		return
	}

	out := make([]boardsdk.TeamMember, 0, len(members))
	for _, m := range members {
		out = append(out, toMemberDTO(m))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary		Add Team Member Endpoint
//	@Description	Add a member to the roster. Status defaults to "Pending". This is an admin-only operation.
//	@Tags			Team
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.CreateMemberRequest	true	"New member"
//	@Success		201		{object}	boardsdk.TeamMember				"created member"
//	@Failure		400		{object}	boardsdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	boardsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/members [post].
func (h *MembersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req boardsdk.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	member, err := h.TeamService.Add(ctx, service.AddMemberParams{
		Name:   req.Name,
		Email:  req.Email,
		Role:   domain.Role(req.Role),
		Status: domain.MemberStatus(req.Status),
	})
	if err != nil {
		h.writeMemberError(w, r, err, "Failed to add member")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toMemberDTO(member))
}

// HandleUpdate godoc
//
//	@Summary		Update Team Member Endpoint
//	@Description	Apply a partial edit to a roster member. This is an admin-only operation.
//	@Tags			Team
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Member ID"
//	@Param			request	body		boardsdk.UpdateMemberRequest	true	"Member edit"
//	@Success		200		{object}	boardsdk.TeamMember				"updated member"
//	@Failure		400		{object}	boardsdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	boardsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/members/{id} [patch].
func (h *MembersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req boardsdk.UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	update := service.MemberUpdate{
		Name:  req.Name,
		Email: req.Email,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		update.Role = &role
	}
	if req.Status != nil {
		status := domain.MemberStatus(*req.Status)
		update.Status = &status
	}

	member, err := h.TeamService.Update(ctx, r.PathValue("id"), update)
	if err != nil {
		h.writeMemberError(w, r, err, "Failed to update member")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMemberDTO(member))
}

// HandleDelete godoc
//
//	@Summary		Remove Team Member Endpoint
//	@Description	Remove a member from the roster. Tasks assigned to the member keep their assignee reference and resolve to "Unassigned". This is an admin-only operation.
//	@Tags			Team
//	@Produce		json
//	@Param			id	path	string	true	"Member ID"
//	@Success		204	"member removed"
//	@Failure		404	{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/members/{id} [delete].
func (h *MembersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.TeamService.Remove(r.Context(), r.PathValue("id")); err != nil {
		h.writeMemberError(w, r, err, "Failed to remove member")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MembersHandler) writeMemberError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNameRequired):
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "name is required",
		})
	case errors.Is(err, service.ErrInvalidRole):
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid role",
		})
	case errors.Is(err, service.ErrInvalidMemberStatus):
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid member status",
		})
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeNotFound,
			ErrorDescription: "Member not found",
		})
	default:
		slogx.FromContext(r.Context()).Error("member operation failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeServerError,
			ErrorDescription: fallback,
		})
	}
}
