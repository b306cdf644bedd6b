package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/board/service"
	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

type ActivityHandler struct {
	ActivityService *service.ActivityService
}

// HandleList godoc
//
//	@Summary		Activity Feed Endpoint
//	@Description	List the activity feed, newest first
//	@Tags			Activity
//	@Produce		json
//	@Success		200	{array}		boardsdk.Activity		"activity entries"
//	@Failure		500	{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/activity [get].
func (h *ActivityHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.ActivityService.List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("activity list failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to list activity",
		})
		return
	}

	out := make([]boardsdk.Activity, 0, len(entries))
	for _, a := range entries {
		out = append(out, toActivityDTO(a))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleRecord godoc
//
//	@Summary		Record Activity Endpoint
//	@Description	Append a custom entry to the activity feed, attributed to the authenticated caller
//	@Tags			Activity
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.RecordActivityRequest	true	"Entry"
//	@Success		201		{object}	boardsdk.Activity				"created entry"
//	@Failure		400		{object}	boardsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/activity [post].
func (h *ActivityHandler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req boardsdk.RecordActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	entry, err := h.ActivityService.Record(ctx, req.Message, httpx.UserNameFromCtx(ctx))
	if err != nil {
		if errors.Is(err, service.ErrMessageRequired) {
			httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
				Error:            boardsdk.ErrorCodeInvalidRequest,
				ErrorDescription: "message is required",
			})
			return
		}
		slogx.FromContext(ctx).Error("activity record failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to record activity",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toActivityDTO(entry))
}
