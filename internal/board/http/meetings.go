package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/service"
	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

type MeetingsHandler struct {
	MeetingService *service.MeetingService
}

// HandleList godoc
//
//	@Summary		List Meetings Endpoint
//	@Description	List meetings. With a date parameter (YYYY-MM-DD) only that day's meetings are returned; day bucketing is string equality, same as task due dates.
//	@Tags			Meetings
//	@Produce		json
//	@Param			date	query		string					false	"Calendar day (YYYY-MM-DD)"
//	@Success		200		{array}		boardsdk.Meeting		"meetings"
//	@Failure		500		{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/meetings [get].
func (h *MeetingsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		meetings []domain.Meeting
		err      error
	)
	if date := r.URL.Query().Get("date"); date != "" {
		meetings, err = h.MeetingService.On(ctx, date)
	} else {
		meetings, err = h.MeetingService.List(ctx)
	}
	if err != nil {
		slogx.FromContext(ctx).Error("meeting list failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to list meetings",
		})
		return
	}

	out := make([]boardsdk.Meeting, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, toMeetingDTO(m))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary		Schedule Meeting Endpoint
//	@Description	Schedule a meeting on the calendar
//	@Tags			Meetings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.CreateMeetingRequest	true	"New meeting"
//	@Success		201		{object}	boardsdk.Meeting				"created meeting"
//	@Failure		400		{object}	boardsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/meetings [post].
func (h *MeetingsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req boardsdk.CreateMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	meeting, err := h.MeetingService.Add(ctx, service.AddMeetingParams{
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
				Error:            boardsdk.ErrorCodeInvalidRequest,
				ErrorDescription: "title is required",
			})
			return
		}
		slogx.FromContext(ctx).Error("meeting create failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to schedule meeting",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toMeetingDTO(meeting))
}
