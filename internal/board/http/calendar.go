package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/board/service"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

type CalendarHandler struct {
	CalendarService *service.CalendarService
	MeetingService  *service.MeetingService
	TeamService     *service.TeamService
}

// HandleMonth godoc
//
//	@Summary		Month View Endpoint
//	@Description	Return the 42-cell month grid: six weeks starting on the Sunday on or before the 1st. Each cell carries the current workspace's tasks due that day and the meetings scheduled for it.
//	@Tags			Calendar
//	@Produce		json
//	@Param			year	path		int							true	"Year"
//	@Param			month	path		int							true	"Month (1-12)"
//	@Success		200		{object}	boardsdk.MonthViewResponse	"month grid"
//	@Failure		400		{object}	boardsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/calendar/{year}/{month} [get].
func (h *CalendarHandler) HandleMonth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	year, errY := strconv.Atoi(r.PathValue("year"))
	month, errM := strconv.Atoi(r.PathValue("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "year and month must be numeric, month 1-12",
		})
		return
	}

	view, err := h.CalendarService.Month(ctx, year, time.Month(month))
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	out := boardsdk.MonthViewResponse{
		Year:  view.Year,
		Month: view.Month,
		Days:  make([]boardsdk.CalendarDay, 0, len(view.Days)),
	}
	for _, day := range view.Days {
		cell := boardsdk.CalendarDay{
			Date:     day.Date,
			InMonth:  day.InMonth,
			Tasks:    make([]boardsdk.Task, 0, len(day.Tasks)),
			Meetings: make([]boardsdk.Meeting, 0, len(day.Meetings)),
		}
		for _, t := range day.Tasks {
			cell.Tasks = append(cell.Tasks, toTaskDTO(t, h.TeamService.ResolveName(ctx, t.AssigneeID)))
		}
		for _, m := range day.Meetings {
			cell.Meetings = append(cell.Meetings, toMeetingDTO(m))
		}
		out.Days = append(out.Days, cell)
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleDay godoc
//
//	@Summary		Day View Endpoint
//	@Description	Return one bucketed calendar day: tasks due that day in the current workspace plus meetings scheduled for it. Bucketing is string equality on the YYYY-MM-DD form.
//	@Tags			Calendar
//	@Produce		json
//	@Param			date	path		string					true	"Calendar day (YYYY-MM-DD)"
//	@Success		200		{object}	boardsdk.CalendarDay	"day"
//	@Failure		400		{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/calendar/day/{date} [get].
func (h *CalendarHandler) HandleDay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	date := r.PathValue("date")
	if _, err := time.Parse(service.DateLayout, date); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "date must be YYYY-MM-DD",
		})
		return
	}

	tasks, err := h.CalendarService.TasksOn(ctx, date)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}
	meetings, err := h.MeetingService.On(ctx, date)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	out := boardsdk.CalendarDay{
		Date:     date,
		InMonth:  true,
		Tasks:    make([]boardsdk.Task, 0, len(tasks)),
		Meetings: make([]boardsdk.Meeting, 0, len(meetings)),
	}
	for _, t := range tasks {
		out.Tasks = append(out.Tasks, toTaskDTO(t, h.TeamService.ResolveName(ctx, t.AssigneeID)))
	}
	for _, m := range meetings {
		out.Meetings = append(out.Meetings, toMeetingDTO(m))
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *CalendarHandler) writeCalendarError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrNotFound) {
		httpx.WriteJSON(w, http.StatusNotFound, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeNotFound,
			ErrorDescription: "No current workspace",
		})
		return
	}
	slogx.FromContext(r.Context()).Error("calendar lookup failed", "err", err)
	httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
		Error:            boardsdk.ErrorCodeServerError,
		ErrorDescription: "Failed to build calendar",
	})
}
