package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/board/service"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

type NotificationsHandler struct {
	NotificationService *service.NotificationService
}

// HandleList godoc
//
//	@Summary		List Notifications Endpoint
//	@Description	List all notifications, newest first. Notifications may reference tasks that have since been deleted.
//	@Tags			Notifications
//	@Produce		json
//	@Success		200	{array}		boardsdk.Notification	"notifications"
//	@Failure		500	{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/notifications [get].
func (h *NotificationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notifications, err := h.NotificationService.List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("notification list failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to list notifications",
		})
		return
	}

	out := make([]boardsdk.Notification, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, toNotificationDTO(n))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUnreadCount godoc
//
//	@Summary		Unread Count Endpoint
//	@Description	Return the number of unread notifications
//	@Tags			Notifications
//	@Produce		json
//	@Success		200	{object}	boardsdk.UnreadCountResponse	"unread"
//	@Security		BearerAuth
//	@Router			/v1/notifications/unread-count [get].
func (h *NotificationsHandler) HandleUnreadCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := h.NotificationService.UnreadCount(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("unread count failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to count notifications",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.UnreadCountResponse{Unread: count})
}

// HandleMarkRead godoc
//
//	@Summary		Mark Notification Read Endpoint
//	@Description	Mark one notification as read. Marking an already-read notification is a no-op.
//	@Tags			Notifications
//	@Produce		json
//	@Param			id	path	string	true	"Notification ID"
//	@Success		204	"marked read"
//	@Failure		404	{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/notifications/{id}/read [post].
func (h *NotificationsHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.NotificationService.MarkRead(r.Context(), r.PathValue("id")); err != nil {
		h.writeNotificationError(w, r, err, "Failed to mark notification read")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleMarkAllRead godoc
//
//	@Summary		Mark All Read Endpoint
//	@Description	Mark every notification as read. Idempotent; the response reports how many were actually flipped.
//	@Tags			Notifications
//	@Produce		json
//	@Success		200	{object}	boardsdk.MarkAllReadResponse	"marked"
//	@Security		BearerAuth
//	@Router			/v1/notifications/read-all [post].
func (h *NotificationsHandler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	marked, err := h.NotificationService.MarkAllRead(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("mark all read failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to mark notifications read",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.MarkAllReadResponse{Marked: marked})
}

// HandleDelete godoc
//
//	@Summary		Delete Notification Endpoint
//	@Description	Remove a notification
//	@Tags			Notifications
//	@Produce		json
//	@Param			id	path	string	true	"Notification ID"
//	@Success		204	"notification removed"
//	@Failure		404	{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/notifications/{id} [delete].
func (h *NotificationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.NotificationService.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeNotificationError(w, r, err, "Failed to delete notification")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationsHandler) writeNotificationError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if errors.Is(err, store.ErrNotFound) {
		httpx.WriteJSON(w, http.StatusNotFound, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeNotFound,
			ErrorDescription: "Notification not found",
		})
		return
	}
	slogx.FromContext(r.Context()).Error("notification operation failed", "err", err)
	httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
		Error:            boardsdk.ErrorCodeServerError,
		ErrorDescription: fallback,
	})
}
