package service

import (
	"context"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
)

// NotificationService owns the notification list. Notifications may carry a
// weak task reference; a deleted task does not invalidate them.
type NotificationService struct {
	Store store.Store
}

// List returns notifications, newest first.
func (s *NotificationService) List(ctx context.Context) ([]domain.Notification, error) {
	return s.Store.Notifications().ListNotifications(ctx)
}

// UnreadCount returns how many notifications are unread.
func (s *NotificationService) UnreadCount(ctx context.Context) (int, error) {
	list, err := s.Store.Notifications().ListNotifications(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range list {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

// MarkRead flips one notification's read flag.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	n, err := s.Store.Notifications().GetNotificationByID(ctx, id)
	if err != nil {
		return err
	}
	if n.Read {
		return nil
	}
	n.Read = true
	return s.Store.Notifications().UpdateNotification(ctx, n)
}

// MarkAllRead flips every unread notification and returns how many were
// flipped. It is idempotent: a second call flips nothing.
func (s *NotificationService) MarkAllRead(ctx context.Context) (int, error) {
	list, err := s.Store.Notifications().ListNotifications(ctx)
	if err != nil {
		return 0, err
	}

	flipped := 0
	for _, n := range list {
		if n.Read {
			continue
		}
		n.Read = true
		if err := s.Store.Notifications().UpdateNotification(ctx, n); err != nil {
			return flipped, err
		}
		flipped++
	}
	return flipped, nil
}

// Delete removes a notification. No undo.
func (s *NotificationService) Delete(ctx context.Context, id string) error {
	return s.Store.Notifications().DeleteNotification(ctx, id)
}
