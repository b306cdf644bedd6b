package memory

import (
	"context"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
)

type notificationsRepo struct {
	s *Store
}

func (r *notificationsRepo) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Notification, len(r.s.notifications))
	copy(out, r.s.notifications)
	return out, nil
}

func (r *notificationsRepo) GetNotificationByID(ctx context.Context, id string) (domain.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, n := range r.s.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return domain.Notification{}, store.ErrNotFound
}

func (r *notificationsRepo) CreateNotification(ctx context.Context, n domain.Notification) error {
	r.s.mu.Lock()
	// Newest first, same as the feed ordering consumers expect.
	r.s.notifications = append([]domain.Notification{n}, r.s.notifications...)
	r.s.mu.Unlock()

	r.s.publish(store.EventCreated, store.CollectionNotifications, n.ID)
	return nil
}

func (r *notificationsRepo) UpdateNotification(ctx context.Context, n domain.Notification) error {
	r.s.mu.Lock()
	for i := range r.s.notifications {
		if r.s.notifications[i].ID == n.ID {
			r.s.notifications[i] = n
			r.s.mu.Unlock()
			r.s.publish(store.EventUpdated, store.CollectionNotifications, n.ID)
			return nil
		}
	}
	r.s.mu.Unlock()
	return store.ErrNotFound
}

func (r *notificationsRepo) DeleteNotification(ctx context.Context, id string) error {
	r.s.mu.Lock()
	for i := range r.s.notifications {
		if r.s.notifications[i].ID == id {
			r.s.notifications = append(r.s.notifications[:i], r.s.notifications[i+1:]...)
			r.s.mu.Unlock()
			r.s.publish(store.EventDeleted, store.CollectionNotifications, id)
			return nil
		}
	}
	r.s.mu.Unlock()
	return store.ErrNotFound
}
