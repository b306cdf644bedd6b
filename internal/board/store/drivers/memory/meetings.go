package memory

import (
	"context"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
)

type meetingsRepo struct {
	s *Store
}

func (r *meetingsRepo) ListMeetings(ctx context.Context) ([]domain.Meeting, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Meeting, len(r.s.meetings))
	copy(out, r.s.meetings)
	return out, nil
}

func (r *meetingsRepo) CreateMeeting(ctx context.Context, m domain.Meeting) error {
	r.s.mu.Lock()
	r.s.meetings = append(r.s.meetings, m)
	r.s.mu.Unlock()

	r.s.publish(store.EventCreated, store.CollectionMeetings, m.ID)
	return nil
}
