package memory

import (
	"context"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
)

type activitiesRepo struct {
	s *Store
}

func (r *activitiesRepo) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Activity, len(r.s.activities))
	copy(out, r.s.activities)
	return out, nil
}

func (r *activitiesRepo) CreateActivity(ctx context.Context, a domain.Activity) error {
	r.s.mu.Lock()
	// The feed is append-only, newest first.
	r.s.activities = append([]domain.Activity{a}, r.s.activities...)
	r.s.mu.Unlock()

	r.s.publish(store.EventCreated, store.CollectionActivities, a.ID)
	return nil
}
