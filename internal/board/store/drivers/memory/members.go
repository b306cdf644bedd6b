package memory

import (
	"context"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
)

type membersRepo struct {
	s *Store
}

func (r *membersRepo) ListMembers(ctx context.Context) ([]domain.TeamMember, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.TeamMember, len(r.s.members))
	copy(out, r.s.members)
	return out, nil
}

func (r *membersRepo) GetMemberByID(ctx context.Context, id string) (domain.TeamMember, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, m := range r.s.members {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.TeamMember{}, store.ErrNotFound
}

func (r *membersRepo) CreateMember(ctx context.Context, m domain.TeamMember) error {
	r.s.mu.Lock()
	for _, existing := range r.s.members {
		if existing.ID == m.ID {
			r.s.mu.Unlock()
			return store.ErrAlreadyExists
		}
	}
	r.s.members = append(r.s.members, m)
	r.s.mu.Unlock()

	r.s.publish(store.EventCreated, store.CollectionMembers, m.ID)
	return nil
}

func (r *membersRepo) UpdateMember(ctx context.Context, m domain.TeamMember) error {
	r.s.mu.Lock()
	for i := range r.s.members {
		if r.s.members[i].ID == m.ID {
			r.s.members[i] = m
			r.s.mu.Unlock()
			r.s.publish(store.EventUpdated, store.CollectionMembers, m.ID)
			return nil
		}
	}
	r.s.mu.Unlock()
	return store.ErrNotFound
}

func (r *membersRepo) DeleteMember(ctx context.Context, id string) error {
	r.s.mu.Lock()
	for i := range r.s.members {
		if r.s.members[i].ID == id {
			r.s.members = append(r.s.members[:i], r.s.members[i+1:]...)
			r.s.mu.Unlock()
			r.s.publish(store.EventDeleted, store.CollectionMembers, id)
			return nil
		}
	}
	r.s.mu.Unlock()
	return store.ErrNotFound
}
