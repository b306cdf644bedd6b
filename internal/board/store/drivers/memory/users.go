package memory

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
)

type usersRepo struct {
	s *Store
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return domain.User{}, store.ErrNotFound
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return domain.User{}, store.ErrNotFound
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	r.s.mu.Lock()
	for i := range r.s.users {
		if r.s.users[i].ID == u.ID {
			r.s.users[i] = cloneUser(u)
			r.s.mu.Unlock()
			r.s.publish(store.EventUpdated, store.CollectionUsers, u.ID)
			return nil
		}
	}
	r.s.mu.Unlock()
	return store.ErrNotFound
}
