package memory

import (
	"context"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
)

// sessionsRepo is the ephemeral session slot. It satisfies store.Sessions
// with the same semantics as the SQLite slot, minus the surviving-a-restart
// part.
type sessionsRepo struct {
	s *Store
}

func (r *sessionsRepo) Load(ctx context.Context) (domain.Session, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if r.s.session == nil {
		return domain.Session{}, store.ErrNotFound
	}
	return cloneSession(*r.s.session), nil
}

func (r *sessionsRepo) Save(ctx context.Context, sess domain.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	saved := cloneSession(sess)
	r.s.session = &saved
	return nil
}

func (r *sessionsRepo) Clear(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.session = nil
	return nil
}

func (r *sessionsRepo) Close() error { return nil }
