package memory

import (
	"context"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
)

type workspacesRepo struct {
	s *Store
}

func (r *workspacesRepo) ListWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Workspace, 0, len(r.s.workspaces))
	for _, w := range r.s.workspaces {
		out = append(out, cloneWorkspace(w))
	}
	return out, nil
}

func (r *workspacesRepo) GetWorkspaceByID(ctx context.Context, id string) (domain.Workspace, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, w := range r.s.workspaces {
		if w.ID == id {
			return cloneWorkspace(w), nil
		}
	}
	return domain.Workspace{}, store.ErrNotFound
}

func (r *workspacesRepo) CreateWorkspace(ctx context.Context, w domain.Workspace) error {
	r.s.mu.Lock()
	for _, existing := range r.s.workspaces {
		if existing.ID == w.ID {
			r.s.mu.Unlock()
			return store.ErrAlreadyExists
		}
	}
	r.s.workspaces = append(r.s.workspaces, cloneWorkspace(w))
	r.s.mu.Unlock()

	r.s.publish(store.EventCreated, store.CollectionWorkspaces, w.ID)
	return nil
}

func (r *workspacesRepo) Current(ctx context.Context) (string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.currentWorkspace, nil
}

func (r *workspacesRepo) SetCurrent(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, w := range r.s.workspaces {
		if w.ID == id {
			r.s.currentWorkspace = id
			return nil
		}
	}
	return store.ErrNotFound
}
