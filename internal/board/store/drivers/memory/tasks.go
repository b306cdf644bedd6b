package memory

import (
	"context"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
)

type tasksRepo struct {
	s *Store
}

func (r *tasksRepo) ListTasks(ctx context.Context) ([]domain.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Task, 0, len(r.s.tasks))
	for _, t := range r.s.tasks {
		out = append(out, cloneTask(t))
	}
	return out, nil
}

func (r *tasksRepo) ListWorkspaceTasks(ctx context.Context, workspaceID string) ([]domain.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []domain.Task
	for _, t := range r.s.tasks {
		if t.WorkspaceID == workspaceID {
			out = append(out, cloneTask(t))
		}
	}
	return out, nil
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id string) (domain.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, t := range r.s.tasks {
		if t.ID == id {
			return cloneTask(t), nil
		}
	}
	return domain.Task{}, store.ErrNotFound
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	r.s.mu.Lock()
	for _, existing := range r.s.tasks {
		if existing.ID == t.ID {
			r.s.mu.Unlock()
			return store.ErrAlreadyExists
		}
	}
	r.s.tasks = append(r.s.tasks, cloneTask(t))
	r.s.mu.Unlock()

	r.s.publish(store.EventCreated, store.CollectionTasks, t.ID)
	return nil
}

func (r *tasksRepo) UpdateTask(ctx context.Context, t domain.Task) error {
	r.s.mu.Lock()
	for i := range r.s.tasks {
		if r.s.tasks[i].ID == t.ID {
			r.s.tasks[i] = cloneTask(t)
			r.s.mu.Unlock()
			r.s.publish(store.EventUpdated, store.CollectionTasks, t.ID)
			return nil
		}
	}
	r.s.mu.Unlock()
	return store.ErrNotFound
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id string) error {
	r.s.mu.Lock()
	for i := range r.s.tasks {
		if r.s.tasks[i].ID == id {
			r.s.tasks = append(r.s.tasks[:i], r.s.tasks[i+1:]...)
			r.s.mu.Unlock()
			r.s.publish(store.EventDeleted, store.CollectionTasks, id)
			return nil
		}
	}
	r.s.mu.Unlock()
	return store.ErrNotFound
}
