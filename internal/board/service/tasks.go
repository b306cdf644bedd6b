package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

var (
	ErrTitleRequired   = errors.New("title_required")
	ErrInvalidStatus   = errors.New("invalid_status")
	ErrInvalidPriority = errors.New("invalid_priority")
)

// TaskService owns the board cards.
type TaskService struct {
	Store store.Store
}

// CreateTaskParams are the caller-supplied fields for a new task. ID and
// timestamps are generated here.
type CreateTaskParams struct {
	Title       string
	Description string
	Status      domain.Status
	Priority    domain.Priority
	AssigneeID  string
	DueDate     string
	WorkspaceID string
	Subtasks    []string
}

// Create validates and inserts a new task. The workspace must exist (every
// task belongs to exactly one workspace); the assignee is a weak reference
// and is not checked.
func (s *TaskService) Create(ctx context.Context, p CreateTaskParams) (domain.Task, error) {
	if strings.TrimSpace(p.Title) == "" {
		return domain.Task{}, ErrTitleRequired
	}
	if p.Status == "" {
		p.Status = domain.StatusTodo
	}
	if !p.Status.Valid() {
		return domain.Task{}, ErrInvalidStatus
	}
	if p.Priority == "" {
		p.Priority = domain.PriorityMedium
	}
	if !p.Priority.Valid() {
		return domain.Task{}, ErrInvalidPriority
	}

	workspaceID := p.WorkspaceID
	if workspaceID == "" {
		current, err := s.Store.Workspaces().Current(ctx)
		if err != nil {
			return domain.Task{}, err
		}
		workspaceID = current
	}
	if _, err := s.Store.Workspaces().GetWorkspaceByID(ctx, workspaceID); err != nil {
		return domain.Task{}, err
	}

	now := time.Now().UTC()
	task := domain.Task{
		ID:          idx.New().String(),
		Title:       strings.TrimSpace(p.Title),
		Description: p.Description,
		Status:      p.Status,
		Priority:    p.Priority,
		AssigneeID:  p.AssigneeID,
		DueDate:     p.DueDate,
		WorkspaceID: workspaceID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for i, title := range p.Subtasks {
		task.Subtasks = append(task.Subtasks, domain.Subtask{
			ID:    fmt.Sprintf("%s-%d", task.ID, i+1),
			Title: title,
		})
	}

	if err := s.Store.Tasks().CreateTask(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// TaskUpdate is a partial field set; nil fields are left alone.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *domain.Status
	Priority    *domain.Priority
	AssigneeID  *string
	DueDate     *string
	Subtasks    []domain.Subtask
}

// Update merges the partial field set into the task and refreshes its
// update timestamp. Any status value is accepted as long as it is one of
// the four columns; the transition graph is deliberately unconstrained.
func (s *TaskService) Update(ctx context.Context, id string, u TaskUpdate) (domain.Task, error) {
	task, err := s.Store.Tasks().GetTaskByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if u.Title != nil {
		if strings.TrimSpace(*u.Title) == "" {
			return domain.Task{}, ErrTitleRequired
		}
		task.Title = strings.TrimSpace(*u.Title)
	}
	if u.Description != nil {
		task.Description = *u.Description
	}
	if u.Status != nil {
		if !u.Status.Valid() {
			return domain.Task{}, ErrInvalidStatus
		}
		task.Status = *u.Status
	}
	if u.Priority != nil {
		if !u.Priority.Valid() {
			return domain.Task{}, ErrInvalidPriority
		}
		task.Priority = *u.Priority
	}
	if u.AssigneeID != nil {
		task.AssigneeID = *u.AssigneeID
	}
	if u.DueDate != nil {
		task.DueDate = *u.DueDate
	}
	if u.Subtasks != nil {
		task.Subtasks = u.Subtasks
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.Store.Tasks().UpdateTask(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Delete removes a task. Notifications and activity entries referencing it
// keep their dangling task reference.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.Store.Tasks().DeleteTask(ctx, id)
}

// Get returns a task by id.
func (s *TaskService) Get(ctx context.Context, id string) (domain.Task, error) {
	return s.Store.Tasks().GetTaskByID(ctx, id)
}

// Move implements the drag-end contract: "task id, target column". When the
// column actually changes, the move is attributed to the actor via the
// task's LastActivity record. Moving a task onto its own column is a no-op.
func (s *TaskService) Move(ctx context.Context, id string, target domain.Status, actor string) (domain.Task, error) {
	if !target.Valid() {
		return domain.Task{}, ErrInvalidStatus
	}

	task, err := s.Store.Tasks().GetTaskByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if task.Status == target {
		return task, nil
	}

	if actor == "" {
		actor = "Unknown User"
	}

	now := time.Now().UTC()
	action := fmt.Sprintf("moved from %s to %s", task.Status, target)
	task.Status = target
	task.UpdatedAt = now
	task.LastActivity = &domain.TaskActivity{
		User:      actor,
		Action:    action,
		Timestamp: now,
	}

	if err := s.Store.Tasks().UpdateTask(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// ListCurrent returns the tasks of the current workspace.
func (s *TaskService) ListCurrent(ctx context.Context) ([]domain.Task, error) {
	current, err := s.Store.Workspaces().Current(ctx)
	if err != nil {
		return nil, err
	}
	return s.Store.Tasks().ListWorkspaceTasks(ctx, current)
}

// Search filters the current workspace's tasks with a case-insensitive
// substring match across title, description and the resolved assignee name
// (OR across fields). An empty query returns every task in the workspace.
// Tasks whose assignee no longer exists match only on title/description.
func (s *TaskService) Search(ctx context.Context, query string) ([]domain.Task, error) {
	tasks, err := s.ListCurrent(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return tasks, nil
	}

	members, err := s.Store.Members().ListMembers(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = strings.ToLower(m.Name)
	}

	var out []domain.Task
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), query) ||
			strings.Contains(strings.ToLower(t.Description), query) ||
			(names[t.AssigneeID] != "" && strings.Contains(names[t.AssigneeID], query)) {
			out = append(out, t)
		}
	}
	return out, nil
}
