package service

import (
	"context"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
)

// Metrics is the dashboard aggregate. Task counts are scoped to the current
// workspace; workspace and member counts are global.
type Metrics struct {
	ActiveWorkspaces int `json:"active_workspaces"`
	TotalWorkspaces  int `json:"total_workspaces"`
	CompletedTasks   int `json:"completed_tasks"`
	InProgressTasks  int `json:"in_progress_tasks"`
	TeamMembers      int `json:"team_members"`
}

// MetricsService derives the dashboard aggregate. Nothing is cached; every
// call recomputes from the store's current state.
type MetricsService struct {
	Store store.Store
}

// Compute recalculates the aggregate.
func (s *MetricsService) Compute(ctx context.Context) (Metrics, error) {
	var m Metrics

	workspaces, err := s.Store.Workspaces().ListWorkspaces(ctx)
	if err != nil {
		return Metrics{}, err
	}
	m.TotalWorkspaces = len(workspaces)
	for _, w := range workspaces {
		if w.Active {
			m.ActiveWorkspaces++
		}
	}

	current, err := s.Store.Workspaces().Current(ctx)
	if err != nil {
		return Metrics{}, err
	}
	tasks, err := s.Store.Tasks().ListWorkspaceTasks(ctx, current)
	if err != nil {
		return Metrics{}, err
	}
	for _, t := range tasks {
		switch t.Status {
		case domain.StatusDone:
			m.CompletedTasks++
		case domain.StatusInProgress:
			m.InProgressTasks++
		}
	}

	members, err := s.Store.Members().ListMembers(ctx)
	if err != nil {
		return Metrics{}, err
	}
	m.TeamMembers = len(members)

	return m, nil
}
